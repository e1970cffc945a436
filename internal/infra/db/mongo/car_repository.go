package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	domaincars "carrental/internal/domain/cars"
)

const carsCollection = "cars"

// CarRepository reads cars from a collection. It never writes.
type CarRepository struct {
	col *mongo.Collection
}

func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{col: db.Collection(carsCollection)}
}

func (r *CarRepository) Find(ctx context.Context, id domaincars.CarID) (domaincars.Car, error) {
	var doc carDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domaincars.Car{}, fmt.Errorf("%w: %s", domaincars.ErrCarNotFound, id)
		}
		return domaincars.Car{}, fmt.Errorf("mongo: find car %s: %w", id, err)
	}
	return doc.toDomain(), nil
}

type carDocument struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	ReleaseYear  int    `bson:"release_year"`
	Available    bool   `bson:"available"`
	GasAvailable bool   `bson:"gas_available"`
}

func (d carDocument) toDomain() domaincars.Car {
	return domaincars.Car{
		ID:           domaincars.CarID(d.ID),
		Name:         d.Name,
		ReleaseYear:  d.ReleaseYear,
		Available:    d.Available,
		GasAvailable: d.GasAvailable,
	}
}
