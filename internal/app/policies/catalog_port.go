package policies

import (
	"context"

	domaincars "carrental/internal/domain/cars"
)

// CarRepository looks cars up by id. Implementations return an error
// wrapping domaincars.ErrCarNotFound for unknown ids.
type CarRepository interface {
	Find(ctx context.Context, id domaincars.CarID) (domaincars.Car, error)
}

type CategoryRepository interface {
	Find(ctx context.Context, id domaincars.CategoryID) (domaincars.CarCategory, error)
}

type CustomerRepository interface {
	Find(ctx context.Context, id domaincars.CustomerID) (domaincars.Customer, error)
}
