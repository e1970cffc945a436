package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	domaincars "carrental/internal/domain/cars"
	"carrental/internal/domain/shared/money"
)

const (
	CarsFile       = "cars.json"
	CategoriesFile = "carCategory.json"
	CustomersFile  = "customers.json"

	defaultCurrency = "BRL"
)

// LoadJSON decodes a JSON document at path into out. A cancelled ctx stops
// the load before the file is read.
func LoadJSON(ctx context.Context, path string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("memory: decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

type categoryRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	CarIDs   []string `json:"carIds"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
}

func (r categoryRecord) toDomain() (domaincars.CarCategory, error) {
	currency := strings.TrimSpace(r.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	price, err := money.FromMajor(r.Price, currency)
	if err != nil {
		return domaincars.CarCategory{}, fmt.Errorf("category %s: %w", r.ID, err)
	}
	ids := make([]domaincars.CarID, 0, len(r.CarIDs))
	for _, id := range r.CarIDs {
		ids = append(ids, domaincars.CarID(id))
	}
	category := domaincars.CarCategory{
		ID:     domaincars.CategoryID(r.ID),
		Name:   r.Name,
		CarIDs: ids,
		Price:  price,
	}
	if err := category.Validate(); err != nil {
		return domaincars.CarCategory{}, fmt.Errorf("category %s: %w", r.ID, err)
	}
	return category, nil
}

type customerRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// LoadCars reads a JSON array of cars into a repository.
func LoadCars(ctx context.Context, path string) (*CarRepository, error) {
	var records []domaincars.Car
	if err := LoadJSON(ctx, path, &records); err != nil {
		return nil, err
	}
	return NewCarRepository(records...), nil
}

func LoadCategories(ctx context.Context, path string) (*CategoryRepository, error) {
	var records []categoryRecord
	if err := LoadJSON(ctx, path, &records); err != nil {
		return nil, err
	}
	repo := NewCategoryRepository()
	for _, rec := range records {
		category, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		repo.Put(category.ID, category)
	}
	return repo, nil
}

func LoadCustomers(ctx context.Context, path string) (*CustomerRepository, error) {
	var records []customerRecord
	if err := LoadJSON(ctx, path, &records); err != nil {
		return nil, err
	}
	repo := NewCustomerRepository()
	for _, rec := range records {
		repo.Put(domaincars.CustomerID(rec.ID), domaincars.Customer{
			ID:   domaincars.CustomerID(rec.ID),
			Name: rec.Name,
			Age:  rec.Age,
		})
	}
	return repo, nil
}

// Dataset bundles the reference data shipped in the data directory.
type Dataset struct {
	Cars       *CarRepository
	Categories *CategoryRepository
	Customers  *CustomerRepository
}

// LoadDataset reads the three reference files from dir concurrently; the first
// failure cancels the loads that have not started reading yet.
// When skipCars is set the car file is not read, for setups where cars
// come from another source.
func LoadDataset(ctx context.Context, dir string, skipCars bool) (Dataset, error) {
	var ds Dataset
	g, gctx := errgroup.WithContext(ctx)
	if !skipCars {
		g.Go(func() (err error) {
			ds.Cars, err = LoadCars(gctx, filepath.Join(dir, CarsFile))
			return err
		})
	}
	g.Go(func() (err error) {
		ds.Categories, err = LoadCategories(gctx, filepath.Join(dir, CategoriesFile))
		return err
	})
	g.Go(func() (err error) {
		ds.Customers, err = LoadCustomers(gctx, filepath.Join(dir, CustomersFile))
		return err
	})
	if err := g.Wait(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}
