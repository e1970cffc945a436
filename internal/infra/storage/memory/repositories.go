package memory

import (
	"context"
	"fmt"
	"sync"

	domaincars "carrental/internal/domain/cars"
)

// Catalog is a read-mostly in-memory collection keyed by id.
type Catalog[K comparable, V any] struct {
	mu       sync.RWMutex
	items    map[K]V
	notFound error
}

// NewCatalog builds a catalog whose misses wrap notFound.
func NewCatalog[K comparable, V any](notFound error) *Catalog[K, V] {
	return &Catalog[K, V]{items: make(map[K]V), notFound: notFound}
}

// Find returns the item or an error wrapping the catalog's not-found sentinel.
func (c *Catalog[K, V]) Find(ctx context.Context, id K) (V, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", c.notFound, id)
	}
	return item, nil
}

// Put stores or replaces an item; used while loading reference data.
func (c *Catalog[K, V]) Put(id K, item V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = item
}

// Len reports the number of stored items.
func (c *Catalog[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// CarRepository keeps the car reference data in memory.
type CarRepository struct {
	*Catalog[domaincars.CarID, domaincars.Car]
}

func NewCarRepository(cars ...domaincars.Car) *CarRepository {
	r := &CarRepository{NewCatalog[domaincars.CarID, domaincars.Car](domaincars.ErrCarNotFound)}
	for _, car := range cars {
		r.Put(car.ID, car)
	}
	return r
}

type CategoryRepository struct {
	*Catalog[domaincars.CategoryID, domaincars.CarCategory]
}

func NewCategoryRepository(categories ...domaincars.CarCategory) *CategoryRepository {
	r := &CategoryRepository{NewCatalog[domaincars.CategoryID, domaincars.CarCategory](domaincars.ErrCategoryNotFound)}
	for _, category := range categories {
		r.Put(category.ID, category)
	}
	return r
}

type CustomerRepository struct {
	*Catalog[domaincars.CustomerID, domaincars.Customer]
}

func NewCustomerRepository(customers ...domaincars.Customer) *CustomerRepository {
	r := &CustomerRepository{NewCatalog[domaincars.CustomerID, domaincars.Customer](domaincars.ErrCustomerNotFound)}
	for _, customer := range customers {
		r.Put(customer.ID, customer)
	}
	return r
}
