package cars

import (
	"errors"
	"fmt"

	"carrental/internal/domain/shared/money"
)

var (
	ErrCarNotFound       = errors.New("cars: car not found")
	ErrCategoryNotFound  = errors.New("cars: category not found")
	ErrCustomerNotFound  = errors.New("cars: customer not found")
	ErrEmptyCategory     = errors.New("cars: category has no candidate cars")
	ErrInvalidRentalDays = errors.New("cars: number of days must be positive")
	ErrInvalidAge        = errors.New("cars: customer age cannot be negative")
	ErrNegativePrice     = errors.New("cars: category price cannot be negative")
)

type CarID string

// Car is the rentable vehicle record. Pricing only looks at ID.
type Car struct {
	ID           CarID  `json:"id"`
	Name         string `json:"name"`
	ReleaseYear  int    `json:"releaseYear"`
	Available    bool   `json:"available"`
	GasAvailable bool   `json:"gasAvailable"`
}

type CategoryID string

// CarCategory groups cars that share a base daily price.
type CarCategory struct {
	ID     CategoryID
	Name   string
	CarIDs []CarID
	Price  money.Money
}

// Validate checks the invariants car selection and pricing rely on.
func (c CarCategory) Validate() error {
	if len(c.CarIDs) == 0 {
		return ErrEmptyCategory
	}
	return c.ValidatePrice()
}

// ValidatePrice rejects negative daily prices and prices without a currency code.
func (c CarCategory) ValidatePrice() error {
	if c.Price.IsNegative() {
		return ErrNegativePrice
	}
	if len(c.Price.Currency) != 3 {
		return fmt.Errorf("category %s: %w", c.ID, money.ErrInvalidCurrency)
	}
	return nil
}

type CustomerID string

type Customer struct {
	ID   CustomerID
	Name string
	Age  int
}

func (c Customer) Validate() error {
	if c.Age < 0 {
		return ErrInvalidAge
	}
	return nil
}

// ValidateDays rejects rental periods that are not at least one day long.
func ValidateDays(days int) error {
	if days <= 0 {
		return ErrInvalidRentalDays
	}
	return nil
}
