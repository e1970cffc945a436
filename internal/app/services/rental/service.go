package rental

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"carrental/internal/app/policies"
	domaincars "carrental/internal/domain/cars"
	"carrental/internal/domain/shared/daterange"
)

var (
	ErrRandomOutOfRange = errors.New("rental: random source returned index out of range")
)

// Service picks cars for a category and prices rentals by customer age.
// Zero-valued Random, Clock, NewID and Logger fall back to process defaults.
type Service struct {
	Cars   policies.CarRepository
	Taxes  policies.TaxTable
	Format policies.Formatter
	Random policies.RandomSource
	Clock  policies.Clock
	NewID  func() string
	Logger *slog.Logger
}

// ChooseRandomCar returns one of the category's candidate ids drawn uniformly.
func (s *Service) ChooseRandomCar(category domaincars.CarCategory) (domaincars.CarID, error) {
	if len(category.CarIDs) == 0 {
		return "", domaincars.ErrEmptyCategory
	}
	idx := s.random().IntN(len(category.CarIDs))
	if idx < 0 || idx >= len(category.CarIDs) {
		return "", fmt.Errorf("%w: %d of %d", ErrRandomOutOfRange, idx, len(category.CarIDs))
	}
	return category.CarIDs[idx], nil
}

// GetAvailableCar resolves a randomly chosen id through the car repository.
func (s *Service) GetAvailableCar(ctx context.Context, category domaincars.CarCategory) (domaincars.Car, error) {
	if s.Cars == nil {
		return domaincars.Car{}, errors.New("rental: car repository required")
	}
	id, err := s.ChooseRandomCar(category)
	if err != nil {
		return domaincars.Car{}, err
	}
	car, err := s.Cars.Find(ctx, id)
	if err != nil {
		return domaincars.Car{}, fmt.Errorf("rental: find car %q: %w", id, err)
	}
	s.logger().Debug("car selected", "category_id", category.ID, "car_id", car.ID)
	return car, nil
}

// CalculateFinalPrice applies the customer's age bracket to the category's daily price.
func (s *Service) CalculateFinalPrice(customer domaincars.Customer, category domaincars.CarCategory, days int) (domaincars.Quote, error) {
	if err := s.ensurePricing(); err != nil {
		return domaincars.Quote{}, err
	}
	if err := domaincars.ValidateDays(days); err != nil {
		return domaincars.Quote{}, err
	}
	if err := customer.Validate(); err != nil {
		return domaincars.Quote{}, err
	}
	if err := category.ValidatePrice(); err != nil {
		return domaincars.Quote{}, err
	}
	rule, err := s.Taxes.Lookup(customer.Age)
	if err != nil {
		return domaincars.Quote{}, err
	}
	total, err := category.Price.Scale(rule.Multiplier * float64(days))
	if err != nil {
		return domaincars.Quote{}, fmt.Errorf("rental: price %d day(s) of %s: %w", days, category.ID, err)
	}
	return domaincars.Quote{
		Rule:   rule,
		Days:   days,
		Total:  total,
		Amount: s.Format.FormatCurrency(total),
	}, nil
}

// Rent selects a car, prices the rental and computes the due date.
// On any failure the zero Transaction is returned.
func (s *Service) Rent(ctx context.Context, customer domaincars.Customer, category domaincars.CarCategory, days int) (domaincars.Transaction, error) {
	if err := s.ensurePricing(); err != nil {
		return domaincars.Transaction{}, err
	}
	car, err := s.GetAvailableCar(ctx, category)
	if err != nil {
		return domaincars.Transaction{}, err
	}
	quote, err := s.CalculateFinalPrice(customer, category, days)
	if err != nil {
		return domaincars.Transaction{}, err
	}

	now := s.clock().Now()
	if loc := s.Format.Location(); loc != nil {
		now = now.In(loc)
	}
	period, err := daterange.ForDays(now, days)
	if err != nil {
		return domaincars.Transaction{}, err
	}

	tx := domaincars.Transaction{
		ID:       s.newID(),
		Customer: customer,
		Car:      car,
		DueDate:  s.Format.FormatLongDate(period.End),
		Amount:   quote.Amount,
		Total:    quote.Total,
		Period:   period,
	}
	s.logger().Info("rental priced",
		"transaction_id", tx.ID,
		"customer_id", customer.ID,
		"car_id", car.ID,
		"days", days,
		"multiplier", quote.Rule.Multiplier,
		"amount", tx.Amount,
	)
	return tx, nil
}

func (s *Service) ensurePricing() error {
	switch {
	case s.Taxes == nil:
		return errors.New("rental: tax table required")
	case s.Format == nil:
		return errors.New("rental: formatter required")
	default:
		return nil
	}
}

func (s *Service) random() policies.RandomSource {
	if s.Random != nil {
		return s.Random
	}
	return defaultRandom
}

func (s *Service) clock() policies.Clock {
	if s.Clock != nil {
		return s.Clock
	}
	return defaultClock
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return discardLogger
}
