package money

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidCurrency = errors.New("money: invalid currency code")
	ErrInvalidAmount   = errors.New("money: amount is not a finite number")
	ErrAmountOverflow  = errors.New("money: amount does not fit in minor units")
)

// Money keeps amounts in integer minor units (cents) to avoid floating point drift.
type Money struct {
	Amount   int64
	Currency string
}

// New constructs Money from minor units validating the currency code.
func New(amount int64, currency string) (Money, error) {
	if len(currency) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	return Money{Amount: amount, Currency: strings.ToUpper(currency)}, nil
}

// FromMajor converts a decimal amount (e.g. 37.6) into minor units.
func FromMajor(amount float64, currency string) (Money, error) {
	cents, err := roundHalfAway(amount * 100)
	if err != nil {
		return Money{}, err
	}
	return New(cents, currency)
}

// Must creates Money and panics if validation fails; useful in tests and fixtures.
func Must(amount int64, currency string) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Scale multiplies the amount by factor, rounding half away from zero to the minor unit.
// Products outside the int64 range fail with ErrAmountOverflow.
func (m Money) Scale(factor float64) (Money, error) {
	amount, err := roundHalfAway(float64(m.Amount) * factor)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: amount, Currency: m.Currency}, nil
}

// IsZero returns true if the amount equals zero.
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount < 0
}

// roundHalfAway drops the float noise left by products like 3760*1.1*5.
func roundHalfAway(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	r := math.Round(math.Round(v*1e6) / 1e6)
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if r >= math.MaxInt64 || r < math.MinInt64 {
		return 0, ErrAmountOverflow
	}
	return int64(r), nil
}
