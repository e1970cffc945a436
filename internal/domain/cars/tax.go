package cars

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrNoMatchingTaxRule   = errors.New("cars: no tax rule matches customer age")
	ErrInvalidTaxRule      = errors.New("cars: invalid tax rule")
	ErrOverlappingTaxRules = errors.New("cars: tax rules overlap")
	ErrEmptyTaxTable       = errors.New("cars: tax table has no rules")
)

// TaxRule maps the inclusive age range [From, To] to a price multiplier.
type TaxRule struct {
	From       int     `json:"from" yaml:"from"`
	To         int     `json:"to" yaml:"to"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

func (r TaxRule) Matches(age int) bool {
	return age >= r.From && age <= r.To
}

func (r TaxRule) Validate() error {
	switch {
	case r.From < 0:
		return fmt.Errorf("%w: lower bound %d is negative", ErrInvalidTaxRule, r.From)
	case r.To < r.From:
		return fmt.Errorf("%w: range %d-%d is inverted", ErrInvalidTaxRule, r.From, r.To)
	case r.Multiplier <= 0 || math.IsNaN(r.Multiplier) || math.IsInf(r.Multiplier, 0):
		return fmt.Errorf("%w: multiplier %v must be positive", ErrInvalidTaxRule, r.Multiplier)
	}
	return nil
}

// TaxTable is an immutable, ordered set of age brackets with no overlaps.
type TaxTable struct {
	rules []TaxRule
}

// NewTaxTable validates the rules and keeps them in the given order.
func NewTaxTable(rules []TaxRule) (*TaxTable, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyTaxTable
	}
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	sorted := append([]TaxRule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.From <= prev.To {
			return nil, fmt.Errorf("%w: %d-%d and %d-%d", ErrOverlappingTaxRules, prev.From, prev.To, cur.From, cur.To)
		}
	}
	return &TaxTable{rules: append([]TaxRule(nil), rules...)}, nil
}

// MustTaxTable panics on invalid rules; used for fixtures and defaults.
func MustTaxTable(rules []TaxRule) *TaxTable {
	t, err := NewTaxTable(rules)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultTaxTable returns the stock age brackets.
func DefaultTaxTable() *TaxTable {
	return MustTaxTable([]TaxRule{
		{From: 18, To: 25, Multiplier: 1.1},
		{From: 26, To: 30, Multiplier: 1.5},
		{From: 31, To: 100, Multiplier: 1.3},
	})
}

// Lookup returns the first rule, in declared order, covering age.
func (t *TaxTable) Lookup(age int) (TaxRule, error) {
	if t != nil {
		for _, r := range t.rules {
			if r.Matches(age) {
				return r, nil
			}
		}
	}
	return TaxRule{}, fmt.Errorf("%w: age %d", ErrNoMatchingTaxRule, age)
}

// Rules returns a copy of the rules in declared order.
func (t *TaxTable) Rules() []TaxRule {
	if t == nil {
		return nil
	}
	return append([]TaxRule(nil), t.rules...)
}
