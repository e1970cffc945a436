package cars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental/internal/domain/shared/money"
)

func TestDefaultTaxTableBrackets(t *testing.T) {
	table := DefaultTaxTable()

	cases := []struct {
		age  int
		want float64
	}{
		{18, 1.1},
		{20, 1.1},
		{25, 1.1},
		{26, 1.5},
		{30, 1.5},
		{31, 1.3},
		{50, 1.3},
		{100, 1.3},
	}
	for _, tc := range cases {
		rule, err := table.Lookup(tc.age)
		require.NoError(t, err, "age %d", tc.age)
		assert.Equal(t, tc.want, rule.Multiplier, "age %d", tc.age)
	}
}

func TestLookupOutsideAllBrackets(t *testing.T) {
	table := DefaultTaxTable()
	for _, age := range []int{0, 17, 101} {
		_, err := table.Lookup(age)
		assert.ErrorIs(t, err, ErrNoMatchingTaxRule, "age %d", age)
	}

	var nilTable *TaxTable
	_, err := nilTable.Lookup(30)
	assert.ErrorIs(t, err, ErrNoMatchingTaxRule)
}

func TestNewTaxTableRejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name  string
		rules []TaxRule
		want  error
	}{
		{name: "empty", rules: nil, want: ErrEmptyTaxTable},
		{name: "inverted range", rules: []TaxRule{{From: 30, To: 20, Multiplier: 1}}, want: ErrInvalidTaxRule},
		{name: "negative lower bound", rules: []TaxRule{{From: -1, To: 20, Multiplier: 1}}, want: ErrInvalidTaxRule},
		{name: "zero multiplier", rules: []TaxRule{{From: 18, To: 20, Multiplier: 0}}, want: ErrInvalidTaxRule},
		{
			name:  "overlap",
			rules: []TaxRule{{From: 18, To: 30, Multiplier: 1.1}, {From: 30, To: 40, Multiplier: 1.2}},
			want:  ErrOverlappingTaxRules,
		},
		{
			name:  "overlap declared out of order",
			rules: []TaxRule{{From: 40, To: 60, Multiplier: 1.1}, {From: 18, To: 45, Multiplier: 1.2}},
			want:  ErrOverlappingTaxRules,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTaxTable(tc.rules)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTaxTableKeepsDeclaredOrder(t *testing.T) {
	rules := []TaxRule{
		{From: 40, To: 50, Multiplier: 1.3},
		{From: 18, To: 39, Multiplier: 1.1},
	}
	table, err := NewTaxTable(rules)
	require.NoError(t, err)
	assert.Equal(t, rules, table.Rules())

	got := table.Rules()
	got[0].Multiplier = 9
	assert.Equal(t, 1.3, table.Rules()[0].Multiplier)
}

func TestInputValidation(t *testing.T) {
	assert.ErrorIs(t, CarCategory{}.Validate(), ErrEmptyCategory)
	assert.NoError(t, CarCategory{CarIDs: []CarID{"a"}, Price: money.Must(100, "BRL")}.Validate())
	assert.ErrorIs(t, CarCategory{CarIDs: []CarID{"a"}, Price: money.Must(-1, "BRL")}.Validate(), ErrNegativePrice)
	assert.ErrorIs(t, CarCategory{CarIDs: []CarID{"a"}, Price: money.Money{Amount: 100}}.Validate(), money.ErrInvalidCurrency)
	assert.ErrorIs(t, Customer{Age: -1}.Validate(), ErrInvalidAge)
	assert.NoError(t, Customer{Age: 0}.Validate())
	assert.ErrorIs(t, ValidateDays(0), ErrInvalidRentalDays)
	assert.NoError(t, ValidateDays(1))
}
