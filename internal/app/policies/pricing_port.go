package policies

import (
	"time"

	domaincars "carrental/internal/domain/cars"
	"carrental/internal/domain/shared/money"
)

// TaxTable resolves the age bracket applied to a rental.
type TaxTable interface {
	Lookup(age int) (domaincars.TaxRule, error)
}

type CurrencyFormatter interface {
	FormatCurrency(m money.Money) string
}

type DateFormatter interface {
	FormatLongDate(t time.Time) string
	Location() *time.Location
}

// Formatter is the locale-bound pair used when assembling transactions.
type Formatter interface {
	CurrencyFormatter
	DateFormatter
}
