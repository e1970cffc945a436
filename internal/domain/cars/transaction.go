package cars

import (
	"carrental/internal/domain/shared/daterange"
	"carrental/internal/domain/shared/money"
)

// Transaction is the record produced by a completed rental computation.
type Transaction struct {
	ID       string
	Customer Customer
	Car      Car
	DueDate  string
	Amount   string
	Total    money.Money
	Period   daterange.DateRange
}

// Quote is the priced outcome of applying a tax bracket to a category.
type Quote struct {
	Rule   TaxRule
	Days   int
	Total  money.Money
	Amount string
}
