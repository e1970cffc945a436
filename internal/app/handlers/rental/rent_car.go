package rental

import (
	"context"

	"carrental/internal/app/commands"
	"carrental/internal/app/dto"
	"carrental/internal/app/policies"
	svc "carrental/internal/app/services/rental"
	domaincars "carrental/internal/domain/cars"
)

const rentCarKey = "rental.rent"

type RentCarCommand struct {
	CustomerID string `validate:"required"`
	CategoryID string `validate:"required"`
	Days       int    `validate:"gt=0"`
}

func (c RentCarCommand) Key() string { return rentCarKey }

type RentCarHandler struct {
	Service    *svc.Service
	Customers  policies.CustomerRepository
	Categories policies.CategoryRepository
}

func (h *RentCarHandler) Handle(ctx context.Context, cmd RentCarCommand) (dto.Transaction, error) {
	customer, category, err := resolve(ctx, h.Customers, h.Categories, cmd.CustomerID, cmd.CategoryID)
	if err != nil {
		return dto.Transaction{}, err
	}
	tx, err := h.Service.Rent(ctx, customer, category, cmd.Days)
	if err != nil {
		return dto.Transaction{}, err
	}
	return dto.MapTransaction(tx), nil
}

func resolve(ctx context.Context, customers policies.CustomerRepository, categories policies.CategoryRepository, customerID, categoryID string) (domaincars.Customer, domaincars.CarCategory, error) {
	if customers == nil || categories == nil {
		return domaincars.Customer{}, domaincars.CarCategory{}, ErrCatalogMissing
	}
	customer, err := customers.Find(ctx, domaincars.CustomerID(customerID))
	if err != nil {
		return domaincars.Customer{}, domaincars.CarCategory{}, err
	}
	category, err := categories.Find(ctx, domaincars.CategoryID(categoryID))
	if err != nil {
		return domaincars.Customer{}, domaincars.CarCategory{}, err
	}
	return customer, category, nil
}

var _ commands.Handler[RentCarCommand, dto.Transaction] = (*RentCarHandler)(nil)
