package rental

import (
	"context"
	"errors"

	"carrental/internal/app/dto"
	"carrental/internal/app/policies"
	"carrental/internal/app/queries"
	svc "carrental/internal/app/services/rental"
	domaincars "carrental/internal/domain/cars"
)

const (
	quotePriceKey = "rental.quote"
	pickCarKey    = "rental.pick_car"
)

var ErrCatalogMissing = errors.New("rental: customer and category catalogs required")

type QuotePriceQuery struct {
	CustomerID string `validate:"required"`
	CategoryID string `validate:"required"`
	Days       int    `validate:"gt=0"`
}

func (q QuotePriceQuery) Key() string { return quotePriceKey }

type QuotePriceHandler struct {
	Service    *svc.Service
	Customers  policies.CustomerRepository
	Categories policies.CategoryRepository
}

func (h *QuotePriceHandler) Handle(ctx context.Context, q QuotePriceQuery) (dto.Quote, error) {
	customer, category, err := resolve(ctx, h.Customers, h.Categories, q.CustomerID, q.CategoryID)
	if err != nil {
		return dto.Quote{}, err
	}
	quote, err := h.Service.CalculateFinalPrice(customer, category, q.Days)
	if err != nil {
		return dto.Quote{}, err
	}
	return dto.MapQuote(customer, category, quote), nil
}

type PickCarQuery struct {
	CategoryID string `validate:"required"`
}

func (q PickCarQuery) Key() string { return pickCarKey }

type PickCarHandler struct {
	Service    *svc.Service
	Categories policies.CategoryRepository
}

func (h *PickCarHandler) Handle(ctx context.Context, q PickCarQuery) (dto.Car, error) {
	if h.Categories == nil {
		return dto.Car{}, ErrCatalogMissing
	}
	category, err := h.Categories.Find(ctx, domaincars.CategoryID(q.CategoryID))
	if err != nil {
		return dto.Car{}, err
	}
	car, err := h.Service.GetAvailableCar(ctx, category)
	if err != nil {
		return dto.Car{}, err
	}
	return dto.MapCar(car), nil
}

var (
	_ queries.Handler[QuotePriceQuery, dto.Quote] = (*QuotePriceHandler)(nil)
	_ queries.Handler[PickCarQuery, dto.Car]      = (*PickCarHandler)(nil)
)
