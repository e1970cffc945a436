package dto

import (
	"time"

	domaincars "carrental/internal/domain/cars"
)

type Car struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ReleaseYear  int    `json:"release_year"`
	Available    bool   `json:"available"`
	GasAvailable bool   `json:"gas_available"`
}

type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type TaxRule struct {
	From       int     `json:"from"`
	To         int     `json:"to"`
	Multiplier float64 `json:"multiplier"`
}

type Quote struct {
	CustomerID string  `json:"customer_id"`
	CategoryID string  `json:"category_id"`
	Days       int     `json:"days"`
	Bracket    TaxRule `json:"bracket"`
	TotalCents int64   `json:"total_cents"`
	Currency   string  `json:"currency"`
	Amount     string  `json:"amount"`
}

type Transaction struct {
	ID         string    `json:"id"`
	Customer   Customer  `json:"customer"`
	Car        Car       `json:"car"`
	DueDate    string    `json:"due_date"`
	PickupAt   time.Time `json:"pickup_at"`
	DueAt      time.Time `json:"due_at"`
	Days       int       `json:"days"`
	Amount     string    `json:"amount"`
	TotalCents int64     `json:"total_cents"`
	Currency   string    `json:"currency"`
}

func MapCar(c domaincars.Car) Car {
	return Car{
		ID:           string(c.ID),
		Name:         c.Name,
		ReleaseYear:  c.ReleaseYear,
		Available:    c.Available,
		GasAvailable: c.GasAvailable,
	}
}

func MapCustomer(c domaincars.Customer) Customer {
	return Customer{ID: string(c.ID), Name: c.Name, Age: c.Age}
}

func MapTaxRule(r domaincars.TaxRule) TaxRule {
	return TaxRule{From: r.From, To: r.To, Multiplier: r.Multiplier}
}

func MapQuote(customer domaincars.Customer, category domaincars.CarCategory, q domaincars.Quote) Quote {
	return Quote{
		CustomerID: string(customer.ID),
		CategoryID: string(category.ID),
		Days:       q.Days,
		Bracket:    MapTaxRule(q.Rule),
		TotalCents: q.Total.Amount,
		Currency:   q.Total.Currency,
		Amount:     q.Amount,
	}
}

func MapTransaction(tx domaincars.Transaction) Transaction {
	return Transaction{
		ID:         tx.ID,
		Customer:   MapCustomer(tx.Customer),
		Car:        MapCar(tx.Car),
		DueDate:    tx.DueDate,
		PickupAt:   tx.Period.Start,
		DueAt:      tx.Period.End,
		Days:       tx.Period.Days(),
		Amount:     tx.Amount,
		TotalCents: tx.Total.Amount,
		Currency:   tx.Total.Currency,
	}
}
