package models

import "time"

// Property occupancy statuses reported by the backend.
const (
	PropertyVacant   = "Vacant"
	PropertyOccupied = "Occupied"
)

type Property struct {
	ID         string    `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	RentAmount float64   `json:"rent_amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreatePropertyRequest struct {
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	RentAmount float64 `json:"rent_amount"`
}

type UpdatePropertyRequest struct {
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	RentAmount float64 `json:"rent_amount"`
	Status     string  `json:"status"`
}
