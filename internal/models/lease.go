package models

import "time"

// Lease links a tenant to a property for a date range at a fixed rent.
// Property and Tenant are populated only when the backend expands the
// references (detail endpoints); list endpoints return the bare IDs.
type Lease struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	TenantID   string    `json:"tenant_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	RentAmount float64   `json:"rent_amount"`
	Balance    float64   `json:"balance"`
	Property   *Property `json:"property,omitempty"`
	Tenant     *Tenant   `json:"tenant,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AssignLeaseRequest is the body of the landlord "assign lease" action.
// Dates use the backend's YYYY-MM-DD form.
type AssignLeaseRequest struct {
	PropertyID string  `json:"property_id"`
	TenantID   string  `json:"tenant_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	RentAmount float64 `json:"rent_amount"`
}
