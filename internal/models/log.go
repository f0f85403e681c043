package models

import "time"

// Log types. The backend appends entries of every type; the client only
// filters and creates Communication/Payment entries.
const (
	LogCommunication = "Communication"
	LogPayment       = "Payment"
	LogMaintenance   = "Maintenance"
	LogLease         = "Lease"
	LogSystem        = "System"
)

// Log is append-only from the client's view.
type Log struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Actor      string    `json:"actor"`
	Message    string    `json:"message"`
	TenantID   *string   `json:"tenant_id,omitempty"`
	PropertyID *string   `json:"property_id,omitempty"`
	LeaseID    *string   `json:"lease_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateLogRequest struct {
	Type       string   `json:"type"`
	Message    string   `json:"message"`
	TenantID   *string  `json:"tenant_id,omitempty"`
	PropertyID *string  `json:"property_id,omitempty"`
	LeaseID    *string  `json:"lease_id,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	Method     string   `json:"method,omitempty"`
}
