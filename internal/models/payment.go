package models

import "time"

// Payment statuses reported by the backend.
const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
)

// Payment methods accepted on landlord-logged offline payments.
const (
	MethodCash     = "Cash"
	MethodCheck    = "Check"
	MethodTransfer = "Bank Transfer"
	MethodOnline   = "Online"
)

// Payment is immutable once created from the client's perspective.
type Payment struct {
	ID      string    `json:"id"`
	LeaseID string    `json:"lease_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Method  string    `json:"method"`
	Status  string    `json:"status"`
	Notes   *string   `json:"notes,omitempty"`
}

// RecordPaymentRequest logs an offline payment against a lease.
type RecordPaymentRequest struct {
	LeaseID string  `json:"lease_id"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Date    string  `json:"date,omitempty"`
	Notes   string  `json:"notes,omitempty"`
}

// CreateIntentRequest asks the backend for a processor payment intent.
type CreateIntentRequest struct {
	LeaseID string  `json:"lease_id"`
	Amount  float64 `json:"amount"`
}

// PaymentIntent is the backend's relay of the processor-issued intent.
// The client's involvement ends at handing CheckoutURL to the processor's
// hosted page; the processor redirects back with a payment-status parameter.
type PaymentIntent struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	CheckoutURL  string `json:"checkout_url"`
}
