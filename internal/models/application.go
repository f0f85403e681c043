package models

import "time"

// Application statuses. Prospective tenants submit as Pending; the
// landlord approves or denies.
const (
	ApplicationPending  = "Pending"
	ApplicationApproved = "Approved"
	ApplicationDenied   = "Denied"
)

type Application struct {
	ID            string    `json:"id"`
	ApplicantName string    `json:"applicant_name"`
	Email         string    `json:"email"`
	PropertyID    *string   `json:"property_id,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type SubmitApplicationRequest struct {
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
	PropertyID    string `json:"property_id,omitempty"`
}
