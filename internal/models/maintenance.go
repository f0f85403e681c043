package models

import "time"

// Maintenance request statuses. Tenants create requests as Pending;
// only the landlord moves them forward.
const (
	MaintenancePending    = "Pending"
	MaintenanceInProgress = "In Progress"
	MaintenanceCompleted  = "Completed"
)

type MaintenanceRequest struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	TenantID    string    `json:"tenant_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateMaintenanceRequest struct {
	Description string `json:"description"`
}
