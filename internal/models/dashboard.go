package models

// MonthlyAmount is one point of the rent-collected chart series.
type MonthlyAmount struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// DashboardStats is a read-only aggregate computed entirely server-side.
// The client renders it as-is and never derives it from raw records.
type DashboardStats struct {
	TotalProperties    int             `json:"total_properties"`
	OccupiedProperties int             `json:"occupied_properties"`
	VacantProperties   int             `json:"vacant_properties"`
	TotalTenants       int             `json:"total_tenants"`
	MonthlyIncome      float64         `json:"monthly_income"`
	OverdueBalance     float64         `json:"overdue_balance"`
	PendingMaintenance int             `json:"pending_maintenance"`
	OccupancyRate      float64         `json:"occupancy_rate"`
	RentCollected      []MonthlyAmount `json:"rent_collected"`
}
