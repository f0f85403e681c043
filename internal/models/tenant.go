package models

// Tenant as the landlord endpoints report it. LeaseID and Balance are
// present only when the tenant has an active lease; the convention is at
// most one active lease per tenant at a time.
type Tenant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      *string  `json:"phone,omitempty"`
	LeaseID    *string  `json:"lease_id,omitempty"`
	PropertyID *string  `json:"property_id,omitempty"`
	Balance    *float64 `json:"balance,omitempty"`
}

// OutstandingBalance returns the tenant's balance, zero when the backend
// omitted the field.
func (t Tenant) OutstandingBalance() float64 {
	if t.Balance == nil {
		return 0
	}
	return *t.Balance
}
