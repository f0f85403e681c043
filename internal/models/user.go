package models

// Role names as the backend reports them on the persisted user record.
const (
	RoleLandlord = "landlord"
	RoleTenant   = "tenant"
)

// User is the persisted session record: the bearer credential plus the
// display fields written during login. It is the only durable client state.
type User struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
