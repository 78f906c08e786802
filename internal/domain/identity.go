package domain

// User roles as issued in auth tokens
const (
	RoleCustomer     = "customer"
	RoleServiceOwner = "service_owner"
)

// Identity is the authenticated caller: the fact the core consumes from the
// auth layer. It is extracted from the verified token, never from the body.
type Identity struct {
	UserID int64
	Role   string
}

// IsCustomer returns true if the caller registered as a customer
func (i Identity) IsCustomer() bool {
	return i.Role == RoleCustomer
}

// IsServiceOwner returns true if the caller registered as a service owner
func (i Identity) IsServiceOwner() bool {
	return i.Role == RoleServiceOwner
}
