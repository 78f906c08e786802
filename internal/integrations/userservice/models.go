package userservice

// User is the summary of an account as the user service exposes it.
// Attached to booking responses for display; never authoritative for
// authorization, which comes from the verified token.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}
