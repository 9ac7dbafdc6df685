package domain

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

// Identity is the authenticated user resolved from a session token. It is
// never persisted; it lives exactly as long as the token that produced it.
type Identity struct {
	ID   int
	Name string
	Role Role
}

func (i Identity) Resolved() bool {
	return i.ID > 0
}

// UserProfile carries the profile fields the backend exposes alongside the
// identity, including the id of the user's linked booking (0 when none).
type UserProfile struct {
	ID            int
	Name          string
	Email         string
	Phone         string
	Address       string
	Role          Role
	BookServiceID int
}
