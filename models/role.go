package models

// Role is the closed set of account roles. Tokens carrying any other value
// are rejected at the gate rather than treated as an unprivileged user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}
