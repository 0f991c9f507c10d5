package ledger

// UserIDString represents a user identifier.
type UserIDString = string

// Role enumerates the access roles known to the caller-facing surface.
type Role string

const (
	// RoleAdmin grants catalog management access.
	RoleAdmin Role = "admin"

	// RoleMember grants borrow/return/history access.
	RoleMember Role = "member"
)

// IsValid reports whether the role is one of the recognized values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User represents an account referenced by loans. Beyond identity, username
// uniqueness and the role enum, accounts are opaque to the lending core.
type User struct {
	UserID       UserIDString
	Username     string
	PasswordHash string
	Role         Role
}
