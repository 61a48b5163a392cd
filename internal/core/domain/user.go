package domain

import "errors"

// Role is the access tier of an identity. Roles form a total order by rank.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// roleRank orders roles from least to most privileged.
var roleRank = map[Role]int{
	RoleUser:  0,
	RoleAdmin: 1,
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrInvalidRole        = errors.New("invalid role")
)

// Rank returns the position of r in the role order, or -1 for an unknown role.
func (r Role) Rank() int {
	rank, ok := roleRank[r]
	if !ok {
		return -1
	}
	return rank
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r.Rank() >= 0
}

// Satisfies reports whether r meets the required minimum role.
// Unknown roles never satisfy anything and are never satisfied.
func (r Role) Satisfies(required Role) bool {
	have, need := r.Rank(), required.Rank()
	if have < 0 || need < 0 {
		return false
	}
	return have >= need
}

// Satisfies is the access gate: whether actual meets required.
func Satisfies(actual, required Role) bool {
	return actual.Satisfies(required)
}

// ParseRole converts a stored role name into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// User is an authenticated identity. It is owned by the persistence layer;
// the auth core only reads it.
type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Credential links a password digest to a User. It never leaves the
// credential service.
type Credential struct {
	ID           string
	UserID       string
	PasswordHash string
}
