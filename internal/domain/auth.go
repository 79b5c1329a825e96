package domain

import "errors"

// Role is the closed set of identity roles AgriLink recognizes.
type Role string

const (
	RoleFarmer  Role = "farmer"
	RoleOfficer Role = "officer"
)

// ErrInvalidRole is returned when a token decodes to a role outside the
// closed enumeration. Callers must reject the request as an internal error
// rather than proceed with an unscoped query.
var ErrInvalidRole = errors.New("invalid role")

// Valid reports whether the role is one of the known members.
func (r Role) Valid() bool {
	return r == RoleFarmer || r == RoleOfficer
}
