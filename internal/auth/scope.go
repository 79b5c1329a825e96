package auth

import (
	"github.com/spec-kit/agrilink/internal/domain"
)

// Scope is the data-visibility filter for owner-scoped entities. It is
// intersected with any caller-supplied filters before a query executes, so
// a farmer identity can never widen its view past its own records.
type Scope struct {
	// FarmerID, when set, restricts results to records owned by this farmer.
	FarmerID *string
	// OfficerID, when set, restricts results to records assigned to this
	// officer. Only set for officers opting into an assigned-only view.
	OfficerID *string
}

// ScopeOptions carries caller-supplied scope modifiers.
type ScopeOptions struct {
	// AssignedOnly narrows an officer's otherwise unrestricted view to
	// records assigned to them. Ignored for farmers.
	AssignedOnly bool
}

// ScopeFor computes the visibility filter for an identity over owner-scoped
// entities. Farmers are always pinned to their own records; officers see an
// unrestricted view unless they opt into assigned-only. Any role outside the
// closed enumeration yields ErrInvalidRole and the caller must reject the
// request rather than run an unscoped query.
func ScopeFor(p *Principal, opts ScopeOptions) (Scope, error) {
	if p == nil {
		return Scope{}, domain.ErrInvalidRole
	}
	switch p.Role {
	case domain.RoleFarmer:
		id := p.SubjectID
		return Scope{FarmerID: &id}, nil
	case domain.RoleOfficer:
		if opts.AssignedOnly {
			id := p.SubjectID
			return Scope{OfficerID: &id}, nil
		}
		return Scope{}, nil
	default:
		return Scope{}, domain.ErrInvalidRole
	}
}

// CanMutateOwned reports whether the identity may mutate an owner-scoped
// record: the owning farmer, or any officer.
func CanMutateOwned(p *Principal, ownerFarmerID string) bool {
	if p == nil {
		return false
	}
	if p.Role == domain.RoleOfficer {
		return true
	}
	return p.Role == domain.RoleFarmer && p.SubjectID == ownerFarmerID
}
