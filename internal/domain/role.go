package domain

import "errors"

// ErrForbidden marks a transition attempted by a role outside the ones the
// transition accepts. Services re-export it; the HTTP layer maps it to 403.
var ErrForbidden = errors.New("forbidden")

// Role is the organizational role attached to a user. Only the three office
// roles gate anything; everyone else is an ordinary member or other.
type Role string

const (
	RolePresident  Role = "president"
	RoleSecretary  Role = "secretary"
	RoleAccountant Role = "accountant"
	RoleMember     Role = "member"
	RoleOther      Role = "other"
)

// ParseRole normalizes stored role strings. Legacy values that never gated
// anything (vice_president, admin, ...) collapse to other.
func ParseRole(s string) Role {
	switch Role(s) {
	case RolePresident, RoleSecretary, RoleAccountant, RoleMember, RoleOther:
		return Role(s)
	default:
		return RoleOther
	}
}

// CanApproveRequests reports whether the role participates in the dual
// sign-off chain.
func (r Role) CanApproveRequests() bool {
	return r == RolePresident || r == RoleSecretary
}
