package domain

type MemberType string

const (
	MemberTypeHonorary MemberType = "honorary"
	MemberTypeGeneral  MemberType = "general"
	MemberTypeFounder  MemberType = "founder" // users only, never assigned via requests
)

// ParseMemberType normalizes input, falling back to general.
func ParseMemberType(s string) MemberType {
	switch MemberType(s) {
	case MemberTypeHonorary, MemberTypeGeneral, MemberTypeFounder:
		return MemberType(s)
	default:
		return MemberTypeGeneral
	}
}

// MembershipPrefix is the human-facing membership number prefix for the type.
// PM for honorary (patron member), GM for general.
func (t MemberType) MembershipPrefix() string {
	if t == MemberTypeHonorary {
		return "PM"
	}
	return "GM"
}

type User struct {
	ID           int32      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	MemberType   MemberType `json:"member_type"`
	// Pre-seeded membership money (founder seed payments); counted by the
	// summary aggregator alongside materialized member fees.
	InitialPaidAmount int64  `json:"initial_paid_amount"`
	CreatedOn         string `json:"created_on"`
}
