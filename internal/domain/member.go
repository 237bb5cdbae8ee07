package domain

import "time"

// Member is a permanent membership record. Created either directly by the
// president or secretary, or by materializing a fully approved and paid
// member request.
type Member struct {
	ID      int32  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	// MembershipNo is assigned exactly once, at materialization, and never
	// mutated after. Directly added members carry none.
	MembershipNo      *string    `json:"membership_no,omitempty"`
	MemberType        MemberType `json:"member_type"`
	RefID             string     `json:"ref_id"`
	JoinedOn          time.Time  `json:"joined_on"`
	MembershipFee     int64      `json:"membership_fee"`
	AddedBy           *int32     `json:"added_by,omitempty"`
	ApprovedBy        Approvals  `json:"approved_by"`
	CreatedViaRequest bool       `json:"created_via_request"`
	CreatedOn         time.Time  `json:"created_on"`
}
