package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending             RequestStatus = "pending"
	RequestStatusApprovedByPresident RequestStatus = "approved_by_president"
	RequestStatusApprovedBySecretary RequestStatus = "approved_by_secretary"
	RequestStatusApproved            RequestStatus = "approved"
	// Terminal. Declared and honored by the queue projection, but no HTTP
	// route currently produces it; Reject is the only way in.
	RequestStatusRejected RequestStatus = "rejected"
)

// Approvals are the monotonic sign-off flags. Each is set at most once and
// never unset.
type Approvals struct {
	President bool `json:"president"`
	Secretary bool `json:"secretary"`
}

// MemberRequest is a proposed membership awaiting dual approval and payment
// confirmation. Once materialized into a Member it is retained as an audit
// trail and drops out of every queue.
type MemberRequest struct {
	ID            int32         `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	MemberType    MemberType    `json:"member_type"`
	MembershipFee int64         `json:"membership_fee"`
	Status        RequestStatus `json:"status"`
	Approvals     Approvals     `json:"approvals"`
	PaidConfirmed bool          `json:"paid_confirmed"`
	CreatedBy     int32         `json:"created_by"`
	CreatedByName string        `json:"created_by_name,omitempty"`
	CreatedOn     time.Time     `json:"created_on"`
}

// Approve records a sign-off by the acting role. Re-approval by the same
// role is a no-op, not an error. Any role outside the approval chain gets
// ErrForbidden and the request is left untouched.
func (r *MemberRequest) Approve(role Role) error {
	if r.Status == RequestStatusRejected {
		return ErrForbidden
	}
	switch role {
	case RolePresident:
		r.Approvals.President = true
	case RoleSecretary:
		r.Approvals.Secretary = true
	case RoleAccountant, RoleMember, RoleOther:
		return ErrForbidden
	default:
		return ErrForbidden
	}
	r.recomputeStatus()
	return nil
}

// RecordPayment stamps the accountant's payment confirmation. Idempotent.
// Materialization is the service's job; payment may legitimately land before
// both approvals do.
func (r *MemberRequest) RecordPayment(role Role) error {
	if role != RoleAccountant {
		return ErrForbidden
	}
	r.PaidConfirmed = true
	return nil
}

// Reject moves the request to the terminal rejected status.
func (r *MemberRequest) Reject() {
	r.Status = RequestStatusRejected
}

// ReadyToMaterialize reports whether a permanent Member record may be
// created: both approvals plus payment confirmation.
func (r *MemberRequest) ReadyToMaterialize() bool {
	return r.Status == RequestStatusApproved && r.PaidConfirmed
}

// recomputeStatus derives status from the approval flags. President is
// checked first, matching the recorded flow.
func (r *MemberRequest) recomputeStatus() {
	switch {
	case r.Approvals.President && r.Approvals.Secretary:
		r.Status = RequestStatusApproved
	case r.Approvals.President:
		r.Status = RequestStatusApprovedByPresident
	case r.Approvals.Secretary:
		r.Status = RequestStatusApprovedBySecretary
	default:
		r.Status = RequestStatusPending
	}
}

// InQueueFor reports whether the request sits in the given role's action
// queue: approvers see what they haven't signed, the accountant sees fully
// approved but unpaid requests, everyone else sees nothing.
func (r *MemberRequest) InQueueFor(role Role) bool {
	if r.Status == RequestStatusRejected {
		return false
	}
	switch role {
	case RolePresident:
		return !r.Approvals.President
	case RoleSecretary:
		return !r.Approvals.Secretary
	case RoleAccountant:
		return r.Approvals.President && r.Approvals.Secretary && !r.PaidConfirmed
	case RoleMember, RoleOther:
		return false
	default:
		return false
	}
}

// FilterRequestsForRole is the role-scoped queue projection. Pure filter,
// recomputed on every call.
func FilterRequestsForRole(reqs []MemberRequest, role Role) []MemberRequest {
	filtered := make([]MemberRequest, 0, len(reqs))
	for _, r := range reqs {
		if r.InQueueFor(role) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
