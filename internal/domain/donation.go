package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type DonationMethod string

const (
	MethodCash  DonationMethod = "cash"
	MethodUPI   DonationMethod = "upi"
	MethodBank  DonationMethod = "bank"
	MethodCard  DonationMethod = "card"
	MethodOther DonationMethod = "other"
)

// ParseDonationMethod normalizes input, falling back to cash.
func ParseDonationMethod(s string) DonationMethod {
	switch DonationMethod(s) {
	case MethodCash, MethodUPI, MethodBank, MethodCard, MethodOther:
		return DonationMethod(s)
	default:
		return MethodCash
	}
}

type Donation struct {
	ID        int32  `json:"id"`
	DonorName string `json:"donor_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Amount    int64  `json:"amount"`
	// DonationID is stamped at creation; ReceiptID only exists once the
	// donation has been verified.
	DonationID      string         `json:"donation_id"`
	ReceiptID       *string        `json:"receipt_id,omitempty"`
	Verified        bool           `json:"verified"`
	PaymentVerified bool           `json:"payment_verified"`
	AddedBy         *int32         `json:"added_by,omitempty"`
	AddedByName     string         `json:"added_by_name,omitempty"`
	VerifiedBy      *int32         `json:"verified_by,omitempty"`
	ReceivedBy      *int32         `json:"received_by,omitempty"`
	Method          DonationMethod `json:"method"`
	Date            time.Time      `json:"date"`
	Note            string         `json:"note"`
	CreatedOn       time.Time      `json:"created_on"`
}

// NewDonationRef generates a human-facing donation reference, e.g. DON-A1B2C3D4.
func NewDonationRef() string {
	return "DON-" + shortRef()
}

// NewReceiptRef generates a receipt reference, e.g. REC-A1B2C3D4.
func NewReceiptRef() string {
	return "REC-" + shortRef()
}

func shortRef() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// Verify marks the donation's funds as received. Accountant only. Verifying
// an already-verified donation is a no-op that leaves the original stamps
// and receipt reference intact; changed reports whether anything happened.
func (d *Donation) Verify(actorID int32, role Role) (changed bool, err error) {
	if role != RoleAccountant {
		return false, ErrForbidden
	}
	if d.Verified {
		return false, nil
	}
	d.Verified = true
	d.PaymentVerified = true
	d.VerifiedBy = &actorID
	d.ReceivedBy = &actorID
	if d.ReceiptID == nil {
		ref := NewReceiptRef()
		d.ReceiptID = &ref
	}
	return true, nil
}
