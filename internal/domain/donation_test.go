package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonation_Verify(t *testing.T) {
	t.Run("AccountantStampsEverything", func(t *testing.T) {
		d := &Donation{ID: 1, Amount: 500, DonationID: NewDonationRef()}

		changed, err := d.Verify(7, RoleAccountant)
		assert.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, d.Verified)
		assert.True(t, d.PaymentVerified)
		assert.Equal(t, int32(7), *d.VerifiedBy)
		assert.Equal(t, int32(7), *d.ReceivedBy)
		assert.NotNil(t, d.ReceiptID)
		assert.True(t, strings.HasPrefix(*d.ReceiptID, "REC-"))
	})

	t.Run("ReverifyIsNoOp", func(t *testing.T) {
		d := &Donation{ID: 1, Amount: 500}
		_, err := d.Verify(7, RoleAccountant)
		assert.NoError(t, err)
		firstReceipt := *d.ReceiptID

		changed, err := d.Verify(9, RoleAccountant)
		assert.NoError(t, err)
		assert.False(t, changed)
		// Original stamps survive the second call untouched.
		assert.Equal(t, int32(7), *d.VerifiedBy)
		assert.Equal(t, firstReceipt, *d.ReceiptID)
	})

	t.Run("OtherRolesForbidden", func(t *testing.T) {
		for _, role := range []Role{RolePresident, RoleSecretary, RoleMember, RoleOther} {
			d := &Donation{ID: 1, Amount: 500}
			changed, err := d.Verify(7, role)
			assert.ErrorIs(t, err, ErrForbidden, "role %s", role)
			assert.False(t, changed)
			assert.False(t, d.Verified)
			assert.Nil(t, d.ReceiptID)
		}
	})
}

func TestDonationRefs(t *testing.T) {
	don := NewDonationRef()
	rec := NewReceiptRef()
	assert.True(t, strings.HasPrefix(don, "DON-"))
	assert.True(t, strings.HasPrefix(rec, "REC-"))
	assert.Len(t, don, 12)
	assert.Len(t, rec, 12)
	assert.Equal(t, strings.ToUpper(don), don)
}

func TestParseDonationMethod(t *testing.T) {
	assert.Equal(t, MethodUPI, ParseDonationMethod("upi"))
	assert.Equal(t, MethodCash, ParseDonationMethod(""))
	assert.Equal(t, MethodCash, ParseDonationMethod("bitcoin"))
}
