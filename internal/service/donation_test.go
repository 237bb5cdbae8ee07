package service_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/realtime"
	"ngobooks-backend/internal/service"
)

func TestDonationService_CreateDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("AuthenticatedAdd", func(t *testing.T) {
		mockRepo := new(MockDonationRepo)
		mockNotifier := new(MockNotifier)
		svc := service.NewDonationService(mockRepo, mockNotifier)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(d *domain.Donation) bool {
			return strings.HasPrefix(d.DonationID, "DON-") &&
				!d.Verified && d.ReceiptID == nil &&
				d.AddedBy != nil && *d.AddedBy == 12
		})).Return(nil).Once()

		actor := service.Actor{ID: 12, Role: domain.RoleAccountant}
		donation, err := svc.CreateDonation(ctx, &actor, service.DonationParams{
			DonorName: "Ravi Kumar", Amount: 2500, Method: "upi", Date: "2026-02-01",
		})
		assert.NoError(t, err)
		assert.False(t, donation.Verified)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), donation.Date)
		// Creation moves no totals, so no events fire yet.
		mockNotifier.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("PublicAddHasNoActor", func(t *testing.T) {
		mockRepo := new(MockDonationRepo)
		svc := service.NewDonationService(mockRepo, new(MockNotifier))

		mockRepo.On("Create", ctx, mock.MatchedBy(func(d *domain.Donation) bool {
			return d.AddedBy == nil
		})).Return(nil).Once()

		_, err := svc.CreateDonation(ctx, nil, service.DonationParams{DonorName: "Anon", Amount: 100})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		svc := service.NewDonationService(new(MockDonationRepo), new(MockNotifier))
		_, err := svc.CreateDonation(ctx, nil, service.DonationParams{DonorName: "Anon", Amount: 0})
		assert.ErrorIs(t, err, service.ErrInvalidAmount)
	})
}

func TestDonationService_VerifyDonation(t *testing.T) {
	ctx := context.Background()
	accountant := service.Actor{ID: 12, Role: domain.RoleAccountant}

	t.Run("StampsAndBroadcasts", func(t *testing.T) {
		mockRepo := new(MockDonationRepo)
		mockNotifier := new(MockNotifier)
		svc := service.NewDonationService(mockRepo, mockNotifier)

		donation := &domain.Donation{ID: 1, DonorName: "Ravi Kumar", Amount: 2500, DonationID: "DON-AAAA1111"}
		mockRepo.On("GetByID", ctx, int32(1)).Return(donation, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.Donation) bool {
			return d.Verified && d.ReceiptID != nil && *d.VerifiedBy == 12
		})).Return(nil).Once()
		mockNotifier.On("Broadcast", realtime.EventStatsUpdate, nil).Once()
		mockNotifier.On("Broadcast", realtime.EventNewDonation, mock.Anything).Once()

		got, err := svc.VerifyDonation(ctx, accountant, 1)
		assert.NoError(t, err)
		assert.True(t, got.Verified)
		assert.True(t, strings.HasPrefix(*got.ReceiptID, "REC-"))
		mockRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("ReverifyDoesNotPersistOrBroadcast", func(t *testing.T) {
		mockRepo := new(MockDonationRepo)
		mockNotifier := new(MockNotifier)
		svc := service.NewDonationService(mockRepo, mockNotifier)

		receipt := "REC-BBBB2222"
		verifiedBy := int32(7)
		donation := &domain.Donation{ID: 1, Amount: 2500, Verified: true, PaymentVerified: true, ReceiptID: &receipt, VerifiedBy: &verifiedBy}
		mockRepo.On("GetByID", ctx, int32(1)).Return(donation, nil).Once()

		got, err := svc.VerifyDonation(ctx, accountant, 1)
		assert.NoError(t, err)
		assert.Equal(t, "REC-BBBB2222", *got.ReceiptID)
		assert.Equal(t, int32(7), *got.VerifiedBy)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		mockNotifier.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
	})

	t.Run("NonAccountantForbidden", func(t *testing.T) {
		mockRepo := new(MockDonationRepo)
		svc := service.NewDonationService(mockRepo, new(MockNotifier))

		donation := &domain.Donation{ID: 1, Amount: 2500}
		mockRepo.On("GetByID", ctx, int32(1)).Return(donation, nil).Once()

		_, err := svc.VerifyDonation(ctx, service.Actor{ID: 10, Role: domain.RolePresident}, 1)
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("UnknownID", func(t *testing.T) {
		mockRepo := new(MockDonationRepo)
		svc := service.NewDonationService(mockRepo, new(MockNotifier))

		mockRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.VerifyDonation(ctx, accountant, 99)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestDonationService_VerifyDonations(t *testing.T) {
	ctx := context.Background()
	accountant := service.Actor{ID: 12, Role: domain.RoleAccountant}

	t.Run("SkipsUnknownIDs", func(t *testing.T) {
		mockRepo := new(MockDonationRepo)
		mockNotifier := new(MockNotifier)
		svc := service.NewDonationService(mockRepo, mockNotifier)

		first := &domain.Donation{ID: 1, Amount: 100}
		third := &domain.Donation{ID: 3, Amount: 300}
		mockRepo.On("GetByID", ctx, int32(1)).Return(first, nil).Once()
		mockRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("GetByID", ctx, int32(3)).Return(third, nil).Once()
		mockRepo.On("Update", ctx, mock.Anything).Return(nil).Twice()
		// One stats refresh per batch, not per item.
		mockNotifier.On("Broadcast", realtime.EventStatsUpdate, nil).Once()

		results, err := svc.VerifyDonations(ctx, accountant, []int32{1, 99, 3})
		assert.NoError(t, err)
		assert.Len(t, results, 2)
		assert.True(t, results[0].Verified)
		assert.True(t, results[1].Verified)
		mockRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("AllAlreadyVerifiedIsQuiet", func(t *testing.T) {
		mockRepo := new(MockDonationRepo)
		mockNotifier := new(MockNotifier)
		svc := service.NewDonationService(mockRepo, mockNotifier)

		receipt := "REC-CCCC3333"
		verified := &domain.Donation{ID: 1, Amount: 100, Verified: true, ReceiptID: &receipt}
		mockRepo.On("GetByID", ctx, int32(1)).Return(verified, nil).Once()

		results, err := svc.VerifyDonations(ctx, accountant, []int32{1})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		mockNotifier.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
	})

	t.Run("RoleGateRunsBeforeAnyWork", func(t *testing.T) {
		mockRepo := new(MockDonationRepo)
		svc := service.NewDonationService(mockRepo, new(MockNotifier))

		_, err := svc.VerifyDonations(ctx, service.Actor{ID: 11, Role: domain.RoleSecretary}, []int32{1, 2})
		assert.ErrorIs(t, err, service.ErrForbidden)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
