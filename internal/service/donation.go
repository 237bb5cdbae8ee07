package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/logger"
	"ngobooks-backend/internal/metrics"
	"ngobooks-backend/internal/realtime"
	"ngobooks-backend/internal/repository"
)

type donationService struct {
	donationRepo repository.DonationRepository
	notifier     Notifier
}

func NewDonationService(donationRepo repository.DonationRepository, notifier Notifier) DonationService {
	return &donationService{donationRepo: donationRepo, notifier: notifier}
}

func (s *donationService) CreateDonation(ctx context.Context, actor *Actor, params DonationParams) (*domain.Donation, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	donation := &domain.Donation{
		DonorName:  params.DonorName,
		Email:      params.Email,
		Phone:      params.Phone,
		Amount:     params.Amount,
		DonationID: domain.NewDonationRef(),
		Method:     domain.ParseDonationMethod(params.Method),
		Date:       parseDate(params.Date),
		Note:       params.Note,
	}
	if actor != nil {
		donation.AddedBy = &actor.ID
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}
	// No events yet: unverified money doesn't move any total.
	return donation, nil
}

func (s *donationService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	return s.donationRepo.List(ctx, listLimit)
}

func (s *donationService) ListPending(ctx context.Context) ([]domain.Donation, error) {
	return s.donationRepo.ListPending(ctx, listLimit)
}

func (s *donationService) ListRecentVerified(ctx context.Context, limit int32) ([]domain.Donation, error) {
	return s.donationRepo.ListVerified(ctx, limit)
}

func (s *donationService) VerifyDonation(ctx context.Context, actor Actor, id int32) (*domain.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}

	changed, err := donation.Verify(actor.ID, actor.Role)
	if err != nil {
		return nil, err
	}
	if !changed {
		return donation, nil
	}

	if err := s.donationRepo.Update(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}

	metrics.DonationsVerified.Inc()
	s.notifier.Broadcast(realtime.EventStatsUpdate, nil)
	s.notifier.Broadcast(realtime.EventNewDonation, map[string]any{
		"donorName": donation.DonorName,
		"amount":    donation.Amount,
		"date":      donation.Date,
		"note":      donation.Note,
		"method":    donation.Method,
	})

	return donation, nil
}

// VerifyDonations verifies each id independently. Unknown ids are silently
// skipped and absent from the results; one bad id never blocks the rest.
func (s *donationService) VerifyDonations(ctx context.Context, actor Actor, ids []int32) ([]domain.Donation, error) {
	if actor.Role != domain.RoleAccountant {
		return nil, ErrForbidden
	}

	results := make([]domain.Donation, 0, len(ids))
	changedAny := false
	for _, id := range ids {
		donation, err := s.donationRepo.GetByID(ctx, id)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				logger.Error("bulk verify failed for donation", "donation_id", id, "error", err)
			}
			continue
		}

		changed, err := donation.Verify(actor.ID, actor.Role)
		if err != nil {
			return nil, err
		}
		if changed {
			if err := s.donationRepo.Update(ctx, donation); err != nil {
				logger.Error("bulk verify failed for donation", "donation_id", id, "error", err)
				continue
			}
			metrics.DonationsVerified.Inc()
			changedAny = true
		}
		results = append(results, *donation)
	}

	if changedAny {
		s.notifier.Broadcast(realtime.EventStatsUpdate, nil)
	}
	return results, nil
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t
	}
	return time.Now()
}
