package service

import (
	"context"
	"fmt"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/repository"
)

type summaryService struct {
	donationRepo repository.DonationRepository
	memberRepo   repository.MemberRepository
	expenseRepo  repository.ExpenseRepository
	userRepo     repository.UserRepository
}

func NewSummaryService(
	donationRepo repository.DonationRepository,
	memberRepo repository.MemberRepository,
	expenseRepo repository.ExpenseRepository,
	userRepo repository.UserRepository,
) SummaryService {
	return &summaryService{
		donationRepo: donationRepo,
		memberRepo:   memberRepo,
		expenseRepo:  expenseRepo,
		userRepo:     userRepo,
	}
}

// GetSummary recomputes the running totals from current store state on
// every call. Only verified donations count; membership is the union of
// materialized member fees and pre-seeded user amounts.
func (s *summaryService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	donations, err := s.donationRepo.SumVerified(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum donations: %w", err)
	}

	memberFees, err := s.memberRepo.SumFees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum membership fees: %w", err)
	}
	initialPaid, err := s.userRepo.SumInitialPaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum initial paid amounts: %w", err)
	}
	membership := memberFees + initialPaid

	expenses, err := s.expenseRepo.Sum(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	membersCount, err := s.memberRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return &domain.Summary{
		Donations:    donations,
		Membership:   membership,
		Expenses:     expenses,
		Remaining:    donations + membership - expenses,
		MembersCount: membersCount,
	}, nil
}

func (s *summaryService) GetPublicStats(ctx context.Context) (*domain.PublicStats, error) {
	donations, err := s.donationRepo.SumVerified(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum donations: %w", err)
	}
	expenses, err := s.expenseRepo.Sum(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}
	members, err := s.memberRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return &domain.PublicStats{
		TotalDonations: donations,
		TotalExpenses:  expenses,
		ActiveMembers:  members,
	}, nil
}
