package repository

import (
	"context"
	"ngobooks-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// SumInitialPaid totals pre-seeded membership amounts across all users
	SumInitialPaid(ctx context.Context) (int64, error)
}

type MemberRequestRepository interface {
	Create(ctx context.Context, req *domain.MemberRequest) error
	GetByID(ctx context.Context, id int32) (*domain.MemberRequest, error)
	Update(ctx context.Context, req *domain.MemberRequest) error
	List(ctx context.Context, limit int32) ([]domain.MemberRequest, error)
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id int32) (*domain.Member, error)
	List(ctx context.Context, onlyDualApproved bool, limit int32) ([]domain.Member, error)
	Count(ctx context.Context) (int32, error)
	SumFees(ctx context.Context) (int64, error)

	// MaxSequence returns the highest assigned sequence number for a
	// membership number prefix (PM or GM), 0 when none exist
	MaxSequence(ctx context.Context, prefix string) (int32, error)
}

type DonationRepository interface {
	Create(ctx context.Context, donation *domain.Donation) error
	GetByID(ctx context.Context, id int32) (*domain.Donation, error)
	Update(ctx context.Context, donation *domain.Donation) error
	List(ctx context.Context, limit int32) ([]domain.Donation, error)
	ListPending(ctx context.Context, limit int32) ([]domain.Donation, error)
	ListVerified(ctx context.Context, limit int32) ([]domain.Donation, error)
	SumVerified(ctx context.Context) (int64, error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id int32) (*domain.Expense, error)
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, limit int32) ([]domain.Expense, error)
	Sum(ctx context.Context) (int64, error)

	// ListReceiptKeys returns every stored receipt image key still referenced
	// by an expense; used by the orphan cleanup job
	ListReceiptKeys(ctx context.Context) ([]string, error)
}
