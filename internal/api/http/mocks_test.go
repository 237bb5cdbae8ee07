package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/service"
)

// MockMembershipService
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) AddMember(ctx context.Context, actor service.Actor, params service.MemberParams) (*domain.Member, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMembershipService) ListMembers(ctx context.Context, actor service.Actor) ([]domain.Member, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMembershipService) CreateRequest(ctx context.Context, actor service.Actor, params service.MemberParams) (*domain.MemberRequest, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberRequest), args.Error(1)
}
func (m *MockMembershipService) ListRequests(ctx context.Context) ([]domain.MemberRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberRequest), args.Error(1)
}
func (m *MockMembershipService) ListRequestsForRole(ctx context.Context, role domain.Role) ([]domain.MemberRequest, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberRequest), args.Error(1)
}
func (m *MockMembershipService) ApproveRequest(ctx context.Context, actor service.Actor, id int32) (*domain.MemberRequest, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberRequest), args.Error(1)
}
func (m *MockMembershipService) ApproveRequests(ctx context.Context, actor service.Actor, ids []int32) ([]domain.MemberRequest, error) {
	args := m.Called(ctx, actor, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberRequest), args.Error(1)
}
func (m *MockMembershipService) ConfirmPayment(ctx context.Context, actor service.Actor, id int32) (*service.ConfirmResult, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ConfirmResult), args.Error(1)
}
func (m *MockMembershipService) ConfirmPayments(ctx context.Context, actor service.Actor, ids []int32) ([]service.ConfirmResult, error) {
	args := m.Called(ctx, actor, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ConfirmResult), args.Error(1)
}

// MockDonationService
type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) CreateDonation(ctx context.Context, actor *service.Actor, params service.DonationParams) (*domain.Donation, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}
func (m *MockDonationService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}
func (m *MockDonationService) ListPending(ctx context.Context) ([]domain.Donation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}
func (m *MockDonationService) ListRecentVerified(ctx context.Context, limit int32) ([]domain.Donation, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}
func (m *MockDonationService) VerifyDonation(ctx context.Context, actor service.Actor, id int32) (*domain.Donation, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}
func (m *MockDonationService) VerifyDonations(ctx context.Context, actor service.Actor, ids []int32) ([]domain.Donation, error) {
	args := m.Called(ctx, actor, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

// MockSummaryService
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}
func (m *MockSummaryService) GetPublicStats(ctx context.Context) (*domain.PublicStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicStats), args.Error(1)
}

// MockExpenseService
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, actor service.Actor, params service.ExpenseParams, receipt *service.ReceiptUpload) (*domain.Expense, error) {
	args := m.Called(ctx, actor, params, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseService) ListRecent(ctx context.Context, limit int32) ([]domain.Expense, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseService) DeleteExpense(ctx context.Context, actor service.Actor, id int32) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
