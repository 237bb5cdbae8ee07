package service

import (
	"context"
	"errors"

	"ngobooks-backend/internal/domain"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = domain.ErrForbidden
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrSequenceConflict   = errors.New("membership number assignment kept conflicting")
)

// Actor identifies who is performing an operation. Every transition receives
// it explicitly; nothing reads ambient session state.
type Actor struct {
	ID   int32
	Role domain.Role
}

// Notifier is the best-effort realtime fan-out. Implementations must never
// block the caller; polling has to remain a valid path to correct state.
type Notifier interface {
	Broadcast(event string, data any)
}

type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type RegisterParams struct {
	Name              string
	Email             string
	Password          string
	Role              string
	MemberType        string
	InitialPaidAmount int64
}

type MembershipService interface {
	// Direct member add, bypassing the request flow (president/secretary only)
	AddMember(ctx context.Context, actor Actor, params MemberParams) (*domain.Member, error)
	ListMembers(ctx context.Context, actor Actor) ([]domain.Member, error)

	CreateRequest(ctx context.Context, actor Actor, params MemberParams) (*domain.MemberRequest, error)
	ListRequests(ctx context.Context) ([]domain.MemberRequest, error)
	ListRequestsForRole(ctx context.Context, role domain.Role) ([]domain.MemberRequest, error)

	ApproveRequest(ctx context.Context, actor Actor, id int32) (*domain.MemberRequest, error)
	ApproveRequests(ctx context.Context, actor Actor, ids []int32) ([]domain.MemberRequest, error)

	ConfirmPayment(ctx context.Context, actor Actor, id int32) (*ConfirmResult, error)
	ConfirmPayments(ctx context.Context, actor Actor, ids []int32) ([]ConfirmResult, error)
}

type MemberParams struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	MemberType    string
	MembershipFee int64
}

// ConfirmResult pairs the updated request with the materialized member.
// Member is nil when materialization is still deferred (approvals missing).
type ConfirmResult struct {
	Request *domain.MemberRequest `json:"request"`
	Member  *domain.Member        `json:"member,omitempty"`
}

type DonationService interface {
	// actor is nil for public (unauthenticated) submissions
	CreateDonation(ctx context.Context, actor *Actor, params DonationParams) (*domain.Donation, error)
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	ListPending(ctx context.Context) ([]domain.Donation, error)
	ListRecentVerified(ctx context.Context, limit int32) ([]domain.Donation, error)

	VerifyDonation(ctx context.Context, actor Actor, id int32) (*domain.Donation, error)
	VerifyDonations(ctx context.Context, actor Actor, ids []int32) ([]domain.Donation, error)
}

type DonationParams struct {
	DonorName string
	Email     string
	Phone     string
	Amount    int64
	Method    string
	Date      string // optional, RFC 3339 or YYYY-MM-DD
	Note      string
}

type ExpenseService interface {
	CreateExpense(ctx context.Context, actor Actor, params ExpenseParams, receipt *ReceiptUpload) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	ListRecent(ctx context.Context, limit int32) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, actor Actor, id int32) error
}

type ExpenseParams struct {
	Date     string
	By       string
	Amount   int64
	Category string
	Note     string
}

// ReceiptUpload carries an optional receipt image attached to an expense.
type ReceiptUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type SummaryService interface {
	GetSummary(ctx context.Context) (*domain.Summary, error)
	GetPublicStats(ctx context.Context) (*domain.PublicStats, error)
}

type EmailService interface {
	SendAdmissionNotice(ctx context.Context, email, name, membershipNo string) error
	SendDailyDigest(ctx context.Context, to string, summary *domain.Summary) error
}
