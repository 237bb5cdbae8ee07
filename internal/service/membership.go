package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/logger"
	"ngobooks-backend/internal/metrics"
	"ngobooks-backend/internal/realtime"
	"ngobooks-backend/internal/repository"
)

const (
	listLimit = 200

	// Attempts at find-max-then-insert before surfacing the conflict.
	// Gaps after exhausted retries are acceptable; confirm-payment is
	// idempotent and can simply be re-run.
	sequenceAttempts = 3
)

type membershipService struct {
	reqRepo    repository.MemberRequestRepository
	memberRepo repository.MemberRepository
	emailSvc   EmailService
	notifier   Notifier
}

func NewMembershipService(
	reqRepo repository.MemberRequestRepository,
	memberRepo repository.MemberRepository,
	emailSvc EmailService,
	notifier Notifier,
) MembershipService {
	return &membershipService{
		reqRepo:    reqRepo,
		memberRepo: memberRepo,
		emailSvc:   emailSvc,
		notifier:   notifier,
	}
}

func (s *membershipService) AddMember(ctx context.Context, actor Actor, params MemberParams) (*domain.Member, error) {
	if !actor.Role.CanApproveRequests() {
		return nil, ErrForbidden
	}

	// Direct adds are self-approved by their creator's role and carry no
	// membership number.
	member := &domain.Member{
		Name:          params.Name,
		Email:         params.Email,
		Phone:         params.Phone,
		Address:       params.Address,
		MemberType:    domain.ParseMemberType(params.MemberType),
		RefID:         uuid.NewString(),
		JoinedOn:      time.Now(),
		MembershipFee: params.MembershipFee,
		AddedBy:       &actor.ID,
		ApprovedBy: domain.Approvals{
			President: actor.Role == domain.RolePresident,
			Secretary: actor.Role == domain.RoleSecretary,
		},
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

func (s *membershipService) ListMembers(ctx context.Context, actor Actor) ([]domain.Member, error) {
	// Accountants only see members that cleared both approvals.
	onlyDualApproved := actor.Role == domain.RoleAccountant
	return s.memberRepo.List(ctx, onlyDualApproved, listLimit)
}

func (s *membershipService) CreateRequest(ctx context.Context, actor Actor, params MemberParams) (*domain.MemberRequest, error) {
	req := &domain.MemberRequest{
		Name:          params.Name,
		Email:         params.Email,
		Phone:         params.Phone,
		Address:       params.Address,
		MemberType:    domain.ParseMemberType(params.MemberType),
		MembershipFee: params.MembershipFee,
		Status:        domain.RequestStatusPending,
		CreatedBy:     actor.ID,
	}
	if req.MemberType == domain.MemberTypeFounder {
		req.MemberType = domain.MemberTypeGeneral
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create member request: %w", err)
	}
	return req, nil
}

func (s *membershipService) ListRequests(ctx context.Context) ([]domain.MemberRequest, error) {
	return s.reqRepo.List(ctx, listLimit)
}

func (s *membershipService) ListRequestsForRole(ctx context.Context, role domain.Role) ([]domain.MemberRequest, error) {
	reqs, err := s.reqRepo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	return domain.FilterRequestsForRole(reqs, role), nil
}

func (s *membershipService) ApproveRequest(ctx context.Context, actor Actor, id int32) (*domain.MemberRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member request: %w", err)
	}

	if err := req.Approve(actor.Role); err != nil {
		return nil, err
	}
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to update member request: %w", err)
	}
	return req, nil
}

// ApproveRequests applies the approval to each id independently; unknown ids
// are skipped, not errors.
func (s *membershipService) ApproveRequests(ctx context.Context, actor Actor, ids []int32) ([]domain.MemberRequest, error) {
	if !actor.Role.CanApproveRequests() {
		return nil, ErrForbidden
	}

	results := make([]domain.MemberRequest, 0, len(ids))
	for _, id := range ids {
		req, err := s.ApproveRequest(ctx, actor, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			logger.Error("bulk approve failed for request", "request_id", id, "error", err)
			continue
		}
		results = append(results, *req)
	}
	return results, nil
}

func (s *membershipService) ConfirmPayment(ctx context.Context, actor Actor, id int32) (*ConfirmResult, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member request: %w", err)
	}

	if err := req.RecordPayment(actor.Role); err != nil {
		return nil, err
	}
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to update member request: %w", err)
	}

	result := &ConfirmResult{Request: req}
	if !req.ReadyToMaterialize() {
		// Payment recorded ahead of full approval; materialization happens
		// on a later confirm once both sign-offs land.
		return result, nil
	}

	member, err := s.materialize(ctx, req)
	if err != nil {
		return nil, err
	}
	result.Member = member

	s.notifier.Broadcast(realtime.EventStatsUpdate, nil)
	return result, nil
}

// ConfirmPayments applies payment confirmation to each id independently;
// unknown ids are skipped.
func (s *membershipService) ConfirmPayments(ctx context.Context, actor Actor, ids []int32) ([]ConfirmResult, error) {
	if actor.Role != domain.RoleAccountant {
		return nil, ErrForbidden
	}

	results := make([]ConfirmResult, 0, len(ids))
	for _, id := range ids {
		res, err := s.ConfirmPayment(ctx, actor, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			logger.Error("bulk confirm failed for request", "request_id", id, "error", err)
			continue
		}
		results = append(results, *res)
	}
	return results, nil
}

// materialize turns an approved, paid request into a permanent Member with
// the next membership number for its category. The find-max-then-insert pair
// races under concurrent confirmations; the unique constraint on
// membership_no backstops it and we retry assignment on a conflict.
func (s *membershipService) materialize(ctx context.Context, req *domain.MemberRequest) (*domain.Member, error) {
	prefix := req.MemberType.MembershipPrefix()

	var member *domain.Member
	for attempt := 0; attempt < sequenceAttempts; attempt++ {
		max, err := s.memberRepo.MaxSequence(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("failed to read membership sequence: %w", err)
		}
		membershipNo := fmt.Sprintf("%s-%04d", prefix, max+1)

		member = &domain.Member{
			Name:          req.Name,
			Email:         req.Email,
			Phone:         req.Phone,
			Address:       req.Address,
			MembershipNo:  &membershipNo,
			MemberType:    req.MemberType,
			RefID:         uuid.NewString(),
			JoinedOn:      req.CreatedOn, // join date is the request date, not confirmation
			MembershipFee: req.MembershipFee,
			AddedBy:       &req.CreatedBy,
			ApprovedBy:    req.Approvals,

			CreatedViaRequest: true,
		}

		err = s.memberRepo.Create(ctx, member)
		if err == nil {
			break
		}
		if isUniqueViolation(err) {
			metrics.SequenceRetries.Inc()
			member = nil
			continue
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	if member == nil {
		return nil, ErrSequenceConflict
	}

	metrics.MembersMaterialized.Inc()

	if req.Email != "" && s.emailSvc != nil {
		if err := s.emailSvc.SendAdmissionNotice(ctx, req.Email, req.Name, *member.MembershipNo); err != nil {
			logger.Warn("failed to send admission notice", "request_id", req.ID, "error", err)
		}
	}

	return member, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
