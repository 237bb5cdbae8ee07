package postgres

import (
	"context"
	"database/sql"
	"time"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/repository"
)

type memberRequestRepository struct {
	db *sql.DB
}

func NewMemberRequestRepository(db *sql.DB) repository.MemberRequestRepository {
	return &memberRequestRepository{db: db}
}

func (r *memberRequestRepository) Create(ctx context.Context, req *domain.MemberRequest) error {
	query := `INSERT INTO member_requests (name, email, phone, address, member_type, membership_fee, status, approved_by_president, approved_by_secretary, paid_confirmed, created_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		req.Name, req.Email, req.Phone, req.Address, req.MemberType, req.MembershipFee, req.Status,
		req.Approvals.President, req.Approvals.Secretary, req.PaidConfirmed, req.CreatedBy, time.Now(),
	).Scan(&req.ID, &req.CreatedOn)
}

func (r *memberRequestRepository) GetByID(ctx context.Context, id int32) (*domain.MemberRequest, error) {
	req := &domain.MemberRequest{}
	var memberType, status string
	query := `SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''), member_type, membership_fee,
	                 status, approved_by_president, approved_by_secretary, paid_confirmed, created_by, created_on
	          FROM member_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.Name, &req.Email, &req.Phone, &req.Address, &memberType, &req.MembershipFee,
		&status, &req.Approvals.President, &req.Approvals.Secretary, &req.PaidConfirmed, &req.CreatedBy, &req.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	req.MemberType = domain.ParseMemberType(memberType)
	req.Status = domain.RequestStatus(status)
	return req, nil
}

func (r *memberRequestRepository) Update(ctx context.Context, req *domain.MemberRequest) error {
	query := `UPDATE member_requests
	          SET status = $1, approved_by_president = $2, approved_by_secretary = $3, paid_confirmed = $4
	          WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query,
		req.Status, req.Approvals.President, req.Approvals.Secretary, req.PaidConfirmed, req.ID,
	)
	return err
}

func (r *memberRequestRepository) List(ctx context.Context, limit int32) ([]domain.MemberRequest, error) {
	query := `SELECT r.id, r.name, COALESCE(r.email, ''), COALESCE(r.phone, ''), COALESCE(r.address, ''), r.member_type, r.membership_fee,
	                 r.status, r.approved_by_president, r.approved_by_secretary, r.paid_confirmed, r.created_by, r.created_on,
	                 COALESCE(u.name, '')
	          FROM member_requests r
	          LEFT JOIN users u ON u.id = r.created_by
	          ORDER BY r.created_on DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.MemberRequest
	for rows.Next() {
		var req domain.MemberRequest
		var memberType, status string
		if err := rows.Scan(
			&req.ID, &req.Name, &req.Email, &req.Phone, &req.Address, &memberType, &req.MembershipFee,
			&status, &req.Approvals.President, &req.Approvals.Secretary, &req.PaidConfirmed, &req.CreatedBy, &req.CreatedOn,
			&req.CreatedByName,
		); err != nil {
			return nil, err
		}
		req.MemberType = domain.ParseMemberType(memberType)
		req.Status = domain.RequestStatus(status)
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
