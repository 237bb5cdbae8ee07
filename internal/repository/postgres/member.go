package postgres

import (
	"context"
	"database/sql"
	"time"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `INSERT INTO members (name, email, phone, address, membership_no, member_type, ref_id, joined_on, membership_fee, added_by, approved_by_president, approved_by_secretary, created_via_request, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		member.Name, member.Email, member.Phone, member.Address, member.MembershipNo, member.MemberType,
		member.RefID, member.JoinedOn, member.MembershipFee, member.AddedBy,
		member.ApprovedBy.President, member.ApprovedBy.Secretary, member.CreatedViaRequest, time.Now(),
	).Scan(&member.ID)
}

func (r *memberRepository) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	member := &domain.Member{}
	var memberType string
	query := `SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''), membership_no, member_type, ref_id, joined_on, membership_fee, added_by, approved_by_president, approved_by_secretary, created_via_request, created_on
	          FROM members WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID, &member.Name, &member.Email, &member.Phone, &member.Address, &member.MembershipNo, &memberType,
		&member.RefID, &member.JoinedOn, &member.MembershipFee, &member.AddedBy,
		&member.ApprovedBy.President, &member.ApprovedBy.Secretary, &member.CreatedViaRequest, &member.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	member.MemberType = domain.ParseMemberType(memberType)
	return member, nil
}

func (r *memberRepository) List(ctx context.Context, onlyDualApproved bool, limit int32) ([]domain.Member, error) {
	query := `SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''), membership_no, member_type, ref_id, joined_on, membership_fee, added_by, approved_by_president, approved_by_secretary, created_via_request, created_on
	          FROM members`
	if onlyDualApproved {
		query += ` WHERE approved_by_president = true AND approved_by_secretary = true`
	}
	query += ` ORDER BY created_on DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var member domain.Member
		var memberType string
		if err := rows.Scan(
			&member.ID, &member.Name, &member.Email, &member.Phone, &member.Address, &member.MembershipNo, &memberType,
			&member.RefID, &member.JoinedOn, &member.MembershipFee, &member.AddedBy,
			&member.ApprovedBy.President, &member.ApprovedBy.Secretary, &member.CreatedViaRequest, &member.CreatedOn,
		); err != nil {
			return nil, err
		}
		member.MemberType = domain.ParseMemberType(memberType)
		members = append(members, member)
	}
	return members, rows.Err()
}

func (r *memberRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM members`).Scan(&count)
	return count, err
}

func (r *memberRepository) SumFees(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(membership_fee), 0) FROM members`).Scan(&total)
	return total, err
}

func (r *memberRepository) MaxSequence(ctx context.Context, prefix string) (int32, error) {
	// membership_no is '<prefix>-NNNN'; the numeric tail sorts correctly as an int
	var max int32
	query := `SELECT COALESCE(MAX(CAST(SPLIT_PART(membership_no, '-', 2) AS INTEGER)), 0)
	          FROM members WHERE membership_no LIKE $1 || '-%'`
	err := r.db.QueryRowContext(ctx, query, prefix).Scan(&max)
	return max, err
}
