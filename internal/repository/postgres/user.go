package postgres

import (
	"context"
	"database/sql"
	"time"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, role, member_type, initial_paid_amount, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.MemberType, user.InitialPaidAmount, time.Now(),
	).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	user := &domain.User{}
	var role, memberType string
	query := `SELECT id, name, email, password_hash, role, member_type, initial_paid_amount, created_on
	          FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &role, &memberType, &user.InitialPaidAmount, &user.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	user.Role = domain.ParseRole(role)
	user.MemberType = domain.ParseMemberType(memberType)
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	var role, memberType string
	query := `SELECT id, name, email, password_hash, role, member_type, initial_paid_amount, created_on
	          FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &role, &memberType, &user.InitialPaidAmount, &user.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	user.Role = domain.ParseRole(role)
	user.MemberType = domain.ParseMemberType(memberType)
	return user, nil
}

func (r *userRepository) SumInitialPaid(ctx context.Context) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(initial_paid_amount), 0) FROM users`
	err := r.db.QueryRowContext(ctx, query).Scan(&total)
	return total, err
}
