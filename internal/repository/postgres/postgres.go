package postgres

import (
	"database/sql"
	"ngobooks-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.MemberRequestRepository
	repository.MemberRepository
	repository.DonationRepository
	repository.ExpenseRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		MemberRequestRepository: NewMemberRequestRepository(db),
		MemberRepository:        NewMemberRepository(db),
		DonationRepository:      NewDonationRepository(db),
		ExpenseRepository:       NewExpenseRepository(db),
	}
}
