package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/logger"
	"ngobooks-backend/internal/realtime"
	"ngobooks-backend/internal/repository"
	"ngobooks-backend/internal/storage"
)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	store       storage.Storage
	notifier    Notifier
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, store storage.Storage, notifier Notifier) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo, store: store, notifier: notifier}
}

func (s *expenseService) CreateExpense(ctx context.Context, actor Actor, params ExpenseParams, receipt *ReceiptUpload) (*domain.Expense, error) {
	// Expense entry is the accountant's job.
	if actor.Role != domain.RoleAccountant {
		return nil, ErrForbidden
	}
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	expense := &domain.Expense{
		Date:     parseDate(params.Date),
		By:       params.By,
		Amount:   params.Amount,
		Category: params.Category,
		Note:     params.Note,
	}
	if expense.Category == "" {
		expense.Category = "general"
	}

	if receipt != nil {
		key := storage.NewReceiptKey(receipt.Filename)
		if err := s.store.Save(ctx, key, receipt.ContentType, bytes.NewReader(receipt.Data)); err != nil {
			return nil, fmt.Errorf("failed to store receipt image: %w", err)
		}
		expense.ReceiptImageKey = key
		expense.ReceiptImageURL = s.store.URL(key)
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		// Don't leave the image stranded if the row never landed.
		if expense.ReceiptImageKey != "" {
			if derr := s.store.Delete(ctx, expense.ReceiptImageKey); derr != nil {
				logger.Warn("failed to remove receipt image after create failure", "key", expense.ReceiptImageKey, "error", derr)
			}
		}
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.notifier.Broadcast(realtime.EventStatsUpdate, nil)
	s.notifier.Broadcast(realtime.EventNewExpense, map[string]any{
		"by":       expense.By,
		"amount":   expense.Amount,
		"category": expense.Category,
		"date":     expense.Date,
	})

	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.expenseRepo.List(ctx, listLimit)
}

func (s *expenseService) ListRecent(ctx context.Context, limit int32) ([]domain.Expense, error) {
	return s.expenseRepo.List(ctx, limit)
}

// DeleteExpense removes the expense and releases its stored receipt image.
func (s *expenseService) DeleteExpense(ctx context.Context, actor Actor, id int32) error {
	if actor.Role != domain.RoleAccountant {
		return ErrForbidden
	}

	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get expense: %w", err)
	}

	if expense.ReceiptImageKey != "" {
		// Image deletion failure shouldn't block the expense removal; the
		// cleanup job sweeps orphans.
		if err := s.store.Delete(ctx, expense.ReceiptImageKey); err != nil {
			logger.Warn("failed to delete receipt image", "key", expense.ReceiptImageKey, "error", err)
		}
	}

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.notifier.Broadcast(realtime.EventStatsUpdate, nil)
	return nil
}
