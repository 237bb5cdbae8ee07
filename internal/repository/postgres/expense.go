package postgres

import (
	"context"
	"database/sql"
	"time"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/logger"
	"ngobooks-backend/internal/repository"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `INSERT INTO expenses (date, by_name, amount, category, note, receipt_image_key, receipt_image_url, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		expense.Date, expense.By, expense.Amount, expense.Category, expense.Note,
		expense.ReceiptImageKey, expense.ReceiptImageURL, time.Now(),
	).Scan(&expense.ID, &expense.CreatedOn)
}

func (r *expenseRepository) GetByID(ctx context.Context, id int32) (*domain.Expense, error) {
	expense := &domain.Expense{}
	query := `SELECT id, date, by_name, amount, COALESCE(category, 'general'), COALESCE(note, ''), COALESCE(receipt_image_key, ''), COALESCE(receipt_image_url, ''), created_on
	          FROM expenses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID, &expense.Date, &expense.By, &expense.Amount, &expense.Category, &expense.Note,
		&expense.ReceiptImageKey, &expense.ReceiptImageURL, &expense.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	var rows int64
	if res != nil {
		rows, _ = res.RowsAffected()
	}
	logger.DatabaseResult("expenses.delete", rows, err, "id", id)
	return err
}

func (r *expenseRepository) List(ctx context.Context, limit int32) ([]domain.Expense, error) {
	query := `SELECT id, date, by_name, amount, COALESCE(category, 'general'), COALESCE(note, ''), COALESCE(receipt_image_key, ''), COALESCE(receipt_image_url, ''), created_on
	          FROM expenses ORDER BY created_on DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(
			&expense.ID, &expense.Date, &expense.By, &expense.Amount, &expense.Category, &expense.Note,
			&expense.ReceiptImageKey, &expense.ReceiptImageURL, &expense.CreatedOn,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) Sum(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&total)
	return total, err
}

func (r *expenseRepository) ListReceiptKeys(ctx context.Context) ([]string, error) {
	query := `SELECT receipt_image_key FROM expenses WHERE receipt_image_key IS NOT NULL AND receipt_image_key <> ''`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
