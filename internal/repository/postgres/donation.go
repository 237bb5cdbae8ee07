package postgres

import (
	"context"
	"database/sql"
	"time"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/repository"
)

type donationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

const donationColumns = `id, donor_name, COALESCE(email, ''), COALESCE(phone, ''), amount, donation_id, receipt_id, verified, payment_verified, added_by, verified_by, received_by, method, date, COALESCE(note, ''), created_on`

func (r *donationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	query := `INSERT INTO donations (donor_name, email, phone, amount, donation_id, receipt_id, verified, payment_verified, added_by, verified_by, received_by, method, date, note, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		donation.DonorName, donation.Email, donation.Phone, donation.Amount, donation.DonationID, donation.ReceiptID,
		donation.Verified, donation.PaymentVerified, donation.AddedBy, donation.VerifiedBy, donation.ReceivedBy,
		donation.Method, donation.Date, donation.Note, time.Now(),
	).Scan(&donation.ID, &donation.CreatedOn)
}

func (r *donationRepository) scanRow(row *sql.Row) (*domain.Donation, error) {
	donation := &domain.Donation{}
	var method string
	err := row.Scan(
		&donation.ID, &donation.DonorName, &donation.Email, &donation.Phone, &donation.Amount,
		&donation.DonationID, &donation.ReceiptID, &donation.Verified, &donation.PaymentVerified,
		&donation.AddedBy, &donation.VerifiedBy, &donation.ReceivedBy, &method, &donation.Date, &donation.Note, &donation.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	donation.Method = domain.ParseDonationMethod(method)
	return donation, nil
}

func (r *donationRepository) GetByID(ctx context.Context, id int32) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`
	return r.scanRow(r.db.QueryRowContext(ctx, query, id))
}

func (r *donationRepository) Update(ctx context.Context, donation *domain.Donation) error {
	query := `UPDATE donations
	          SET receipt_id = $1, verified = $2, payment_verified = $3, verified_by = $4, received_by = $5
	          WHERE id = $6`
	_, err := r.db.ExecContext(ctx, query,
		donation.ReceiptID, donation.Verified, donation.PaymentVerified, donation.VerifiedBy, donation.ReceivedBy, donation.ID,
	)
	return err
}

func (r *donationRepository) list(ctx context.Context, where string, limit int32) ([]domain.Donation, error) {
	query := `SELECT d.id, d.donor_name, COALESCE(d.email, ''), COALESCE(d.phone, ''), d.amount, d.donation_id, d.receipt_id, d.verified, d.payment_verified, d.added_by, d.verified_by, d.received_by, d.method, d.date, COALESCE(d.note, ''), d.created_on,
	                 COALESCE(u.name, '')
	          FROM donations d
	          LEFT JOIN users u ON u.id = d.added_by ` + where + `
	          ORDER BY d.created_on DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var donation domain.Donation
		var method string
		if err := rows.Scan(
			&donation.ID, &donation.DonorName, &donation.Email, &donation.Phone, &donation.Amount,
			&donation.DonationID, &donation.ReceiptID, &donation.Verified, &donation.PaymentVerified,
			&donation.AddedBy, &donation.VerifiedBy, &donation.ReceivedBy, &method, &donation.Date, &donation.Note, &donation.CreatedOn,
			&donation.AddedByName,
		); err != nil {
			return nil, err
		}
		donation.Method = domain.ParseDonationMethod(method)
		donations = append(donations, donation)
	}
	return donations, rows.Err()
}

func (r *donationRepository) List(ctx context.Context, limit int32) ([]domain.Donation, error) {
	return r.list(ctx, "", limit)
}

func (r *donationRepository) ListPending(ctx context.Context, limit int32) ([]domain.Donation, error) {
	return r.list(ctx, `WHERE d.verified = false`, limit)
}

func (r *donationRepository) ListVerified(ctx context.Context, limit int32) ([]domain.Donation, error) {
	return r.list(ctx, `WHERE d.verified = true`, limit)
}

func (r *donationRepository) SumVerified(ctx context.Context) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(amount), 0) FROM donations WHERE verified = true`
	err := r.db.QueryRowContext(ctx, query).Scan(&total)
	return total, err
}
