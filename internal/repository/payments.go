package repository

import (
	"context"
	"database/sql"
	"time"

	"gatherly/internal/database"
	apperrors "gatherly/internal/errors"
	"gatherly/internal/models"
)

type PaymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `
	id, user_id, event_id, payment_method, account_number, account_name,
	bank_name, card_last_four, card_holder_name, reference_number,
	amount::text, payment_status, rejection_reason, verified_by,
	payment_date::text, verified_at, created_at`

func scanPayment(row *sql.Row) (*models.Payment, error) {
	payment := &models.Payment{}
	err := row.Scan(
		&payment.ID,
		&payment.UserID,
		&payment.EventID,
		&payment.PaymentMethod,
		&payment.AccountNumber,
		&payment.AccountName,
		&payment.BankName,
		&payment.CardLastFour,
		&payment.CardHolderName,
		&payment.ReferenceNumber,
		&payment.Amount,
		&payment.PaymentStatus,
		&payment.RejectionReason,
		&payment.VerifiedBy,
		&payment.PaymentDate,
		&payment.VerifiedAt,
		&payment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return payment, err
}

// Create inserts a pending payment. The unique index on
// (user_id, event_id, reference_number) turns duplicate submissions,
// including concurrent ones, into a conflict.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (user_id, event_id, payment_method, account_number,
		                      account_name, bank_name, card_last_four, card_holder_name,
		                      reference_number, amount, payment_date, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::numeric, NULLIF($11, '')::date, $12)
		RETURNING id, created_at`

	var paymentDate string
	if payment.PaymentDate != nil {
		paymentDate = *payment.PaymentDate
	}

	err := r.db.QueryRowContext(ctx, query,
		payment.UserID,
		payment.EventID,
		payment.PaymentMethod,
		payment.AccountNumber,
		payment.AccountName,
		payment.BankName,
		payment.CardLastFour,
		payment.CardHolderName,
		payment.ReferenceNumber,
		payment.Amount,
		paymentDate,
		payment.PaymentStatus,
	).Scan(&payment.ID, &payment.CreatedAt)

	if isUniqueViolation(err) {
		return apperrors.Conflict("Payment with this reference number already exists")
	}
	return err
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return scanPayment(r.db.QueryRowContext(ctx, query, id))
}

// Decide transitions a pending payment to verified or rejected. Only rows
// still pending are updated; the returned flag reports whether the
// transition happened. verified_at is set on verification only.
func (r *PaymentRepository) Decide(ctx context.Context, id int64, status string, verifiedBy int64, rejectionReason *string) (bool, error) {
	query := `
		UPDATE payments
		SET payment_status = $2,
		    verified_by = $3,
		    rejection_reason = $4,
		    verified_at = CASE WHEN $2 = 'verified' THEN NOW() ELSE NULL END
		WHERE id = $1 AND payment_status = 'pending'`

	result, err := r.db.ExecContext(ctx, query, id, status, verifiedBy, rejectionReason)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Latest returns the most recent payment for (userID, eventID), or nil.
func (r *PaymentRepository) Latest(ctx context.Context, userID, eventID int64) (*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE user_id = $1 AND event_id = $2
		ORDER BY created_at DESC
		LIMIT 1`
	return scanPayment(r.db.QueryRowContext(ctx, query, userID, eventID))
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID int64) ([]models.PaymentWithEvent, error) {
	query := `
		SELECT p.id, p.user_id, p.event_id, p.payment_method, p.account_number,
		       p.account_name, p.bank_name, p.card_last_four, p.card_holder_name,
		       p.reference_number, p.amount::text, p.payment_status,
		       p.rejection_reason, p.verified_by, p.payment_date::text,
		       p.verified_at, p.created_at,
		       e.event_name, e.event_date::text, e.location
		FROM payments p
		JOIN events e ON p.event_id = e.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.PaymentWithEvent{}
	for rows.Next() {
		var p models.PaymentWithEvent
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.EventID,
			&p.PaymentMethod,
			&p.AccountNumber,
			&p.AccountName,
			&p.BankName,
			&p.CardLastFour,
			&p.CardHolderName,
			&p.ReferenceNumber,
			&p.Amount,
			&p.PaymentStatus,
			&p.RejectionReason,
			&p.VerifiedBy,
			&p.PaymentDate,
			&p.VerifiedAt,
			&p.CreatedAt,
			&p.EventName,
			&p.EventDate,
			&p.Location,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// ListStalePending returns payments still pending since before cutoff,
// oldest first. Used by the reminder job; it never mutates them.
func (r *PaymentRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE payment_status = 'pending' AND created_at < $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.EventID,
			&p.PaymentMethod,
			&p.AccountNumber,
			&p.AccountName,
			&p.BankName,
			&p.CardLastFour,
			&p.CardHolderName,
			&p.ReferenceNumber,
			&p.Amount,
			&p.PaymentStatus,
			&p.RejectionReason,
			&p.VerifiedBy,
			&p.PaymentDate,
			&p.VerifiedAt,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
