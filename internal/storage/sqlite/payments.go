package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goodtricount/backend/internal/models"
)

// AddPayment appends a payment to its group's log.
func (s *SQLiteStore) AddPayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}

	var confirmedAt any
	if payment.ConfirmedAt != 0 {
		confirmedAt = payment.ConfirmedAt
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, group_id, payer, receiver, amount, status, created_at, confirmed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.GroupID, payment.Payer, payment.Receiver,
		payment.Amount.String(), string(payment.Status), payment.CreatedAt, confirmedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// HasPendingPayment reports whether an outstanding pending payment
// exists for the ordered (payer, receiver) pair.
func (s *SQLiteStore) HasPendingPayment(ctx context.Context, groupID, payer, receiver string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM payments
		 WHERE group_id = ? AND payer = ? AND receiver = ? AND status = ?
		 LIMIT 1`,
		groupID, payer, receiver, string(models.PaymentPending),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check pending payment: %w", err)
	}
	return true, nil
}

// ConfirmPayment flips the oldest matching pending payment to confirmed.
// The status predicate in the UPDATE doubles as a compare-and-swap, so
// two racing confirmations resolve first-committer-wins: the loser
// matches zero rows and gets false back.
func (s *SQLiteStore) ConfirmPayment(ctx context.Context, groupID, payer, receiver string, confirmedAt int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE payments SET status = ?, confirmed_at = ?
		 WHERE id = (
		     SELECT id FROM payments
		     WHERE group_id = ? AND payer = ? AND receiver = ? AND status = ?
		     ORDER BY created_at, rowid
		     LIMIT 1
		 )`,
		string(models.PaymentConfirmed), confirmedAt,
		groupID, payer, receiver, string(models.PaymentPending),
	)
	if err != nil {
		return false, fmt.Errorf("failed to confirm payment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read confirm result: %w", err)
	}
	return affected > 0, nil
}

// groupPayments loads the group's payment log in append order.
func (s *SQLiteStore) groupPayments(ctx context.Context, groupID string) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, payer, receiver, amount, status, created_at, confirmed_at
		 FROM payments WHERE group_id = ? ORDER BY created_at, rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var payment models.Payment
		var amount, status string
		var confirmedAt sql.NullInt64
		if err := rows.Scan(&payment.ID, &payment.GroupID, &payment.Payer, &payment.Receiver,
			&amount, &status, &payment.CreatedAt, &confirmedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		if payment.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse payment amount %q: %w", amount, err)
		}
		payment.Status = models.PaymentStatus(status)
		if confirmedAt.Valid {
			payment.ConfirmedAt = confirmedAt.Int64
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}
