package models

import "github.com/shopspring/decimal"

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	// PaymentPending means the debtor claims to have transferred the
	// money but the creditor has not acknowledged it yet.
	PaymentPending PaymentStatus = "pending"

	// PaymentConfirmed means the creditor acknowledged the transfer.
	PaymentConfirmed PaymentStatus = "confirmed"
)

// Payment records one debtor-initiated transfer in a group's payment
// log. A payment is created pending by the debtor (mark-as-paid) and
// later confirmed in place by the creditor. Payments are never deleted.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string `json:"id"`

	// GroupID is the group whose log owns this payment.
	GroupID string `json:"group_id"`

	// Payer is the debtor's username.
	Payer string `json:"payer"`

	// Receiver is the creditor's username.
	Receiver string `json:"receiver"`

	// Amount is the transferred amount. Must be positive.
	Amount decimal.Decimal `json:"amount"`

	// Status is pending until the creditor confirms.
	Status PaymentStatus `json:"status"`

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64 `json:"created_at"`

	// ConfirmedAt is the Unix timestamp of confirmation, zero while the
	// payment is still pending.
	ConfirmedAt int64 `json:"confirmed_at,omitempty"`
}
