package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodtricount/backend/internal/ledger"
	"github.com/goodtricount/backend/internal/metrics"
	"github.com/goodtricount/backend/internal/models"
	"github.com/goodtricount/backend/internal/storage"
)

// LedgerView is the computed settlement state of a group: net balances
// plus the transfer plan with payment status overlaid.
type LedgerView struct {
	Balances   map[string]decimal.Decimal `json:"balances"`
	Settlement []models.SettlementEdge    `json:"settlement"`
}

// LedgerService computes balance views and manages the payment
// lifecycle on top of the pure ledger functions.
type LedgerService struct {
	store storage.Store
	locks *Locks
}

// NewLedgerService creates a new LedgerService with the given storage
// backend.
func NewLedgerService(store storage.Store, locks *Locks) *LedgerService {
	return &LedgerService{store: store, locks: locks}
}

// GroupLedger computes the group's balances and settlement plan.
// Members only.
func (s *LedgerService) GroupLedger(ctx context.Context, username, groupID string) (*LedgerView, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasParticipant(username) {
		return nil, ErrNotMember
	}

	balances, err := ledger.ComputeBalances(group.Participants, group.Expenses)
	if err != nil {
		slog.Error("GroupLedger balance computation failed", "group_id", groupID, "error", err)
		return nil, err
	}
	edges := ledger.ComputeSettlement(balances, group.Payments)

	metrics.LedgerComputations.Inc()
	metrics.SettlementEdges.Observe(float64(len(edges)))

	return &LedgerView{Balances: balances, Settlement: edges}, nil
}

// RecordPayment appends a pending payment from the caller (the debtor)
// to receiver. The settlement computation is the source of truth for
// how much is owed; this log only tracks that a transfer was initiated,
// so the amount is not checked against the plan. At most one pending
// payment may be outstanding per ordered pair.
func (s *LedgerService) RecordPayment(ctx context.Context, payer, groupID, receiver string, amount decimal.Decimal) (*models.Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	unlock := s.locks.lock(groupID)
	defer unlock()

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasParticipant(payer) {
		return nil, ErrNotMember
	}
	if !group.HasParticipant(receiver) {
		return nil, ErrUnknownParticipant
	}

	pending, err := s.store.HasPendingPayment(ctx, groupID, payer, receiver)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrPaymentPending
	}

	payment := &models.Payment{
		GroupID:  groupID,
		Payer:    payer,
		Receiver: receiver,
		Amount:   amount,
		Status:   models.PaymentPending,
	}
	if err := s.store.AddPayment(ctx, payment); err != nil {
		slog.Error("RecordPayment failed", "group_id", groupID, "error", err)
		return nil, err
	}

	metrics.PaymentsRecorded.Inc()
	slog.Info("Payment recorded",
		"group_id", groupID,
		"payer", payer,
		"receiver", receiver,
		"amount", amount.String(),
	)
	return payment, nil
}

// ConfirmPayment marks the oldest pending payment from payer to the
// caller (the creditor) as confirmed. Confirming with no matching
// pending payment is a no-op, not an error: it can legitimately race
// another confirmation.
func (s *LedgerService) ConfirmPayment(ctx context.Context, receiver, groupID, payer string) (bool, error) {
	unlock := s.locks.lock(groupID)
	defer unlock()

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return false, err
	}
	if !group.HasParticipant(receiver) {
		return false, ErrNotMember
	}
	if !group.HasParticipant(payer) {
		return false, ErrUnknownParticipant
	}

	confirmed, err := s.store.ConfirmPayment(ctx, groupID, payer, receiver, time.Now().Unix())
	if err != nil {
		slog.Error("ConfirmPayment failed", "group_id", groupID, "error", err)
		return false, err
	}
	if !confirmed {
		slog.Warn("ConfirmPayment found no pending payment",
			"group_id", groupID,
			"payer", payer,
			"receiver", receiver,
		)
		return false, nil
	}

	metrics.PaymentsConfirmed.Inc()
	slog.Info("Payment confirmed", "group_id", groupID, "payer", payer, "receiver", receiver)
	return true, nil
}
