// Package ledger computes net balances and settlement plans for a group.
//
// Both entry points are pure functions over the group's expense history
// and payment log. They hold no state and are safe to call repeatedly;
// callers own all locking around the mutable Group.
package ledger

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/goodtricount/backend/internal/models"
)

// ErrInvalidGroupState is returned when balances are requested for a
// group with no participants. Callers must guarantee at least one
// member before asking for a balance view.
var ErrInvalidGroupState = errors.New("group has no participants")

// ComputeBalances returns the net position of every participant after
// splitting each expense equally across the whole group. A positive
// balance means the participant is owed money, negative means they owe.
//
// The sum of all returned balances is zero, up to the residue of
// decimal division (well under the 1e-9 epsilon the settlement step
// uses). Payments are deliberately not consulted here: a paid debt
// still counts in the raw balance, only the settlement view overlays
// payment state.
func ComputeBalances(participants []string, expenses []models.Expense) (map[string]decimal.Decimal, error) {
	if len(participants) == 0 {
		return nil, ErrInvalidGroupState
	}

	balances := make(map[string]decimal.Decimal, len(participants))
	for _, p := range participants {
		balances[p] = decimal.Zero
	}

	headcount := decimal.NewFromInt(int64(len(participants)))
	for _, expense := range expenses {
		share := expense.Amount.Div(headcount)
		for _, p := range participants {
			if p == expense.Payer {
				balances[p] = balances[p].Add(expense.Amount.Sub(share))
			} else {
				balances[p] = balances[p].Sub(share)
			}
		}
	}

	return balances, nil
}
