package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/goodtricount/backend/internal/models"
)

// epsilon is the threshold below which a balance counts as settled.
var epsilon = decimal.New(1, -9) // 1e-9

// ComputeSettlement turns a balance mapping into an ordered list of
// pairwise transfers that drives every balance to zero, annotated with
// the payment state for each debtor/creditor pair.
//
// The matching is a greedy two-pointer walk over balances sorted
// ascending: the biggest debtor pays the biggest creditor until one
// side is exhausted, then the settled cursor advances. This produces at
// most len(balances)-1 edges; it does not guarantee the global minimum
// transfer count.
//
// Edge status is read from the payment log, never recomputed: a
// confirmed payment for the pair wins over a pending one, and pairs
// with no payment are unpaid.
func ComputeSettlement(balances map[string]decimal.Decimal, payments []models.Payment) []models.SettlementEdge {
	type position struct {
		name    string
		balance decimal.Decimal
	}

	sorted := make([]position, 0, len(balances))
	for name, balance := range balances {
		sorted = append(sorted, position{name: name, balance: balance})
	}
	// Ties broken by name so the plan is deterministic for a fixed input.
	sort.Slice(sorted, func(a, b int) bool {
		if c := sorted[a].balance.Cmp(sorted[b].balance); c != 0 {
			return c < 0
		}
		return sorted[a].name < sorted[b].name
	})

	var edges []models.SettlementEdge
	i, j := 0, len(sorted)-1
	for i < j {
		debt := sorted[i].balance.Neg()
		credit := sorted[j].balance

		// Zero-balance participants settle for nothing; skip them.
		if debt.Cmp(epsilon) <= 0 {
			i++
			continue
		}
		if credit.Cmp(epsilon) <= 0 {
			j--
			continue
		}

		amount := decimal.Min(debt, credit)
		edges = append(edges, models.SettlementEdge{
			Debtor:   sorted[i].name,
			Creditor: sorted[j].name,
			Amount:   amount,
			Status:   edgeStatus(payments, sorted[i].name, sorted[j].name),
		})

		sorted[i].balance = sorted[i].balance.Add(amount)
		sorted[j].balance = sorted[j].balance.Sub(amount)

		// Whichever side is exhausted advances; both advance on an
		// exact match.
		if sorted[i].balance.Abs().Cmp(epsilon) <= 0 {
			i++
		}
		if sorted[j].balance.Abs().Cmp(epsilon) <= 0 {
			j--
		}
	}

	return edges
}

// edgeStatus scans the payment log for the ordered (debtor, creditor)
// pair. Confirmed takes precedence over pending.
func edgeStatus(payments []models.Payment, debtor, creditor string) models.EdgeStatus {
	status := models.EdgeUnpaid
	for _, p := range payments {
		if p.Payer != debtor || p.Receiver != creditor {
			continue
		}
		switch p.Status {
		case models.PaymentConfirmed:
			return models.EdgeConfirmed
		case models.PaymentPending:
			status = models.EdgePending
		}
	}
	return status
}
