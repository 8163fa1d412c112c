package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/goodtricount/backend/internal/models"
)

func payment(payer, receiver, amount string, status models.PaymentStatus) models.Payment {
	return models.Payment{Payer: payer, Receiver: receiver, Amount: dec(amount), Status: status}
}

func TestComputeSettlement(t *testing.T) {
	tests := []struct {
		name         string
		balances     map[string]decimal.Decimal
		payments     []models.Payment
		validateFunc func(t *testing.T, edges []models.SettlementEdge)
	}{
		{
			name:     "empty balances yields no edges",
			balances: map[string]decimal.Decimal{},
			validateFunc: func(t *testing.T, edges []models.SettlementEdge) {
				if len(edges) != 0 {
					t.Errorf("expected no edges, got %d", len(edges))
				}
			},
		},
		{
			name: "all zero yields no edges",
			balances: map[string]decimal.Decimal{
				"alice": decimal.Zero,
				"bob":   decimal.Zero,
			},
			validateFunc: func(t *testing.T, edges []models.SettlementEdge) {
				if len(edges) != 0 {
					t.Errorf("expected no edges, got %d", len(edges))
				}
			},
		},
		{
			name: "dinner scenario settles both debtors against alice",
			balances: map[string]decimal.Decimal{
				"alice": dec("60"),
				"bob":   dec("-30"),
				"carol": dec("-30"),
			},
			validateFunc: func(t *testing.T, edges []models.SettlementEdge) {
				if len(edges) != 2 {
					t.Fatalf("expected 2 edges, got %d", len(edges))
				}
				if edges[0].Debtor != "bob" || edges[0].Creditor != "alice" || !edges[0].Amount.Equal(dec("30")) {
					t.Errorf("edge 0 = %+v, want bob owes alice 30", edges[0])
				}
				if edges[1].Debtor != "carol" || edges[1].Creditor != "alice" || !edges[1].Amount.Equal(dec("30")) {
					t.Errorf("edge 1 = %+v, want carol owes alice 30", edges[1])
				}
				for _, e := range edges {
					if e.Status != models.EdgeUnpaid {
						t.Errorf("edge %s->%s status = %s, want unpaid", e.Debtor, e.Creditor, e.Status)
					}
				}
			},
		},
		{
			name: "big debtor pays multiple creditors",
			balances: map[string]decimal.Decimal{
				"alice": dec("-70"),
				"bob":   dec("40"),
				"carol": dec("30"),
			},
			validateFunc: func(t *testing.T, edges []models.SettlementEdge) {
				if len(edges) != 2 {
					t.Fatalf("expected 2 edges, got %d", len(edges))
				}
				// Biggest creditor is settled in full first.
				if edges[0].Debtor != "alice" || edges[0].Creditor != "bob" || !edges[0].Amount.Equal(dec("40")) {
					t.Errorf("edge 0 = %+v, want alice owes bob 40", edges[0])
				}
				if edges[1].Debtor != "alice" || edges[1].Creditor != "carol" || !edges[1].Amount.Equal(dec("30")) {
					t.Errorf("edge 1 = %+v, want alice owes carol 30", edges[1])
				}
			},
		},
		{
			name: "zero-balance participant in the middle is skipped",
			balances: map[string]decimal.Decimal{
				"alice": dec("25"),
				"bob":   decimal.Zero,
				"carol": dec("-25"),
			},
			validateFunc: func(t *testing.T, edges []models.SettlementEdge) {
				if len(edges) != 1 {
					t.Fatalf("expected 1 edge, got %d", len(edges))
				}
				if edges[0].Debtor != "carol" || edges[0].Creditor != "alice" || !edges[0].Amount.Equal(dec("25")) {
					t.Errorf("edge 0 = %+v, want carol owes alice 25", edges[0])
				}
			},
		},
		{
			name: "pending payment overlays edge status",
			balances: map[string]decimal.Decimal{
				"alice": dec("30"),
				"bob":   dec("-30"),
			},
			payments: []models.Payment{
				payment("bob", "alice", "30", models.PaymentPending),
			},
			validateFunc: func(t *testing.T, edges []models.SettlementEdge) {
				if len(edges) != 1 {
					t.Fatalf("expected 1 edge, got %d", len(edges))
				}
				if edges[0].Status != models.EdgePending {
					t.Errorf("status = %s, want pending", edges[0].Status)
				}
			},
		},
		{
			name: "confirmed takes precedence over pending",
			balances: map[string]decimal.Decimal{
				"alice": dec("30"),
				"bob":   dec("-30"),
			},
			payments: []models.Payment{
				payment("bob", "alice", "30", models.PaymentPending),
				payment("bob", "alice", "30", models.PaymentConfirmed),
			},
			validateFunc: func(t *testing.T, edges []models.SettlementEdge) {
				if edges[0].Status != models.EdgeConfirmed {
					t.Errorf("status = %s, want confirmed", edges[0].Status)
				}
			},
		},
		{
			name: "payment for the reverse direction does not match",
			balances: map[string]decimal.Decimal{
				"alice": dec("30"),
				"bob":   dec("-30"),
			},
			payments: []models.Payment{
				payment("alice", "bob", "30", models.PaymentConfirmed),
			},
			validateFunc: func(t *testing.T, edges []models.SettlementEdge) {
				if edges[0].Status != models.EdgeUnpaid {
					t.Errorf("status = %s, want unpaid", edges[0].Status)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges := ComputeSettlement(tt.balances, tt.payments)
			if tt.validateFunc != nil {
				tt.validateFunc(t, edges)
			}
		})
	}
}

// TestSettlementReplay checks that paying every edge drives all balances
// to zero and that the greedy bound of participants-1 edges holds.
func TestSettlementReplay(t *testing.T) {
	cases := []map[string]decimal.Decimal{
		{
			"alice": dec("60"),
			"bob":   dec("-30"),
			"carol": dec("-30"),
		},
		{
			"alice": dec("-70"),
			"bob":   dec("40"),
			"carol": dec("30"),
		},
		{
			"alice": dec("12.34"),
			"bob":   dec("-0.01"),
			"carol": dec("-12.33"),
			"dave":  decimal.Zero,
		},
		{
			"alice": dec("1"),
			"bob":   dec("2"),
			"carol": dec("3"),
			"dave":  dec("-6"),
		},
	}

	for _, balances := range cases {
		edges := ComputeSettlement(balances, nil)

		if len(edges) > len(balances)-1 {
			t.Errorf("got %d edges for %d participants, want <= %d",
				len(edges), len(balances), len(balances)-1)
		}

		remaining := make(map[string]decimal.Decimal, len(balances))
		for name, b := range balances {
			remaining[name] = b
		}
		for _, e := range edges {
			if !e.Amount.IsPositive() {
				t.Errorf("edge %s->%s has non-positive amount %s", e.Debtor, e.Creditor, e.Amount)
			}
			remaining[e.Debtor] = remaining[e.Debtor].Add(e.Amount)
			remaining[e.Creditor] = remaining[e.Creditor].Sub(e.Amount)
		}
		for name, b := range remaining {
			if b.Abs().Cmp(dec("0.000000001")) > 0 {
				t.Errorf("replaying edges left %s at %s, want 0", name, b)
			}
		}
	}
}
