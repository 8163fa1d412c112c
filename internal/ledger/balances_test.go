package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/goodtricount/backend/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func expense(payer, amount, description string) models.Expense {
	return models.Expense{Payer: payer, Amount: dec(amount), Description: description}
}

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name         string
		participants []string
		expenses     []models.Expense
		wantErr      bool
		validateFunc func(t *testing.T, balances map[string]decimal.Decimal)
	}{
		{
			name:         "no participants should error",
			participants: []string{},
			expenses:     []models.Expense{expense("alice", "90", "dinner")},
			wantErr:      true,
		},
		{
			name:         "no expenses yields all zero",
			participants: []string{"alice", "bob"},
			expenses:     nil,
			validateFunc: func(t *testing.T, balances map[string]decimal.Decimal) {
				for _, p := range []string{"alice", "bob"} {
					if !balances[p].IsZero() {
						t.Errorf("%s balance = %s, want 0", p, balances[p])
					}
				}
			},
		},
		{
			name:         "single dinner splits across whole group",
			participants: []string{"alice", "bob", "carol"},
			expenses:     []models.Expense{expense("alice", "90", "dinner")},
			validateFunc: func(t *testing.T, balances map[string]decimal.Decimal) {
				// alice paid 90, her share is 30 -> +60; the others owe 30 each.
				if !balances["alice"].Equal(dec("60")) {
					t.Errorf("alice balance = %s, want 60", balances["alice"])
				}
				if !balances["bob"].Equal(dec("-30")) {
					t.Errorf("bob balance = %s, want -30", balances["bob"])
				}
				if !balances["carol"].Equal(dec("-30")) {
					t.Errorf("carol balance = %s, want -30", balances["carol"])
				}
			},
		},
		{
			name:         "multiple expenses accumulate",
			participants: []string{"alice", "bob"},
			expenses: []models.Expense{
				expense("alice", "40", "groceries"),
				expense("bob", "10", "coffee"),
			},
			validateFunc: func(t *testing.T, balances map[string]decimal.Decimal) {
				// alice: +20 from groceries, -5 from coffee = +15
				if !balances["alice"].Equal(dec("15")) {
					t.Errorf("alice balance = %s, want 15", balances["alice"])
				}
				if !balances["bob"].Equal(dec("-15")) {
					t.Errorf("bob balance = %s, want -15", balances["bob"])
				}
			},
		},
		{
			name:         "payer outside group still splits across members",
			participants: []string{"alice", "bob"},
			expenses:     []models.Expense{expense("mallory", "10", "stray")},
			validateFunc: func(t *testing.T, balances map[string]decimal.Decimal) {
				// The service layer rejects unknown payers before this point;
				// the pure function just never credits a non-member.
				if !balances["alice"].Equal(dec("-5")) {
					t.Errorf("alice balance = %s, want -5", balances["alice"])
				}
				if !balances["bob"].Equal(dec("-5")) {
					t.Errorf("bob balance = %s, want -5", balances["bob"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ComputeBalances(tt.participants, tt.expenses)
			if (err != nil) != tt.wantErr {
				t.Errorf("ComputeBalances() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && tt.validateFunc != nil {
				tt.validateFunc(t, balances)
			}
		})
	}
}

func TestComputeBalancesZeroSum(t *testing.T) {
	participants := []string{"alice", "bob", "carol", "dave", "erin"}
	expenses := []models.Expense{
		expense("alice", "100", "rent"),
		expense("bob", "33.33", "utilities"),
		expense("carol", "7", "snacks"),
		expense("alice", "0.01", "penny"),
		expense("erin", "250.75", "flights"),
	}

	balances, err := ComputeBalances(participants, expenses)
	if err != nil {
		t.Fatalf("ComputeBalances failed: %v", err)
	}

	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(b)
	}
	if sum.Abs().Cmp(dec("0.000000001")) > 0 {
		t.Errorf("balances sum to %s, want ~0", sum)
	}
}

func TestComputeBalancesIdempotent(t *testing.T) {
	participants := []string{"alice", "bob", "carol"}
	expenses := []models.Expense{
		expense("alice", "90", "dinner"),
		expense("bob", "12.50", "taxi"),
	}

	first, err := ComputeBalances(participants, expenses)
	if err != nil {
		t.Fatalf("first ComputeBalances failed: %v", err)
	}
	second, err := ComputeBalances(participants, expenses)
	if err != nil {
		t.Fatalf("second ComputeBalances failed: %v", err)
	}

	for p, b := range first {
		if !b.Equal(second[p]) {
			t.Errorf("%s balance changed between calls: %s vs %s", p, b, second[p])
		}
	}
}
