package models

import "github.com/shopspring/decimal"

// EdgeStatus is the payment state attached to a settlement edge.
type EdgeStatus string

const (
	// EdgeUnpaid means no payment exists for the debtor/creditor pair.
	EdgeUnpaid EdgeStatus = "unpaid"

	// EdgePending means the debtor marked the debt as paid and the
	// creditor has not confirmed yet.
	EdgePending EdgeStatus = "pending"

	// EdgeConfirmed means the creditor confirmed the payment.
	EdgeConfirmed EdgeStatus = "confirmed"
)

// SettlementEdge is one proposed transfer from a debtor to a creditor
// that reduces outstanding balances. Edges are computed, never stored;
// the Status field is overlaid from the group's payment log.
type SettlementEdge struct {
	Debtor   string          `json:"debtor"`
	Creditor string          `json:"creditor"`
	Amount   decimal.Decimal `json:"amount"`
	Status   EdgeStatus      `json:"status"`
}
