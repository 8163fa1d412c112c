package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/goodtricount/backend/internal/service"
)

type recordPaymentRequest struct {
	Receiver string          `json:"receiver"`
	Amount   decimal.Decimal `json:"amount"`
}

type confirmPaymentRequest struct {
	Payer string `json:"payer"`
}

type confirmPaymentResponse struct {
	Confirmed bool `json:"confirmed"`
}

// LedgerHandler serves the computed ledger view and the payment
// lifecycle endpoints.
type LedgerHandler struct {
	ledger *service.LedgerService
}

// NewLedgerHandler creates a LedgerHandler.
func NewLedgerHandler(ledgerSvc *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledgerSvc}
}

// Ledger handles GET /api/groups/:id/ledger.
func (h *LedgerHandler) Ledger(c *fiber.Ctx) error {
	view, err := h.ledger.GroupLedger(c.UserContext(), Username(c), c.Params("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(view)
}

// RecordPayment handles POST /api/groups/:id/payments. The caller is
// the debtor marking a debt as paid.
func (h *LedgerHandler) RecordPayment(c *fiber.Ctx) error {
	var req recordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.Receiver == "" {
		return fiber.NewError(fiber.StatusBadRequest, "receiver required")
	}

	payment, err := h.ledger.RecordPayment(c.UserContext(), Username(c), c.Params("id"), req.Receiver, req.Amount)
	if err != nil {
		return httpError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// ConfirmPayment handles POST /api/groups/:id/payments/confirm. The
// caller is the creditor; confirming with nothing pending succeeds with
// confirmed=false.
func (h *LedgerHandler) ConfirmPayment(c *fiber.Ctx) error {
	var req confirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.Payer == "" {
		return fiber.NewError(fiber.StatusBadRequest, "payer required")
	}

	confirmed, err := h.ledger.ConfirmPayment(c.UserContext(), Username(c), c.Params("id"), req.Payer)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(confirmPaymentResponse{Confirmed: confirmed})
}
