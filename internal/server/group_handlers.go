package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/goodtricount/backend/internal/service"
)

type seedExpense struct {
	Payer       string          `json:"payer"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type createGroupRequest struct {
	Name         string        `json:"name"`
	Participants []string      `json:"participants"`
	Admins       []string      `json:"admins"`
	Expenses     []seedExpense `json:"expenses"`
}

type addExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// GroupHandler serves group CRUD and expense logging.
type GroupHandler struct {
	groups *service.GroupService
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(groups *service.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

// Create handles POST /api/groups.
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name required")
	}

	seed := make([]service.ExpenseInput, len(req.Expenses))
	for i, e := range req.Expenses {
		seed[i] = service.ExpenseInput{
			Payer:       e.Payer,
			Amount:      e.Amount,
			Description: e.Description,
		}
	}

	group, err := h.groups.CreateGroup(c.UserContext(), Username(c), req.Name, req.Participants, req.Admins, seed)
	if err != nil {
		return httpError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// List handles GET /api/groups.
func (h *GroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.groups.ListGroups(c.UserContext(), Username(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(groups)
}

// Get handles GET /api/groups/:id.
func (h *GroupHandler) Get(c *fiber.Ctx) error {
	group, err := h.groups.GetGroup(c.UserContext(), Username(c), c.Params("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(group)
}

// AddExpense handles POST /api/groups/:id/expenses. The payer is the
// authenticated caller.
func (h *GroupHandler) AddExpense(c *fiber.Ctx) error {
	var req addExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Description) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "description required")
	}

	expense, err := h.groups.AddExpense(c.UserContext(), Username(c), c.Params("id"), req.Amount, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}
