package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goodtricount/backend/internal/service"
)

type inviteRequest struct {
	ToUser string `json:"to_user"`
}

// InviteHandler serves group invitations.
type InviteHandler struct {
	invites *service.InviteService
}

// NewInviteHandler creates an InviteHandler.
func NewInviteHandler(invites *service.InviteService) *InviteHandler {
	return &InviteHandler{invites: invites}
}

// Invite handles POST /api/groups/:id/invitations.
func (h *InviteHandler) Invite(c *fiber.Ctx) error {
	var req inviteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.ToUser == "" {
		return fiber.NewError(fiber.StatusBadRequest, "to_user required")
	}

	inv, err := h.invites.Invite(c.UserContext(), Username(c), c.Params("id"), req.ToUser)
	if err != nil {
		return httpError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// List handles GET /api/invitations.
func (h *InviteHandler) List(c *fiber.Ctx) error {
	invitations, err := h.invites.ListInvitations(c.UserContext(), Username(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(invitations)
}

// Accept handles POST /api/invitations/:id/accept, returning the joined
// group.
func (h *InviteHandler) Accept(c *fiber.Ctx) error {
	group, err := h.invites.Accept(c.UserContext(), Username(c), c.Params("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(group)
}
