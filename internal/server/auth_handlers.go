package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/goodtricount/backend/internal/auth"
	"github.com/goodtricount/backend/internal/models"
	"github.com/goodtricount/backend/internal/service"
	"github.com/goodtricount/backend/internal/storage"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
	Name    string       `json:"name,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

// AuthHandler serves registration, login, and the current-user lookup.
type AuthHandler struct {
	auth  *service.AuthService
	store storage.Store
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc *service.AuthService, store storage.Store) *AuthHandler {
	return &AuthHandler{auth: authSvc, store: store}
}

// Register handles POST /api/auth/register. Username and email
// conflicts come back as 409 with a machine-readable reason.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username, password, and email required")
	}

	user, token, err := h.auth.Register(c.UserContext(), req.Username, req.Email, req.Name, req.Password)
	if err != nil {
		if reason := conflictReason(err); reason != "" {
			return c.Status(fiber.StatusConflict).JSON(authResponse{Success: false, Reason: reason})
		}
		return httpError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse{
		Success: true,
		Token:   token,
		User:    user,
		Name:    user.Name,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username and password required")
	}

	user, token, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(authResponse{
		Success: true,
		Token:   token,
		User:    user,
		Name:    user.Name,
	})
}

// Me handles GET /api/me, returning the authenticated user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.store.GetUser(c.UserContext(), Username(c))
	if err != nil {
		return httpError(err)
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	return c.JSON(user)
}

func conflictReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrUsernameExists):
		return "username_taken"
	case errors.Is(err, auth.ErrEmailExists):
		return "email_taken"
	default:
		return ""
	}
}
