package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/goodtricount/backend/internal/auth"
	"github.com/goodtricount/backend/internal/ledger"
	"github.com/goodtricount/backend/internal/service"
	"github.com/goodtricount/backend/internal/storage"
)

// httpError maps domain errors onto HTTP status codes. Anything
// unrecognized is an internal error; the raw fault is logged by the
// request logger, not leaked to the client.
func httpError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotMember), errors.Is(err, service.ErrNotAdmin):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrPaymentPending), errors.Is(err, service.ErrAlreadyMember):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownParticipant),
		errors.Is(err, service.ErrUnknownUser),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrAdminNotParticipant),
		errors.Is(err, ledger.ErrInvalidGroupState),
		errors.Is(err, auth.ErrWeakPassword):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
