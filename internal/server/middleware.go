package server

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/goodtricount/backend/internal/auth"
	"github.com/goodtricount/backend/internal/metrics"
)

const (
	// usernameKey is the Locals key for the authenticated username.
	usernameKey = "username"
	// emailKey is the Locals key for the authenticated user's email.
	emailKey = "email"
)

// Username extracts the authenticated username from the request.
// Returns empty string if not found.
func Username(c *fiber.Ctx) string {
	username, _ := c.Locals(usernameKey).(string)
	return username
}

// RequireAuth returns a middleware that validates bearer JWT tokens and
// stores the caller's identity in Locals for handlers downstream.
func RequireAuth(jwtManager *auth.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, auth.ErrMissingToken.Error())
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, auth.ErrInvalidToken.Error())
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, auth.ErrInvalidToken.Error())
		}

		c.Locals(usernameKey, claims.Username)
		c.Locals(emailKey, claims.Email)
		return c.Next()
	}
}

// RequestLogger logs every request with method, path, status, and
// duration, and feeds the Prometheus request collectors.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		route := c.Route().Path
		duration := time.Since(start)
		metrics.RequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())

		logFn := slog.Info
		if status >= 500 {
			logFn = slog.Error
		} else if status >= 400 {
			logFn = slog.Warn
		}
		logFn("Request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", duration.Milliseconds(),
			"username", Username(c),
		)

		return err
	}
}
