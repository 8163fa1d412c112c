// Package server wires the fiber app: middleware, routes, and handlers.
package server

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goodtricount/backend/internal/auth"
	"github.com/goodtricount/backend/internal/service"
	"github.com/goodtricount/backend/internal/storage"
)

// New builds the fiber app with all routes registered.
func New(store storage.Store, authSvc *service.AuthService, groups *service.GroupService,
	ledgerSvc *service.LedgerService, invites *service.InviteService, jwtManager *auth.JWTManager) *fiber.App {

	app := fiber.New(fiber.Config{
		AppName:               "goodtricount",
		DisableStartupMessage: true,
	})

	app.Use(RequestLogger())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{Max: 120}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authHandler := NewAuthHandler(authSvc, store)
	groupHandler := NewGroupHandler(groups)
	ledgerHandler := NewLedgerHandler(ledgerSvc)
	inviteHandler := NewInviteHandler(invites)

	authMW := RequireAuth(jwtManager)

	app.Post("/api/auth/register", authHandler.Register)
	app.Post("/api/auth/login", authHandler.Login)
	app.Get("/api/me", authMW, authHandler.Me)

	app.Post("/api/groups", authMW, groupHandler.Create)
	app.Get("/api/groups", authMW, groupHandler.List)
	app.Get("/api/groups/:id", authMW, groupHandler.Get)
	app.Post("/api/groups/:id/expenses", authMW, groupHandler.AddExpense)

	app.Get("/api/groups/:id/ledger", authMW, ledgerHandler.Ledger)
	app.Post("/api/groups/:id/payments", authMW, ledgerHandler.RecordPayment)
	app.Post("/api/groups/:id/payments/confirm", authMW, ledgerHandler.ConfirmPayment)

	app.Post("/api/groups/:id/invitations", authMW, inviteHandler.Invite)
	app.Get("/api/invitations", authMW, inviteHandler.List)
	app.Post("/api/invitations/:id/accept", authMW, inviteHandler.Accept)

	return app
}
