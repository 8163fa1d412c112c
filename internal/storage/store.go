// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/goodtricount/backend/internal/models"
)

// ErrNotFound is returned (wrapped) by Store implementations when the
// requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the persistence operations the services need.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user. The username and email must be
	// unused; violations surface as database constraint errors.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by username. Returns nil, nil when the
	// user does not exist.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail retrieves a user by email. Returns nil, nil when
	// no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateGroup persists a group with its participants and admins.
	// The group's ID and CreatedAt are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a fully hydrated group: participants in
	// insertion order, admins, expenses, and the payment log in append
	// order. Wraps ErrNotFound when the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByMember returns every group the user participates in.
	// Expenses and payments are not hydrated.
	ListGroupsByMember(ctx context.Context, username string) ([]*models.Group, error)

	// AddParticipant appends a username to the group's participant list.
	AddParticipant(ctx context.Context, groupID, username string) error

	// AddExpense appends an expense to its group's expense history.
	// The expense's ID and CreatedAt are populated by the store.
	AddExpense(ctx context.Context, expense *models.Expense) error

	// AddPayment appends a pending payment to its group's payment log.
	// The payment's ID and CreatedAt are populated by the store.
	AddPayment(ctx context.Context, payment *models.Payment) error

	// HasPendingPayment reports whether an outstanding pending payment
	// exists for the ordered (payer, receiver) pair.
	HasPendingPayment(ctx context.Context, groupID, payer, receiver string) (bool, error)

	// ConfirmPayment marks the oldest pending payment for the ordered
	// (payer, receiver) pair as confirmed, stamping confirmedAt. It
	// returns false when no pending payment matched; that is not an
	// error, a confirmation can race another one.
	ConfirmPayment(ctx context.Context, groupID, payer, receiver string, confirmedAt int64) (bool, error)

	// CreateInvitation persists a group invitation. The invitation's ID
	// and CreatedAt are populated by the store.
	CreateInvitation(ctx context.Context, inv *models.Invitation) error

	// GetInvitation retrieves an invitation by ID. Wraps ErrNotFound
	// when it does not exist.
	GetInvitation(ctx context.Context, id string) (*models.Invitation, error)

	// ListInvitationsForUser returns the pending invitations addressed
	// to the user, oldest first.
	ListInvitationsForUser(ctx context.Context, username string) ([]*models.Invitation, error)

	// DeleteInvitation removes an invitation (after acceptance).
	DeleteInvitation(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
