package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/goodtricount/backend/internal/models"
	"github.com/goodtricount/backend/internal/storage"
)

// ExpenseInput is a caller-supplied expense, used both for seeding a
// new group and for logging expenses later.
type ExpenseInput struct {
	Payer       string
	Amount      decimal.Decimal
	Description string
}

// GroupService owns group lifecycle and expense logging.
type GroupService struct {
	store storage.Store
	locks *Locks
}

// NewGroupService creates a new GroupService with the given storage
// backend. All services built for the same store should share locks.
func NewGroupService(store storage.Store, locks *Locks) *GroupService {
	return &GroupService{store: store, locks: locks}
}

// CreateGroup creates a group. The creator is always included as both
// participant and admin. Every participant must be a registered user,
// admins must be a subset of participants, and seed expenses must be
// paid by a participant.
func (s *GroupService) CreateGroup(ctx context.Context, creator, name string, participants, admins []string, seed []ExpenseInput) (*models.Group, error) {
	participants = appendMissing(participants, creator)
	admins = appendMissing(admins, creator)

	for _, username := range participants {
		user, err := s.store.GetUser(ctx, username)
		if err != nil {
			return nil, err
		}
		if user == nil {
			slog.Warn("CreateGroup rejected, unknown participant", "username", username)
			return nil, ErrUnknownUser
		}
	}

	group := &models.Group{
		Name:         name,
		Participants: participants,
		Admins:       admins,
	}
	for _, admin := range admins {
		if !group.HasParticipant(admin) {
			return nil, ErrAdminNotParticipant
		}
	}

	for _, exp := range seed {
		if err := validateExpense(group, exp); err != nil {
			return nil, err
		}
	}

	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, err
	}

	for _, exp := range seed {
		expense := &models.Expense{
			GroupID:     group.ID,
			Payer:       exp.Payer,
			Amount:      exp.Amount,
			Description: exp.Description,
		}
		if err := s.store.AddExpense(ctx, expense); err != nil {
			slog.Error("CreateGroup seed expense failed", "group_id", group.ID, "error", err)
			return nil, err
		}
		group.Expenses = append(group.Expenses, *expense)
	}

	slog.Info("Group created", "group_id", group.ID, "participants", len(participants))
	return group, nil
}

// GetGroup returns the fully hydrated group. Members only.
func (s *GroupService) GetGroup(ctx context.Context, username, groupID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasParticipant(username) {
		return nil, ErrNotMember
	}
	return group, nil
}

// ListGroups returns the groups the user belongs to.
func (s *GroupService) ListGroups(ctx context.Context, username string) ([]*models.Group, error) {
	return s.store.ListGroupsByMember(ctx, username)
}

// AddExpense logs an expense paid by the caller. Only admins may add
// expenses; amounts must be strictly positive.
func (s *GroupService) AddExpense(ctx context.Context, username, groupID string, amount decimal.Decimal, description string) (*models.Expense, error) {
	unlock := s.locks.lock(groupID)
	defer unlock()

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasAdmin(username) {
		return nil, ErrNotAdmin
	}

	exp := ExpenseInput{Payer: username, Amount: amount, Description: description}
	if err := validateExpense(group, exp); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		GroupID:     groupID,
		Payer:       username,
		Amount:      amount,
		Description: description,
	}
	if err := s.store.AddExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("Expense added", "group_id", groupID, "payer", username, "amount", amount.String())
	return expense, nil
}

func validateExpense(group *models.Group, exp ExpenseInput) error {
	if !exp.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !group.HasParticipant(exp.Payer) {
		return ErrUnknownParticipant
	}
	return nil
}

func appendMissing(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
