package service

import (
	"context"
	"log/slog"

	"github.com/goodtricount/backend/internal/models"
	"github.com/goodtricount/backend/internal/storage"
)

// InviteService manages group invitations: an admin invites a
// registered user, the user accepts and joins the participant list.
type InviteService struct {
	store storage.Store
	locks *Locks
}

// NewInviteService creates a new InviteService with the given storage
// backend.
func NewInviteService(store storage.Store, locks *Locks) *InviteService {
	return &InviteService{store: store, locks: locks}
}

// Invite creates an invitation from an admin of the group to a
// registered user who is not yet a member.
func (s *InviteService) Invite(ctx context.Context, fromUser, groupID, toUser string) (*models.Invitation, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasAdmin(fromUser) {
		return nil, ErrNotAdmin
	}
	if group.HasParticipant(toUser) {
		return nil, ErrAlreadyMember
	}

	user, err := s.store.GetUser(ctx, toUser)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownUser
	}

	inv := &models.Invitation{
		GroupID:   groupID,
		GroupName: group.Name,
		FromUser:  fromUser,
		ToUser:    toUser,
	}
	if err := s.store.CreateInvitation(ctx, inv); err != nil {
		slog.Error("Invite failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("Invitation sent", "group_id", groupID, "from", fromUser, "to", toUser)
	return inv, nil
}

// ListInvitations returns the caller's pending invitations.
func (s *InviteService) ListInvitations(ctx context.Context, username string) ([]*models.Invitation, error) {
	return s.store.ListInvitationsForUser(ctx, username)
}

// Accept adds the caller to the invitation's group and removes the
// invitation. Only the invited user may accept.
func (s *InviteService) Accept(ctx context.Context, username, invitationID string) (*models.Group, error) {
	inv, err := s.store.GetInvitation(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if inv.ToUser != username {
		return nil, ErrNotMember
	}

	unlock := s.locks.lock(inv.GroupID)
	defer unlock()

	group, err := s.store.GetGroup(ctx, inv.GroupID)
	if err != nil {
		return nil, err
	}
	if !group.HasParticipant(username) {
		if err := s.store.AddParticipant(ctx, inv.GroupID, username); err != nil {
			slog.Error("Accept invitation failed", "invitation_id", invitationID, "error", err)
			return nil, err
		}
	}
	if err := s.store.DeleteInvitation(ctx, invitationID); err != nil {
		return nil, err
	}

	slog.Info("Invitation accepted", "group_id", inv.GroupID, "username", username)
	return s.store.GetGroup(ctx, inv.GroupID)
}
