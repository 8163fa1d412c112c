package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goodtricount/backend/internal/models"
	"github.com/goodtricount/backend/internal/storage"
)

// CreateInvitation persists a new group invitation.
func (s *SQLiteStore) CreateInvitation(ctx context.Context, inv *models.Invitation) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt == 0 {
		inv.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invitations (id, group_id, from_user, to_user, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		inv.ID, inv.GroupID, inv.FromUser, inv.ToUser, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invitation: %w", err)
	}
	return nil
}

// GetInvitation retrieves an invitation by ID.
func (s *SQLiteStore) GetInvitation(ctx context.Context, id string) (*models.Invitation, error) {
	inv := &models.Invitation{}
	err := s.db.QueryRowContext(ctx,
		`SELECT i.id, i.group_id, g.name, i.from_user, i.to_user, i.created_at
		 FROM invitations i JOIN groups g ON g.id = i.group_id
		 WHERE i.id = ?`,
		id,
	).Scan(&inv.ID, &inv.GroupID, &inv.GroupName, &inv.FromUser, &inv.ToUser, &inv.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("invitation %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return inv, nil
}

// ListInvitationsForUser returns pending invitations for the user,
// oldest first.
func (s *SQLiteStore) ListInvitationsForUser(ctx context.Context, username string) ([]*models.Invitation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT i.id, i.group_id, g.name, i.from_user, i.to_user, i.created_at
		 FROM invitations i JOIN groups g ON g.id = i.group_id
		 WHERE i.to_user = ?
		 ORDER BY i.created_at, i.rowid`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*models.Invitation
	for rows.Next() {
		inv := &models.Invitation{}
		if err := rows.Scan(&inv.ID, &inv.GroupID, &inv.GroupName,
			&inv.FromUser, &inv.ToUser, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invitations: %w", err)
	}
	return invitations, nil
}

// DeleteInvitation removes an invitation by ID.
func (s *SQLiteStore) DeleteInvitation(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM invitations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	return nil
}
