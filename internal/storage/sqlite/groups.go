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

// CreateGroup persists a group with its participants and admins.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, created_at) VALUES (?, ?, ?)",
		group.ID, group.Name, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for i, username := range group.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO group_participants (group_id, username, position) VALUES (?, ?, ?)",
			group.ID, username, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	for _, username := range group.Admins {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO group_admins (group_id, username) VALUES (?, ?)",
			group.ID, username,
		)
		if err != nil {
			return fmt.Errorf("failed to insert admin: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGroup retrieves a fully hydrated group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if group.Participants, err = s.groupMembers(ctx,
		"SELECT username FROM group_participants WHERE group_id = ? ORDER BY position", groupID); err != nil {
		return nil, err
	}
	if group.Admins, err = s.groupMembers(ctx,
		"SELECT username FROM group_admins WHERE group_id = ? ORDER BY username", groupID); err != nil {
		return nil, err
	}
	if group.Expenses, err = s.groupExpenses(ctx, groupID); err != nil {
		return nil, err
	}
	if group.Payments, err = s.groupPayments(ctx, groupID); err != nil {
		return nil, err
	}

	return group, nil
}

// ListGroupsByMember returns shallow groups (no expenses or payments)
// that the user belongs to, oldest first.
func (s *SQLiteStore) ListGroupsByMember(ctx context.Context, username string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id, g.name, g.created_at
		 FROM groups g
		 JOIN group_participants gp ON gp.group_id = g.id
		 WHERE gp.username = ?
		 ORDER BY g.created_at, g.id`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	for _, group := range groups {
		if group.Participants, err = s.groupMembers(ctx,
			"SELECT username FROM group_participants WHERE group_id = ? ORDER BY position", group.ID); err != nil {
			return nil, err
		}
		if group.Admins, err = s.groupMembers(ctx,
			"SELECT username FROM group_admins WHERE group_id = ? ORDER BY username", group.ID); err != nil {
			return nil, err
		}
	}

	return groups, nil
}

// AddParticipant appends a username to the end of the participant list.
func (s *SQLiteStore) AddParticipant(ctx context.Context, groupID, username string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO group_participants (group_id, username, position)
		 VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM group_participants WHERE group_id = ?))`,
		groupID, username, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

func (s *SQLiteStore) groupMembers(ctx context.Context, query, groupID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}
