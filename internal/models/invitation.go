package models

// Invitation is a request for a user to join a group. Accepting it adds
// the user to the group's participants and removes the invitation.
type Invitation struct {
	// ID is the unique identifier for the invitation (UUID format).
	ID string `json:"id"`

	// GroupID is the group the invitee would join.
	GroupID string `json:"group_id"`

	// GroupName is denormalized for display in the invitee's inbox.
	GroupName string `json:"group_name"`

	// FromUser is the admin who sent the invitation.
	FromUser string `json:"from_user"`

	// ToUser is the invited username.
	ToUser string `json:"to_user"`

	// CreatedAt is the Unix timestamp when the invitation was sent.
	CreatedAt int64 `json:"created_at"`
}
