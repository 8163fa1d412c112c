package models

// Group is a set of participants sharing expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Flatmates", "Ski Trip").
	Name string `json:"name"`

	// Participants is the list of member usernames, in insertion order.
	// Insertion order is kept so callers can display members stably.
	Participants []string `json:"participants"`

	// Admins is the subset of Participants allowed to add expenses and
	// send invitations. Invariant: every admin is also a participant.
	Admins []string `json:"admins"`

	// Expenses is the ordered expense history of the group.
	Expenses []Expense `json:"expenses"`

	// Payments is the append-only payment log. Confirmation mutates the
	// status of an existing entry; entries are never deleted.
	Payments []Payment `json:"payments"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"created_at"`
}

// HasParticipant reports whether username is a member of the group.
func (g *Group) HasParticipant(username string) bool {
	for _, p := range g.Participants {
		if p == username {
			return true
		}
	}
	return false
}

// HasAdmin reports whether username is an admin of the group.
func (g *Group) HasAdmin(username string) bool {
	for _, a := range g.Admins {
		if a == username {
			return true
		}
	}
	return false
}
