package service

import "errors"

var (
	// ErrUnknownParticipant means an expense or payment referenced a
	// username that is not in the group's participant set.
	ErrUnknownParticipant = errors.New("user is not a participant of this group")

	// ErrNotMember means the caller is not a participant of the group.
	ErrNotMember = errors.New("you must be a member of this group")

	// ErrNotAdmin means the caller lacks admin rights in the group.
	ErrNotAdmin = errors.New("you must be an admin of this group")

	// ErrInvalidAmount means an expense or payment amount was not
	// strictly positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrPaymentPending means a pending payment already exists for the
	// ordered (payer, receiver) pair.
	ErrPaymentPending = errors.New("a pending payment for this debt already exists")

	// ErrAlreadyMember means the invited user already participates in
	// the group.
	ErrAlreadyMember = errors.New("user is already a member of this group")

	// ErrUnknownUser means a referenced username is not registered.
	ErrUnknownUser = errors.New("no such user")

	// ErrAdminNotParticipant means a requested admin is outside the
	// participant set.
	ErrAdminNotParticipant = errors.New("admins must be participants")
)
