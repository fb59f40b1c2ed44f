package party

import "errors"

var (
	// ErrNotFound: no such party, a malformed or expired code, or a party
	// that is no longer accepting joins.
	ErrNotFound = errors.New("party not found")

	// ErrUnauthorized: a creator-only operation attempted by someone else.
	ErrUnauthorized = errors.New("only the party creator can do this")

	// ErrCapacityExceeded: the party already has MaxMembers members.
	ErrCapacityExceeded = errors.New("party is full")

	// ErrAlreadyCheckedIn: the party already checked in.
	ErrAlreadyCheckedIn = errors.New("party already checked in")

	// ErrExpiredOrInactive: the party was cancelled or has expired.
	ErrExpiredOrInactive = errors.New("party has expired or is no longer active")

	// ErrCreatorMustCancel: the creator tried to leave their own party.
	ErrCreatorMustCancel = errors.New("the creator cannot leave the party, cancel it instead")

	// ErrNotMember: the caller has no membership in the party.
	ErrNotMember = errors.New("not a member of this party")

	// ErrPhotoUpload: the check-in photo could not be stored; nothing was
	// recorded.
	ErrPhotoUpload = errors.New("failed to upload check-in photo")

	// ErrInvalidMessage: the custom message is too long.
	ErrInvalidMessage = errors.New("custom message is too long")

	// ErrCodeSpaceExhausted: no free join code was found.
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique join code")
)
