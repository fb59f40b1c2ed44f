package models

// Party is an ephemeral group that registers gym attendance for all of its
// members through one action of its creator.
//
// A party is Open while IsActive, not CheckedIn and not past ExpiresAt.
// CheckedIn only ever moves from false to true.
type Party struct {
	// ID is the unique identifier for the party (UUID format).
	ID string

	// Code is the 6-character join code, unique among active parties.
	Code string

	// CreatorID is the user who created the party. Only the creator may
	// cancel it or trigger the check-in.
	CreatorID string

	// CreatedAt is the Unix timestamp when the party was created.
	CreatedAt int64

	// ExpiresAt is fixed at creation (CreatedAt + party TTL).
	ExpiresAt int64

	// MaxMembers bounds the membership count, creator included.
	MaxMembers int

	// IsActive is false once the party was cancelled or found expired.
	IsActive bool

	// CheckedIn is set by the creator-triggered check-in.
	CheckedIn bool

	// CheckedInAt is the Unix timestamp of the check-in, 0 if none.
	CheckedInAt int64

	// CancelledAt is the Unix timestamp of the cancellation, 0 if none.
	CancelledAt int64

	// CustomMessage is an optional note from the creator.
	CustomMessage string
}

// PartyStatus is the externally visible lifecycle state of a party.
type PartyStatus string

const (
	PartyOpen      PartyStatus = "open"
	PartyCheckedIn PartyStatus = "checked_in"
	PartyCancelled PartyStatus = "cancelled"
	PartyExpired   PartyStatus = "expired"
)

// Terminal reports whether no further transitions are possible.
func (s PartyStatus) Terminal() bool {
	return s != PartyOpen
}

// Membership associates a user with a party they joined.
type Membership struct {
	ID       string
	PartyID  string
	UserID   string
	JoinedAt int64
}
