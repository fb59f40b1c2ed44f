// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/gymparty/internal/models"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCodeTaken is returned by CreateParty when another active party
	// already holds the join code.
	ErrCodeTaken = errors.New("join code already in use")

	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("duplicate row")

	// ErrPartyFull is returned when the store refuses a membership insert
	// because the party is at capacity.
	ErrPartyFull = errors.New("party is at capacity")

	// ErrPartyCheckedIn is returned by CancelParty when the check-in gate
	// already closed the party.
	ErrPartyCheckedIn = errors.New("party already checked in")

	// ErrPartyClosed is returned when a party is inactive or expired and
	// the operation needs an open one.
	ErrPartyClosed = errors.New("party is not open")
)

// JoinOutcome is the result of an atomic admission attempt.
type JoinOutcome int

const (
	// JoinAdmitted means a new membership row was inserted.
	JoinAdmitted JoinOutcome = iota
	// JoinAlreadyMember means the (party, user) row already existed.
	JoinAlreadyMember
	// JoinFull means the party was at capacity; nothing was inserted.
	JoinFull
	// JoinClosed means the party was no longer open; nothing was inserted.
	JoinClosed
)

func (o JoinOutcome) String() string {
	switch o {
	case JoinAdmitted:
		return "admitted"
	case JoinAlreadyMember:
		return "already_member"
	case JoinFull:
		return "full"
	case JoinClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// PartyStore persists parties and memberships.
//
// Every method that changes more than one row runs in a single store
// transaction. Methods taking "now" use it to evaluate expiry inside the
// store so the check and the write cannot be interleaved.
type PartyStore interface {
	// CreateParty inserts a party. Returns ErrCodeTaken if the code is held
	// by another active party.
	CreateParty(ctx context.Context, party *models.Party) error

	// DeleteParty removes a party and its memberships.
	DeleteParty(ctx context.Context, partyID string) error

	// GetParty retrieves a party by ID. Returns ErrNotFound if missing.
	GetParty(ctx context.Context, partyID string) (*models.Party, error)

	// GetActivePartyByCode retrieves the active party holding code.
	// Returns ErrNotFound if there is none.
	GetActivePartyByCode(ctx context.Context, code string) (*models.Party, error)

	// ListActivePartiesForUser lists active, not checked-in parties the user
	// belongs to, most recently joined first.
	ListActivePartiesForUser(ctx context.Context, userID string) ([]*models.Party, error)

	// DeactivateParty sets is_active = false.
	DeactivateParty(ctx context.Context, partyID string) error

	// DeactivateExpiredParties deactivates every active party whose
	// expires_at is before now and returns how many were changed.
	DeactivateExpiredParties(ctx context.Context, now int64) (int64, error)

	// CancelParty marks the party inactive and cancelled iff it is open at
	// now, then deletes all of its memberships, in one transaction. Returns
	// ErrPartyCheckedIn or ErrPartyClosed when the party is not open and
	// ErrNotFound when it does not exist.
	CancelParty(ctx context.Context, partyID string, now int64) error

	// MarkCheckedIn flips checked_in from false to true iff the party is
	// active, not checked in and not expired at now. Reports whether this
	// call performed the transition.
	MarkCheckedIn(ctx context.Context, partyID string, now int64) (bool, error)

	// AddMember inserts a membership unconditionally (subject to the
	// capacity and uniqueness constraints of the store).
	AddMember(ctx context.Context, member *models.Membership) error

	// JoinParty admits member iff the party is open at now and below
	// capacity, as one atomic operation.
	JoinParty(ctx context.Context, member *models.Membership, now int64) (JoinOutcome, error)

	// RemoveMember deletes the membership of userID iff the party is open
	// at now, as one atomic operation. Returns ErrPartyClosed when the party
	// is not open. Reports whether a row was deleted.
	RemoveMember(ctx context.Context, partyID, userID string, now int64) (bool, error)

	// GetMembership returns ErrNotFound if userID is not in the party.
	GetMembership(ctx context.Context, partyID, userID string) (*models.Membership, error)

	// ListMembers lists memberships in join order.
	ListMembers(ctx context.Context, partyID string) ([]*models.Membership, error)

	// CountMembers counts memberships of the party.
	CountMembers(ctx context.Context, partyID string) (int, error)
}

// BatchCheckIn is the single-call contract used by the party check-in.
type BatchCheckIn struct {
	MemberIDs []string
	Date      string
	Timestamp int64
	PhotoURL  string
	PartyID   string
}

// BatchResult reports what a BatchCheckIn did for each member.
type BatchResult struct {
	// SuccessCount is the number of records written by this call.
	SuccessCount int
	// AlreadyRecorded lists members that already had a record for Date.
	AlreadyRecorded []string
	// Failed maps member IDs to the error that prevented their write.
	Failed map[string]error
}

// AttendanceLedger is the shared per-user, per-day attendance store used by
// both the solo and the party check-in paths.
type AttendanceLedger interface {
	// RecordAttendance inserts a record unless one exists for
	// (UserID, Date). Reports whether a row was written.
	RecordAttendance(ctx context.Context, record *models.AttendanceRecord) (bool, error)

	// GetAttendance returns ErrNotFound if the user has no record for date.
	GetAttendance(ctx context.Context, userID, date string) (*models.AttendanceRecord, error)

	// ListAttendance lists the user's records, newest first.
	ListAttendance(ctx context.Context, userID string, limit int) ([]*models.AttendanceRecord, error)

	// BatchCheckIn writes one party record per member, skipping members
	// already recorded for the date. Individual failures are collected in
	// the result, not returned as an error.
	BatchCheckIn(ctx context.Context, batch BatchCheckIn) (*BatchResult, error)
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)
}

// Store is the full storage backend.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	PartyStore
	AttendanceLedger
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
