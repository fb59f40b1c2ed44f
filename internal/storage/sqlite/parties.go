package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/storage"
)

var partyColumnNames = []string{
	"id", "code", "creator_id", "created_at", "expires_at", "max_members",
	"is_active", "checked_in", "checked_in_at", "cancelled_at", "custom_message",
}

// partyColumns returns the party column list, each column qualified with
// prefix when it is not empty.
func partyColumns(prefix string) string {
	if prefix == "" {
		return strings.Join(partyColumnNames, ", ")
	}
	cols := make([]string, len(partyColumnNames))
	for i, c := range partyColumnNames {
		cols[i] = prefix + "." + c
	}
	return strings.Join(cols, ", ")
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanParty(row rowScanner) (*models.Party, error) {
	party := &models.Party{}
	var message sql.NullString
	err := row.Scan(
		&party.ID,
		&party.Code,
		&party.CreatorID,
		&party.CreatedAt,
		&party.ExpiresAt,
		&party.MaxMembers,
		&party.IsActive,
		&party.CheckedIn,
		&party.CheckedInAt,
		&party.CancelledAt,
		&message,
	)
	if err != nil {
		return nil, err
	}
	if message.Valid {
		party.CustomMessage = message.String
	}
	return party, nil
}

// CreateParty inserts a new party. The ID is generated if not set.
func (s *SQLiteStore) CreateParty(ctx context.Context, party *models.Party) error {
	if party.ID == "" {
		party.ID = uuid.New().String()
	}

	var message interface{} = nil
	if party.CustomMessage != "" {
		message = party.CustomMessage
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO parties (`+partyColumns("")+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		party.ID, party.Code, party.CreatorID, party.CreatedAt, party.ExpiresAt, party.MaxMembers,
		boolToInt(party.IsActive), boolToInt(party.CheckedIn), party.CheckedInAt, party.CancelledAt, message,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to insert party with code %s: %w", party.Code, storage.ErrCodeTaken)
		}
		return fmt.Errorf("failed to insert party: %w", err)
	}
	return nil
}

// DeleteParty removes a party; memberships go with it through ON DELETE CASCADE.
func (s *SQLiteStore) DeleteParty(ctx context.Context, partyID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM parties WHERE id = ?", partyID)
	if err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("party %s: %w", partyID, storage.ErrNotFound)
	}
	return nil
}

// GetParty retrieves a party by ID.
func (s *SQLiteStore) GetParty(ctx context.Context, partyID string) (*models.Party, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+partyColumns("")+" FROM parties WHERE id = ?",
		partyID,
	)
	party, err := scanParty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("party %s: %w", partyID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get party: %w", err)
	}
	return party, nil
}

// GetActivePartyByCode retrieves the active party that holds code.
func (s *SQLiteStore) GetActivePartyByCode(ctx context.Context, code string) (*models.Party, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+partyColumns("")+" FROM parties WHERE code = ? AND is_active = 1",
		code,
	)
	party, err := scanParty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("party with code %s: %w", code, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get party by code: %w", err)
	}
	return party, nil
}

// ListActivePartiesForUser lists the user's active, not checked-in parties,
// most recently joined first.
func (s *SQLiteStore) ListActivePartiesForUser(ctx context.Context, userID string) ([]*models.Party, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+partyColumns("p")+`
		 FROM parties p
		 JOIN party_members m ON m.party_id = p.id
		 WHERE m.user_id = ? AND p.is_active = 1 AND p.checked_in = 0
		 ORDER BY m.joined_at DESC, m.rowid DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties for user: %w", err)
	}
	defer rows.Close()

	var parties []*models.Party
	for rows.Next() {
		party, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		parties = append(parties, party)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parties: %w", err)
	}
	return parties, nil
}

// DeactivateParty marks a party inactive.
func (s *SQLiteStore) DeactivateParty(ctx context.Context, partyID string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE parties SET is_active = 0 WHERE id = ?", partyID)
	if err != nil {
		return fmt.Errorf("failed to deactivate party: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to deactivate party: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("party %s: %w", partyID, storage.ErrNotFound)
	}
	return nil
}

// DeactivateExpiredParties marks every active party past its expiry inactive.
func (s *SQLiteStore) DeactivateExpiredParties(ctx context.Context, now int64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE parties SET is_active = 0 WHERE is_active = 1 AND expires_at < ?",
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired parties: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired parties: %w", err)
	}
	return n, nil
}

// CancelParty closes the party with the same open predicate MarkCheckedIn
// uses, so exactly one of a racing cancel and check-in wins. Memberships are
// deleted in the same transaction, after the party has been closed.
func (s *SQLiteStore) CancelParty(ctx context.Context, partyID string, now int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE parties SET is_active = 0, cancelled_at = ?
			 WHERE id = ? AND is_active = 1 AND checked_in = 0 AND expires_at >= ?`,
			now, partyID, now,
		)
		if err != nil {
			return fmt.Errorf("failed to cancel party: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to cancel party: %w", err)
		}
		if n == 0 {
			return whyNotOpen(ctx, tx, partyID)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM party_members WHERE party_id = ?", partyID); err != nil {
			return fmt.Errorf("failed to delete party members: %w", err)
		}
		return nil
	})
}

// whyNotOpen classifies a party that failed the open predicate.
func whyNotOpen(ctx context.Context, tx *sql.Tx, partyID string) error {
	var checkedIn bool
	err := tx.QueryRowContext(ctx, "SELECT checked_in FROM parties WHERE id = ?", partyID).Scan(&checkedIn)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("party %s: %w", partyID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check party state: %w", err)
	}
	if checkedIn {
		return fmt.Errorf("party %s: %w", partyID, storage.ErrPartyCheckedIn)
	}
	return fmt.Errorf("party %s: %w", partyID, storage.ErrPartyClosed)
}

// MarkCheckedIn is the check-in gate: the conditional update succeeds for
// exactly one caller.
func (s *SQLiteStore) MarkCheckedIn(ctx context.Context, partyID string, now int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE parties SET checked_in = 1, checked_in_at = ?
		 WHERE id = ? AND is_active = 1 AND checked_in = 0 AND expires_at >= ?`,
		now, partyID, now,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark party checked in: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark party checked in: %w", err)
	}
	return n == 1, nil
}
