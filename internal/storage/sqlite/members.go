package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/storage"
)

// AddMember inserts a membership. The capacity trigger and the
// (party_id, user_id) constraint still apply.
func (s *SQLiteStore) AddMember(ctx context.Context, member *models.Membership) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO party_members (id, party_id, user_id, joined_at) VALUES (?, ?, ?, ?)",
		member.ID, member.PartyID, member.UserID, member.JoinedAt,
	)
	switch {
	case err == nil:
		return nil
	case isCapacityViolation(err):
		return fmt.Errorf("failed to insert member: %w", storage.ErrPartyFull)
	case isUniqueViolation(err):
		return fmt.Errorf("failed to insert member: %w", storage.ErrDuplicate)
	default:
		return fmt.Errorf("failed to insert member: %w", err)
	}
}

// JoinParty admits a member with a single conditional insert: the row is
// written only if the party is open at now and below max_members. The
// surrounding IMMEDIATE transaction holds the write lock from the first
// statement, so no other writer can change the count in between.
func (s *SQLiteStore) JoinParty(ctx context.Context, member *models.Membership, now int64) (storage.JoinOutcome, error) {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}

	outcome := storage.JoinClosed
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := membershipExists(ctx, tx, member.PartyID, member.UserID)
		if err != nil {
			return err
		}
		if exists {
			outcome = storage.JoinAlreadyMember
			return nil
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO party_members (id, party_id, user_id, joined_at)
			 SELECT ?, p.id, ?, ?
			 FROM parties p
			 WHERE p.id = ?
			   AND p.is_active = 1
			   AND p.checked_in = 0
			   AND p.expires_at >= ?
			   AND (SELECT COUNT(*) FROM party_members WHERE party_id = p.id) < p.max_members
			 ON CONFLICT (party_id, user_id) DO NOTHING`,
			member.ID, member.UserID, member.JoinedAt, member.PartyID, now,
		)
		if err != nil {
			switch {
			case isCapacityViolation(err):
				outcome = storage.JoinFull
				return nil
			case isUniqueViolation(err):
				outcome = storage.JoinAlreadyMember
				return nil
			}
			return fmt.Errorf("failed to insert member: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
		if n == 1 {
			outcome = storage.JoinAdmitted
			return nil
		}

		// Nothing inserted: tell the caller why.
		open, err := partyOpen(ctx, tx, member.PartyID, now)
		if err != nil {
			return err
		}
		if open {
			outcome = storage.JoinFull
		} else {
			outcome = storage.JoinClosed
		}
		return nil
	})
	if err != nil {
		return storage.JoinClosed, err
	}
	return outcome, nil
}

func membershipExists(ctx context.Context, tx *sql.Tx, partyID, userID string) (bool, error) {
	var exists int
	err := tx.QueryRowContext(ctx,
		"SELECT 1 FROM party_members WHERE party_id = ? AND user_id = ?",
		partyID, userID,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return true, nil
}

func partyOpen(ctx context.Context, tx *sql.Tx, partyID string, now int64) (bool, error) {
	var open int
	err := tx.QueryRowContext(ctx,
		`SELECT 1 FROM parties
		 WHERE id = ? AND is_active = 1 AND checked_in = 0 AND expires_at >= ?`,
		partyID, now,
	).Scan(&open)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check party state: %w", err)
	}
	return true, nil
}

// RemoveMember deletes one membership row while the party is open. The
// delete and the open check are a single statement inside an immediate
// transaction, so it cannot interleave with the check-in gate.
func (s *SQLiteStore) RemoveMember(ctx context.Context, partyID, userID string, now int64) (bool, error) {
	var removed bool
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM party_members
			 WHERE party_id = ? AND user_id = ?
			   AND EXISTS (
			     SELECT 1 FROM parties
			     WHERE id = ? AND is_active = 1 AND checked_in = 0 AND expires_at >= ?
			   )`,
			partyID, userID, partyID, now,
		)
		if err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}
		if n > 0 {
			removed = true
			return nil
		}

		open, err := partyOpen(ctx, tx, partyID, now)
		if err != nil {
			return err
		}
		if !open {
			return fmt.Errorf("party %s: %w", partyID, storage.ErrPartyClosed)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// GetMembership retrieves the membership of userID in a party.
func (s *SQLiteStore) GetMembership(ctx context.Context, partyID, userID string) (*models.Membership, error) {
	member := &models.Membership{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, party_id, user_id, joined_at FROM party_members WHERE party_id = ? AND user_id = ?",
		partyID, userID,
	).Scan(&member.ID, &member.PartyID, &member.UserID, &member.JoinedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("membership of %s in %s: %w", userID, partyID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return member, nil
}

// ListMembers lists a party's memberships in join order.
func (s *SQLiteStore) ListMembers(ctx context.Context, partyID string) ([]*models.Membership, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, party_id, user_id, joined_at FROM party_members
		 WHERE party_id = ? ORDER BY joined_at, rowid`,
		partyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Membership
	for rows.Next() {
		member := &models.Membership{}
		if err := rows.Scan(&member.ID, &member.PartyID, &member.UserID, &member.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

// CountMembers counts a party's memberships.
func (s *SQLiteStore) CountMembers(ctx context.Context, partyID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM party_members WHERE party_id = ?",
		partyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}
