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

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// RecordAttendance inserts a record unless the user already has one for
// the date. It reports whether a row was written.
func (s *SQLiteStore) RecordAttendance(ctx context.Context, record *models.AttendanceRecord) (bool, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO attendance (id, user_id, date, checked_in_at, photo_url, party_id, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, date) DO NOTHING`,
		record.ID, record.UserID, record.Date, record.CheckedInAt,
		nullable(record.PhotoURL), nullable(record.PartyID), string(record.Source),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert attendance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to insert attendance: %w", err)
	}
	return n == 1, nil
}

func scanAttendance(row rowScanner) (*models.AttendanceRecord, error) {
	record := &models.AttendanceRecord{}
	var photoURL, partyID sql.NullString
	var source string
	if err := row.Scan(&record.ID, &record.UserID, &record.Date, &record.CheckedInAt, &photoURL, &partyID, &source); err != nil {
		return nil, err
	}
	record.PhotoURL = photoURL.String
	record.PartyID = partyID.String
	record.Source = models.AttendanceSource(source)
	return record, nil
}

// GetAttendance retrieves the user's record for a date.
func (s *SQLiteStore) GetAttendance(ctx context.Context, userID, date string) (*models.AttendanceRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, date, checked_in_at, photo_url, party_id, source
		 FROM attendance WHERE user_id = ? AND date = ?`,
		userID, date,
	)
	record, err := scanAttendance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("attendance of %s on %s: %w", userID, date, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return record, nil
}

// ListAttendance lists the user's records, newest first.
func (s *SQLiteStore) ListAttendance(ctx context.Context, userID string, limit int) ([]*models.AttendanceRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, date, checked_in_at, photo_url, party_id, source
		 FROM attendance WHERE user_id = ? ORDER BY date DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

// BatchCheckIn writes one party record per member. Each insert is its own
// statement: a failing member does not undo the members written before it.
func (s *SQLiteStore) BatchCheckIn(ctx context.Context, batch storage.BatchCheckIn) (*storage.BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &storage.BatchResult{Failed: make(map[string]error)}
	for _, memberID := range batch.MemberIDs {
		written, err := s.RecordAttendance(ctx, &models.AttendanceRecord{
			UserID:      memberID,
			Date:        batch.Date,
			CheckedInAt: batch.Timestamp,
			PhotoURL:    batch.PhotoURL,
			PartyID:     batch.PartyID,
			Source:      models.SourceParty,
		})
		switch {
		case err != nil:
			result.Failed[memberID] = err
		case written:
			result.SuccessCount++
		default:
			result.AlreadyRecorded = append(result.AlreadyRecorded, memberID)
		}
	}
	return result, nil
}
