// Package attendance records solo gym check-ins in the shared attendance
// ledger and reads a user's attendance history.
package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/gymparty/internal/metrics"
	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/storage"
)

const (
	DefaultHistoryLimit = 30
	MaxHistoryLimit     = 365
)

var (
	// ErrAlreadyCheckedInToday: the user already has a record for today,
	// solo or from a party.
	ErrAlreadyCheckedInToday = errors.New("already checked in today")

	// ErrPhotoUpload: the photo could not be stored; nothing was recorded.
	ErrPhotoUpload = errors.New("failed to upload check-in photo")
)

// PhotoUploader stores a check-in photo and returns its durable reference.
type PhotoUploader interface {
	Upload(ctx context.Context, folder string, data []byte) (string, error)
	// Discard deletes an uploaded photo that no record will reference.
	Discard(ctx context.Context, url string) error
}

// Service records and reads attendance.
type Service struct {
	ledger  storage.AttendanceLedger
	photos  PhotoUploader
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
	loc     *time.Location
}

// Option configures a Service.
type Option func(*Service)

func WithPhotoUploader(p PhotoUploader) Option {
	return func(s *Service) { s.photos = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the time zone that defines "today".
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// NewService creates an attendance Service over ledger.
func NewService(ledger storage.AttendanceLedger, opts ...Option) *Service {
	s := &Service{
		ledger: ledger,
		logger: slog.Default(),
		now:    time.Now,
		loc:    time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckIn records today's solo attendance for userID. A photo is optional.
func (s *Service) CheckIn(ctx context.Context, userID string, photo []byte) (*models.AttendanceRecord, error) {
	now := s.now()
	date := now.In(s.loc).Format(models.DateLayout)

	// Checked before the upload so a repeated tap does not store a photo.
	if _, err := s.ledger.GetAttendance(ctx, userID, date); err == nil {
		return nil, ErrAlreadyCheckedInToday
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to read attendance: %w", err)
	}

	record := &models.AttendanceRecord{
		UserID:      userID,
		Date:        date,
		CheckedInAt: now.Unix(),
		Source:      models.SourceSolo,
	}
	if len(photo) > 0 {
		if s.photos == nil {
			return nil, fmt.Errorf("%w: photo storage is not configured", ErrPhotoUpload)
		}
		url, err := s.photos.Upload(ctx, "solo/"+userID, photo)
		if err != nil {
			s.logger.Error("Solo check-in photo upload failed", "user_id", userID, "error", err)
			return nil, fmt.Errorf("%w: %w", ErrPhotoUpload, err)
		}
		record.PhotoURL = url
	}

	written, err := s.ledger.RecordAttendance(ctx, record)
	if err != nil || !written {
		s.discardPhoto(ctx, userID, record.PhotoURL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}
	if !written {
		// A party check-in landed between the read and the insert.
		return nil, ErrAlreadyCheckedInToday
	}

	s.metrics.SoloCheckIn()
	s.logger.Info("Solo check-in recorded", "user_id", userID, "date", date)
	return record, nil
}

func (s *Service) discardPhoto(ctx context.Context, userID, url string) {
	if url == "" {
		return
	}
	if err := s.photos.Discard(context.WithoutCancel(ctx), url); err != nil {
		s.logger.Warn("Failed to discard unused check-in photo", "user_id", userID, "url", url, "error", err)
	}
}

// Today returns today's record of userID, or nil if there is none.
func (s *Service) Today(ctx context.Context, userID string) (*models.AttendanceRecord, error) {
	date := s.now().In(s.loc).Format(models.DateLayout)
	record, err := s.ledger.GetAttendance(ctx, userID, date)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read attendance: %w", err)
	}
	return record, nil
}

// History returns the most recent records of userID, newest first.
// A limit outside 1..MaxHistoryLimit is clamped.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]*models.AttendanceRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	records, err := s.ledger.ListAttendance(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}
