// Package party implements group "Party" check-in: code-joinable parties,
// capacity-bounded membership, lazy expiry and the creator-triggered
// check-in that records attendance for every member.
//
// Concurrency correctness lives in the store (conditional inserts and
// updates inside write-locked transactions) and never relies on in-process
// locking, so the state machine stays consistent when several server
// processes share one database. Change notifications do not cross process
// boundaries: a watcher only hears about changes made through the process
// it is connected to.
package party

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/mmynk/gymparty/internal/metrics"
	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/storage"
)

const (
	// DefaultMaxMembers is the capacity of a new party, creator included.
	DefaultMaxMembers = 5

	// DefaultTTL is how long a party stays joinable.
	DefaultTTL = 24 * time.Hour

	// MaxMessageLength bounds the creator's custom message, in runes.
	MaxMessageLength = 140
)

var tracer = otel.Tracer("github.com/mmynk/gymparty/internal/party")

// Notifier receives an invalidation for every change to a party or its
// memberships.
type Notifier interface {
	Publish(partyID string)
}

// PhotoUploader stores a check-in photo and returns its durable reference.
type PhotoUploader interface {
	Upload(ctx context.Context, folder string, data []byte) (string, error)
	// Discard deletes an uploaded photo that no record will reference.
	Discard(ctx context.Context, url string) error
}

type nopNotifier struct{}

func (nopNotifier) Publish(string) {}

// Service implements the party registry, membership, expiry and check-in
// operations.
type Service struct {
	store      storage.PartyStore
	ledger     storage.AttendanceLedger
	notifier   Notifier
	photos     PhotoUploader
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
	loc        *time.Location
	newCode    func() (string, error)
	maxMembers int
	ttl        time.Duration
	policy     ExpirationPolicy
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier publishes party changes to n.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithPhotoUploader enables check-in photos.
func WithPhotoUploader(p PhotoUploader) Option {
	return func(s *Service) { s.photos = p }
}

// WithMetrics records domain metrics to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the time zone that defines "today" for attendance.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithCodeGenerator replaces GenerateCode.
func WithCodeGenerator(gen func() (string, error)) Option {
	return func(s *Service) { s.newCode = gen }
}

// WithMaxMembers sets the capacity of new parties.
func WithMaxMembers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxMembers = n
		}
	}
}

// WithTTL sets how long new parties stay joinable.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewService creates a party Service over the given stores.
func NewService(store storage.PartyStore, ledger storage.AttendanceLedger, opts ...Option) *Service {
	s := &Service{
		store:      store,
		ledger:     ledger,
		notifier:   nopNotifier{},
		logger:     slog.Default(),
		now:        time.Now,
		loc:        time.UTC,
		newCode:    GenerateCode,
		maxMembers: DefaultMaxMembers,
		ttl:        DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.policy = ExpirationPolicy{Now: s.now}
	return s
}

// Policy returns the expiration policy bound to the service clock.
func (s *Service) Policy() ExpirationPolicy {
	return s.policy
}

// loadParty reads a party and maps a missing row to ErrNotFound.
func (s *Service) loadParty(ctx context.Context, partyID string) (*models.Party, error) {
	party, err := s.store.GetParty(ctx, partyID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load party: %w", err)
	}
	return party, nil
}

// today is the attendance date of t.
func (s *Service) today(t time.Time) string {
	return t.In(s.loc).Format(models.DateLayout)
}
