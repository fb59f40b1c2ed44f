package party

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/storage"
	"github.com/mmynk/gymparty/internal/storage/sqlite"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recordingNotifier counts invalidations per party.
type recordingNotifier struct {
	mu     sync.Mutex
	counts map[string]int
}

func (n *recordingNotifier) Publish(partyID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.counts == nil {
		n.counts = make(map[string]int)
	}
	n.counts[partyID]++
}

func (n *recordingNotifier) Count(partyID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.counts[partyID]
}

// fakeUploader records uploads and discards and returns a fixed URL or
// error.
type fakeUploader struct {
	mu        sync.Mutex
	url       string
	err       error
	calls     int
	discarded []string
}

func (u *fakeUploader) Upload(ctx context.Context, folder string, data []byte) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

func (u *fakeUploader) Discard(ctx context.Context, url string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.discarded = append(u.discarded, url)
	return nil
}

// failingMemberStore fails every AddMember call.
type failingMemberStore struct {
	storage.PartyStore
}

func (failingMemberStore) AddMember(context.Context, *models.Membership) error {
	return errors.New("disk full")
}

// closedGateStore loses every check-in gate, as if something else closed
// the party after it was read.
type closedGateStore struct {
	storage.PartyStore
}

func (closedGateStore) MarkCheckedIn(context.Context, string, int64) (bool, error) {
	return false, nil
}

// failingLedger fails every batch.
type failingLedger struct {
	storage.AttendanceLedger
}

func (failingLedger) BatchCheckIn(context.Context, storage.BatchCheckIn) (*storage.BatchResult, error) {
	return nil, errors.New("ledger unavailable")
}

// pausingStore holds CancelParty and RemoveMember until release is closed,
// after signalling on reached. Everything else goes straight to the store.
type pausingStore struct {
	storage.PartyStore
	reached chan struct{}
	release chan struct{}
}

func newPausingStore(store storage.PartyStore) *pausingStore {
	return &pausingStore{
		PartyStore: store,
		reached:    make(chan struct{}, 1),
		release:    make(chan struct{}),
	}
}

func (s *pausingStore) pause() {
	s.reached <- struct{}{}
	<-s.release
}

func (s *pausingStore) CancelParty(ctx context.Context, partyID string, now int64) error {
	s.pause()
	return s.PartyStore.CancelParty(ctx, partyID, now)
}

func (s *pausingStore) RemoveMember(ctx context.Context, partyID, userID string, now int64) (bool, error) {
	s.pause()
	return s.PartyStore.RemoveMember(ctx, partyID, userID, now)
}

type testEnv struct {
	svc      *Service
	store    *sqlite.SQLiteStore
	clock    *fakeClock
	notifier *recordingNotifier
}

func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "party.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()

	store := newTestStore(t)
	clock := newFakeClock()
	notifier := &recordingNotifier{}
	base := []Option{WithClock(clock.Now), WithNotifier(notifier)}
	svc := NewService(store, store, append(base, opts...)...)
	return &testEnv{svc: svc, store: store, clock: clock, notifier: notifier}
}

// fullParty creates a party by "alice" and joins bob, carol, dave and erin.
func (e *testEnv) fullParty(t *testing.T) *models.Party {
	t.Helper()

	ctx := context.Background()
	p, err := e.svc.CreateParty(ctx, "alice", "")
	if err != nil {
		t.Fatalf("CreateParty failed: %v", err)
	}
	for _, user := range []string{"bob", "carol", "dave", "erin"} {
		if _, err := e.svc.JoinParty(ctx, user, p.Code); err != nil {
			t.Fatalf("JoinParty(%s) failed: %v", user, err)
		}
	}
	return p
}

func (e *testEnv) memberCount(t *testing.T, partyID string) int {
	t.Helper()

	n, err := e.store.CountMembers(context.Background(), partyID)
	if err != nil {
		t.Fatalf("CountMembers failed: %v", err)
	}
	return n
}

// sequence returns a code generator that yields codes in order and then
// repeats the last one.
func sequence(codes ...string) func() (string, error) {
	var mu sync.Mutex
	i := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		code := codes[i]
		if i < len(codes)-1 {
			i++
		}
		return code, nil
	}
}
