// Package partystate shares one realtime subscription and one party
// snapshot between every watcher of the same party.
//
// A Store re-reads the party and its members on each change signal and
// hands the newest snapshot to its observers. Slow observers skip
// intermediate snapshots; they never block the store.
package partystate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/realtime"
)

// Snapshot is the state of a party at one read.
type Snapshot struct {
	Party   *models.Party
	Status  models.PartyStatus
	Members []*models.Membership

	// Err is set when the read failed; the other fields are then empty.
	Err error
}

// Terminal reports whether the party can no longer change.
func (s *Snapshot) Terminal() bool {
	return s.Err != nil || s.Status.Terminal()
}

// LoadFunc reads the current snapshot of a party.
type LoadFunc func(ctx context.Context, partyID string) (*Snapshot, error)

// Subscriber opens change subscriptions. *realtime.Hub implements it.
type Subscriber interface {
	Subscribe(partyID string) *realtime.Subscription
}

// Registry hands out one ref-counted Store per party.
type Registry struct {
	hub    Subscriber
	load   LoadFunc
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry creates a Registry that subscribes through hub and reads
// snapshots with load.
func NewRegistry(hub Subscriber, load LoadFunc, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		hub:    hub,
		load:   load,
		logger: logger,
		now:    time.Now,
		stores: make(map[string]*Store),
	}
}

// Acquire returns the shared Store of partyID, starting it if needed.
// The returned release must be called exactly once; the last release
// stops the store and closes its subscription.
func (r *Registry) Acquire(partyID string) (*Store, func()) {
	r.mu.Lock()
	s, ok := r.stores[partyID]
	if !ok {
		s = r.start(partyID)
		r.stores[partyID] = s
	}
	s.refs++
	r.mu.Unlock()

	var once sync.Once
	return s, func() { once.Do(func() { r.release(s) }) }
}

// Active reports the number of running stores.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

func (r *Registry) release(s *Store) {
	r.mu.Lock()
	s.refs--
	last := s.refs == 0
	if last {
		delete(r.stores, s.partyID)
	}
	r.mu.Unlock()

	if last {
		s.stop()
	}
}

func (r *Registry) start(partyID string) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		partyID:   partyID,
		registry:  r,
		sub:       r.hub.Subscribe(partyID),
		observers: make(map[*Observer]struct{}),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	go s.run(ctx)
	return s
}

// Store holds the latest snapshot of one party.
type Store struct {
	partyID  string
	registry *Registry
	sub      *realtime.Subscription
	refs     int // guarded by registry.mu

	mu        sync.Mutex
	latest    *Snapshot
	observers map[*Observer]struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

// Latest returns the most recent snapshot, or nil before the first read.
func (s *Store) Latest() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Observe registers a new observer. If a snapshot is already known it is
// delivered immediately.
func (s *Store) Observe() *Observer {
	o := &Observer{store: s, ch: make(chan *Snapshot, 1)}

	s.mu.Lock()
	s.observers[o] = struct{}{}
	if s.latest != nil {
		o.offer(s.latest)
	}
	s.mu.Unlock()
	return o
}

func (s *Store) run(ctx context.Context) {
	defer close(s.done)

	// Expiry is evaluated at read time and publishes nothing, so the store
	// re-reads once the deadline has passed.
	expiry := time.NewTimer(time.Hour)
	expiry.Stop()
	defer expiry.Stop()

	refresh := func() {
		snap := s.read(ctx)
		if ctx.Err() != nil {
			return
		}
		s.publish(snap)

		expiry.Stop()
		if snap.Err == nil && snap.Status == models.PartyOpen {
			wait := time.Unix(snap.Party.ExpiresAt+1, 0).Sub(s.registry.now())
			if wait < 0 {
				wait = 0
			}
			expiry.Reset(wait)
		}
	}

	refresh()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.sub.C():
			refresh()
		case <-expiry.C:
			refresh()
		}
	}
}

func (s *Store) read(ctx context.Context) *Snapshot {
	snap, err := s.registry.load(ctx, s.partyID)
	if err != nil {
		if ctx.Err() == nil {
			s.registry.logger.Warn("Failed to read party snapshot", "party_id", s.partyID, "error", err)
		}
		return &Snapshot{Err: err}
	}
	return snap
}

func (s *Store) publish(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = snap
	for o := range s.observers {
		o.offer(snap)
	}
}

func (s *Store) stop() {
	s.cancel()
	s.sub.Close()
	<-s.done
}

// Observer receives the snapshots of one Store.
type Observer struct {
	store *Store
	ch    chan *Snapshot
	once  sync.Once
}

// C delivers snapshots, newest only. It is never closed.
func (o *Observer) C() <-chan *Snapshot {
	return o.ch
}

// offer replaces any undelivered snapshot with snap. Callers hold
// store.mu, so offers to one observer never race.
func (o *Observer) offer(snap *Snapshot) {
	select {
	case <-o.ch:
	default:
	}
	o.ch <- snap
}

// Close detaches the observer. It is safe to call more than once.
func (o *Observer) Close() {
	o.once.Do(func() {
		o.store.mu.Lock()
		delete(o.store.observers, o)
		o.store.mu.Unlock()
	})
}
