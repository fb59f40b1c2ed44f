package partystate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/realtime"
)

// fakeParty is a party whose state the test changes directly.
type fakeParty struct {
	mu      sync.Mutex
	status  models.PartyStatus
	members []string
	err     error
	loads   int
}

func (f *fakeParty) set(status models.PartyStatus, members ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.members = members
}

func (f *fakeParty) load(ctx context.Context, partyID string) (*Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	snap := &Snapshot{
		Party: &models.Party{
			ID:        partyID,
			IsActive:  f.status == models.PartyOpen,
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
		Status: f.status,
	}
	for _, id := range f.members {
		snap.Members = append(snap.Members, &models.Membership{PartyID: partyID, UserID: id})
	}
	return snap, nil
}

func (f *fakeParty) loadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads
}

func next(t *testing.T, o *Observer) *Snapshot {
	t.Helper()
	select {
	case snap := <-o.C():
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a snapshot")
		return nil
	}
}

// waitFor reads snapshots until one has want members.
func waitFor(t *testing.T, o *Observer, want int) *Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-o.C():
			if len(snap.Members) == want {
				return snap
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %d members", want)
			return nil
		}
	}
}

func TestRegistry_SharesOneSubscription(t *testing.T) {
	hub := realtime.NewHub(nil)
	party := &fakeParty{}
	party.set(models.PartyOpen, "alice")
	reg := NewRegistry(hub, party.load, nil)

	s1, release1 := reg.Acquire("p1")
	s2, release2 := reg.Acquire("p1")

	if s1 != s2 {
		t.Fatal("expected watchers of one party to share a store")
	}
	if n := hub.Subscribers("p1"); n != 1 {
		t.Errorf("expected 1 hub subscription, got %d", n)
	}

	release1()
	release1()
	if n := reg.Active(); n != 1 {
		t.Errorf("expected the store to survive the first release, got %d active", n)
	}

	release2()
	if n := reg.Active(); n != 0 {
		t.Errorf("expected no active stores, got %d", n)
	}
	if n := hub.Subscribers("p1"); n != 0 {
		t.Errorf("expected the subscription to be closed, got %d", n)
	}
}

func TestStore_FansOutSnapshots(t *testing.T) {
	hub := realtime.NewHub(nil)
	party := &fakeParty{}
	party.set(models.PartyOpen, "alice")
	reg := NewRegistry(hub, party.load, nil)

	store, release := reg.Acquire("p1")
	defer release()

	a := store.Observe()
	defer a.Close()
	b := store.Observe()
	defer b.Close()

	waitFor(t, a, 1)
	waitFor(t, b, 1)

	party.set(models.PartyOpen, "alice", "bob")
	hub.Publish("p1")

	waitFor(t, a, 2)
	waitFor(t, b, 2)

	if latest := store.Latest(); latest == nil || len(latest.Members) != 2 {
		t.Errorf("expected latest snapshot with 2 members, got %+v", latest)
	}
}

func TestStore_LateObserverGetsLatest(t *testing.T) {
	hub := realtime.NewHub(nil)
	party := &fakeParty{}
	party.set(models.PartyOpen, "alice", "bob", "carol")
	reg := NewRegistry(hub, party.load, nil)

	store, release := reg.Acquire("p1")
	defer release()

	first := store.Observe()
	defer first.Close()
	waitFor(t, first, 3)

	late := store.Observe()
	defer late.Close()
	if snap := next(t, late); len(snap.Members) != 3 {
		t.Errorf("expected the late observer to see 3 members, got %d", len(snap.Members))
	}
}

func TestStore_SlowObserverKeepsNewest(t *testing.T) {
	hub := realtime.NewHub(nil)
	party := &fakeParty{}
	party.set(models.PartyOpen, "alice")
	reg := NewRegistry(hub, party.load, nil)

	store, release := reg.Acquire("p1")
	defer release()
	o := store.Observe()
	defer o.Close()
	waitFor(t, o, 1)

	members := []string{"alice"}
	for _, id := range []string{"bob", "carol", "dave"} {
		members = append(members, id)
		party.set(models.PartyOpen, members...)
		hub.Publish("p1")
	}

	snap := waitFor(t, o, 4)
	if snap.Status != models.PartyOpen {
		t.Errorf("expected open status, got %s", snap.Status)
	}
}

func TestStore_TerminalAndErrors(t *testing.T) {
	hub := realtime.NewHub(nil)
	party := &fakeParty{}
	party.set(models.PartyOpen, "alice")
	reg := NewRegistry(hub, party.load, nil)

	store, release := reg.Acquire("p1")
	defer release()
	o := store.Observe()
	defer o.Close()
	waitFor(t, o, 1)

	party.set(models.PartyCancelled)
	hub.Publish("p1")
	snap := waitFor(t, o, 0)
	if !snap.Terminal() {
		t.Errorf("expected a terminal snapshot, got status %s", snap.Status)
	}

	party.mu.Lock()
	party.err = errors.New("database is locked")
	party.mu.Unlock()
	hub.Publish("p1")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-o.C():
			if snap.Err != nil {
				if !snap.Terminal() {
					t.Error("expected a failed read to be terminal")
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for the failed read")
		}
	}
}

func TestStore_StopsReadingAfterRelease(t *testing.T) {
	hub := realtime.NewHub(nil)
	party := &fakeParty{}
	party.set(models.PartyOpen, "alice")
	reg := NewRegistry(hub, party.load, nil)

	store, release := reg.Acquire("p1")
	o := store.Observe()
	waitFor(t, o, 1)
	o.Close()
	release()

	loads := party.loadCount()
	hub.Publish("p1")
	time.Sleep(50 * time.Millisecond)

	if got := party.loadCount(); got != loads {
		t.Errorf("expected no reads after release, got %d more", got-loads)
	}
}
