package party

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmynk/gymparty/internal/models"
)

// newPausedEnv builds a service whose cancel and leave writes stop at the
// store until the test releases them. Setup runs on the plain service.
func newPausedEnv(t *testing.T) (*testEnv, *Service, *pausingStore) {
	t.Helper()

	env := newTestEnv(t)
	paused := newPausingStore(env.store)
	svc := NewService(paused, env.store, WithClock(env.clock.Now), WithNotifier(env.notifier))
	return env, svc, paused
}

func waitReached(t *testing.T, s *pausingStore) {
	t.Helper()

	select {
	case <-s.reached:
	case <-time.After(5 * time.Second):
		t.Fatal("write never reached the store")
	}
}

func TestCancelParty_CheckInWinsRace(t *testing.T) {
	env, svc, paused := newPausedEnv(t)
	ctx := context.Background()
	p := env.fullParty(t)

	errCh := make(chan error, 1)
	go func() { errCh <- svc.CancelParty(ctx, p.ID, "alice") }()
	waitReached(t, paused)

	res, err := svc.CheckIn(ctx, p.ID, "alice", nil)
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if res.SuccessCount != 5 {
		t.Errorf("expected 5 records, got %d", res.SuccessCount)
	}

	close(paused.release)
	if err := <-errCh; !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("expected ErrAlreadyCheckedIn, got %v", err)
	}

	stored, err := env.svc.GetPartyByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPartyByID failed: %v", err)
	}
	if !stored.IsActive || !stored.CheckedIn || stored.CancelledAt != 0 {
		t.Errorf("expected a checked-in, uncancelled party, got %+v", stored)
	}
	if env.svc.Status(stored) != models.PartyCheckedIn {
		t.Errorf("expected status checked_in, got %s", env.svc.Status(stored))
	}
	if n := env.memberCount(t, p.ID); n != 5 {
		t.Errorf("expected memberships to survive, got %d", n)
	}
}

func TestLeaveParty_CheckInWinsRace(t *testing.T) {
	env, svc, paused := newPausedEnv(t)
	ctx := context.Background()
	p := env.fullParty(t)

	errCh := make(chan error, 1)
	go func() { errCh <- svc.LeaveParty(ctx, "bob", p.ID) }()
	waitReached(t, paused)

	res, err := svc.CheckIn(ctx, p.ID, "alice", nil)
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if res.MemberCount != 5 || res.SuccessCount != 5 {
		t.Errorf("expected bob counted in the check-in, got %+v", res)
	}

	close(paused.release)
	if err := <-errCh; !errors.Is(err, ErrExpiredOrInactive) {
		t.Fatalf("expected ErrExpiredOrInactive, got %v", err)
	}
	if _, err := env.store.GetMembership(ctx, p.ID, "bob"); err != nil {
		t.Errorf("expected bob to remain a member of the checked-in party, got %v", err)
	}
}
