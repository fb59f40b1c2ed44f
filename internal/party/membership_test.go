package party

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestJoinParty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.fullParty(t)

	if n := env.memberCount(t, p.ID); n != 5 {
		t.Fatalf("expected 5 members, got %d", n)
	}

	t.Run("full party rejects a sixth member", func(t *testing.T) {
		_, err := env.svc.JoinParty(ctx, "frank", p.Code)
		if !errors.Is(err, ErrCapacityExceeded) {
			t.Fatalf("expected ErrCapacityExceeded, got %v", err)
		}
		if n := env.memberCount(t, p.ID); n != 5 {
			t.Errorf("expected 5 members, got %d", n)
		}
	})

	t.Run("joining twice is idempotent", func(t *testing.T) {
		res, err := env.svc.JoinParty(ctx, "bob", p.Code)
		if err != nil {
			t.Fatalf("expected repeated join to succeed, got %v", err)
		}
		if !res.AlreadyMember {
			t.Error("expected AlreadyMember")
		}
		if res.Party.ID != p.ID {
			t.Errorf("expected party %s, got %s", p.ID, res.Party.ID)
		}
		if n := env.memberCount(t, p.ID); n != 5 {
			t.Errorf("expected 5 members, got %d", n)
		}
	})

	t.Run("members are listed in join order", func(t *testing.T) {
		members, err := env.svc.ListMembers(ctx, p.ID)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		want := []string{"alice", "bob", "carol", "dave", "erin"}
		if len(members) != len(want) {
			t.Fatalf("expected %d members, got %d", len(want), len(members))
		}
		for i, m := range members {
			if m.UserID != want[i] {
				t.Errorf("member %d: expected %s, got %s", i, want[i], m.UserID)
			}
		}
	})
}

func TestJoinParty_UnknownCode(t *testing.T) {
	env := newTestEnv(t)

	for _, code := range []string{"ZZZZZZ", "bad", ""} {
		if _, err := env.svc.JoinParty(context.Background(), "bob", code); !errors.Is(err, ErrNotFound) {
			t.Errorf("JoinParty(%q): expected ErrNotFound, got %v", code, err)
		}
	}
}

func TestJoinParty_Expired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.svc.CreateParty(ctx, "alice", "")
	if err != nil {
		t.Fatalf("CreateParty failed: %v", err)
	}
	env.clock.Advance(DefaultTTL + time.Minute)

	if _, err := env.svc.JoinParty(ctx, "bob", p.Code); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	stored, err := env.store.GetParty(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetParty failed: %v", err)
	}
	if stored.IsActive {
		t.Error("expected expired party to be deactivated")
	}
	if n := env.memberCount(t, p.ID); n != 1 {
		t.Errorf("expected only the creator, got %d members", n)
	}
}

func TestJoinParty_CheckedIn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.svc.CreateParty(ctx, "alice", "")
	if err != nil {
		t.Fatalf("CreateParty failed: %v", err)
	}
	if _, err := env.svc.CheckIn(ctx, p.ID, "alice", nil); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	if _, err := env.svc.JoinParty(ctx, "bob", p.Code); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJoinParty_Concurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.svc.CreateParty(ctx, "alice", "")
	if err != nil {
		t.Fatalf("CreateParty failed: %v", err)
	}

	const joiners = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
		full     int
		other    []error
	)
	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.svc.JoinParty(ctx, fmt.Sprintf("user-%d", i), p.Code)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				admitted++
			case errors.Is(err, ErrCapacityExceeded):
				full++
			default:
				other = append(other, err)
			}
		}(i)
	}
	wg.Wait()

	if len(other) > 0 {
		t.Fatalf("unexpected errors: %v", other)
	}
	if admitted != DefaultMaxMembers-1 {
		t.Errorf("expected %d admitted, got %d", DefaultMaxMembers-1, admitted)
	}
	if full != joiners-admitted {
		t.Errorf("expected %d rejected, got %d", joiners-admitted, full)
	}
	if n := env.memberCount(t, p.ID); n != DefaultMaxMembers {
		t.Errorf("expected %d members, got %d", DefaultMaxMembers, n)
	}
}

func TestLeaveParty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.fullParty(t)

	t.Run("member leaves", func(t *testing.T) {
		if err := env.svc.LeaveParty(ctx, "bob", p.ID); err != nil {
			t.Fatalf("LeaveParty failed: %v", err)
		}
		if n := env.memberCount(t, p.ID); n != 4 {
			t.Errorf("expected 4 members, got %d", n)
		}
		stored, err := env.svc.GetPartyByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetPartyByID failed: %v", err)
		}
		if !stored.IsActive {
			t.Error("expected party to stay active")
		}
	})

	t.Run("freed seat can be taken", func(t *testing.T) {
		if _, err := env.svc.JoinParty(ctx, "frank", p.Code); err != nil {
			t.Fatalf("JoinParty failed: %v", err)
		}
	})

	t.Run("non-member", func(t *testing.T) {
		if err := env.svc.LeaveParty(ctx, "bob", p.ID); !errors.Is(err, ErrNotMember) {
			t.Errorf("expected ErrNotMember, got %v", err)
		}
	})

	t.Run("creator must cancel", func(t *testing.T) {
		if err := env.svc.LeaveParty(ctx, "alice", p.ID); !errors.Is(err, ErrCreatorMustCancel) {
			t.Errorf("expected ErrCreatorMustCancel, got %v", err)
		}
		if n := env.memberCount(t, p.ID); n != 5 {
			t.Errorf("expected 5 members, got %d", n)
		}
	})

	t.Run("checked-in party cannot be left", func(t *testing.T) {
		if _, err := env.svc.CheckIn(ctx, p.ID, "alice", nil); err != nil {
			t.Fatalf("CheckIn failed: %v", err)
		}
		if err := env.svc.LeaveParty(ctx, "carol", p.ID); !errors.Is(err, ErrExpiredOrInactive) {
			t.Errorf("expected ErrExpiredOrInactive, got %v", err)
		}
	})
}

func TestGetActivePartyForUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	got, err := env.svc.GetActivePartyForUser(ctx, "bob")
	if err != nil {
		t.Fatalf("GetActivePartyForUser failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no party, got %+v", got)
	}

	p := env.fullParty(t)
	got, err = env.svc.GetActivePartyForUser(ctx, "bob")
	if err != nil {
		t.Fatalf("GetActivePartyForUser failed: %v", err)
	}
	if got == nil || got.ID != p.ID {
		t.Fatalf("expected party %s, got %+v", p.ID, got)
	}

	env.clock.Advance(DefaultTTL + time.Minute)
	got, err = env.svc.GetActivePartyForUser(ctx, "bob")
	if err != nil {
		t.Fatalf("GetActivePartyForUser failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected expired party to be skipped, got %+v", got)
	}
}
