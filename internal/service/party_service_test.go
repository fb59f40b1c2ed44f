package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	pb "github.com/mmynk/gymparty/pkg/proto"
)

func TestPartyService_CheckInFlow(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	others := []*testUser{
		env.register(t, "bob"),
		env.register(t, "carol"),
		env.register(t, "dave"),
		env.register(t, "erin"),
	}
	frank := env.register(t, "frank")

	p := createParty(t, alice)
	if len(p.Code) != 6 || p.Status != pb.PartyStatus_PARTY_STATUS_OPEN || p.MemberCount != 1 {
		t.Fatalf("unexpected new party %+v", p)
	}

	for _, u := range others {
		joined := joinParty(t, u, strings.ToLower(p.Code))
		if joined.Party.Id != p.Id {
			t.Fatalf("joined party %s, expected %s", joined.Party.Id, p.Id)
		}
	}

	t.Run("sixth member is rejected", func(t *testing.T) {
		_, err := frank.Party.JoinParty(ctx, connect.NewRequest(&pb.JoinPartyRequest{Code: p.Code}))
		expectCode(t, err, connect.CodeResourceExhausted)
	})

	t.Run("rejoin reports the existing membership", func(t *testing.T) {
		joined := joinParty(t, others[0], p.Code)
		if !joined.AlreadyMember || joined.Party.MemberCount != 5 {
			t.Errorf("expected already-member with 5 members, got %+v", joined)
		}
	})

	t.Run("members carry display names", func(t *testing.T) {
		resp, err := others[1].Party.ListMembers(ctx, connect.NewRequest(&pb.ListMembersRequest{PartyId: p.Id}))
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		members := resp.Msg.Members
		if len(members) != 5 {
			t.Fatalf("expected 5 members, got %d", len(members))
		}
		if members[0].DisplayName != "alice" || !members[0].IsCreator {
			t.Errorf("expected alice as creator first, got %+v", members[0])
		}
		if members[1].DisplayName != "bob" || members[1].IsCreator {
			t.Errorf("expected bob second, got %+v", members[1])
		}
	})

	t.Run("only the creator checks in", func(t *testing.T) {
		_, err := others[0].Party.CheckIn(ctx, connect.NewRequest(&pb.CheckInRequest{PartyId: p.Id}))
		expectCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("creator checks in with a photo", func(t *testing.T) {
		resp, err := alice.Party.CheckIn(ctx, connect.NewRequest(&pb.CheckInRequest{
			PartyId: p.Id,
			Photo:   testPhoto(t),
		}))
		if err != nil {
			t.Fatalf("CheckIn failed: %v", err)
		}
		if resp.Msg.SuccessCount != 5 || resp.Msg.MemberCount != 5 {
			t.Errorf("expected 5 of 5 recorded, got %+v", resp.Msg)
		}
		if !strings.HasPrefix(resp.Msg.PhotoUrl, "/photos/parties/"+p.Id+"/") {
			t.Errorf("unexpected photo URL %s", resp.Msg.PhotoUrl)
		}

		today, err := others[2].Attendance.GetToday(ctx, connect.NewRequest(&pb.GetTodayRequest{}))
		if err != nil {
			t.Fatalf("GetToday failed: %v", err)
		}
		if !today.Msg.CheckedIn || today.Msg.Record.Source != pb.AttendanceSource_ATTENDANCE_SOURCE_PARTY || today.Msg.Record.PartyId != p.Id {
			t.Errorf("expected a party record for dave, got %+v", today.Msg)
		}
	})

	t.Run("second check-in", func(t *testing.T) {
		_, err := alice.Party.CheckIn(ctx, connect.NewRequest(&pb.CheckInRequest{PartyId: p.Id}))
		expectCode(t, err, connect.CodeAlreadyExists)

		_, err = others[0].Party.CheckIn(ctx, connect.NewRequest(&pb.CheckInRequest{PartyId: p.Id}))
		expectCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("checked-in party is shown but not joinable", func(t *testing.T) {
		resp, err := frank.Party.GetParty(ctx, connect.NewRequest(&pb.GetPartyRequest{Code: p.Code}))
		if err != nil {
			t.Fatalf("GetParty failed: %v", err)
		}
		if resp.Msg.Party.Status != pb.PartyStatus_PARTY_STATUS_CHECKED_IN || !resp.Msg.Party.CheckedIn {
			t.Errorf("expected checked_in party, got %+v", resp.Msg.Party)
		}

		_, err = frank.Party.JoinParty(ctx, connect.NewRequest(&pb.JoinPartyRequest{Code: p.Code}))
		expectCode(t, err, connect.CodeNotFound)
	})
}

func TestPartyService_Errors(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	carol := env.register(t, "carol")
	p := createParty(t, alice)
	joinParty(t, bob, p.Code)

	tests := []struct {
		name string
		call func() error
		want connect.Code
	}{
		{"unknown code", func() error {
			_, err := bob.Party.JoinParty(ctx, connect.NewRequest(&pb.JoinPartyRequest{Code: "ZZZZZZ"}))
			return err
		}, connect.CodeNotFound},
		{"malformed code", func() error {
			_, err := bob.Party.GetParty(ctx, connect.NewRequest(&pb.GetPartyRequest{Code: "abc"}))
			return err
		}, connect.CodeNotFound},
		{"creator leaves", func() error {
			_, err := alice.Party.LeaveParty(ctx, connect.NewRequest(&pb.LeavePartyRequest{PartyId: p.Id}))
			return err
		}, connect.CodeFailedPrecondition},
		{"non-member leaves", func() error {
			_, err := carol.Party.LeaveParty(ctx, connect.NewRequest(&pb.LeavePartyRequest{PartyId: p.Id}))
			return err
		}, connect.CodeNotFound},
		{"non-creator cancels", func() error {
			_, err := bob.Party.CancelParty(ctx, connect.NewRequest(&pb.CancelPartyRequest{PartyId: p.Id}))
			return err
		}, connect.CodePermissionDenied},
		{"message too long", func() error {
			_, err := carol.Party.CreateParty(ctx, connect.NewRequest(&pb.CreatePartyRequest{
				CustomMessage: strings.Repeat("x", 141),
			}))
			return err
		}, connect.CodeInvalidArgument},
		{"invalid photo", func() error {
			_, err := alice.Party.CheckIn(ctx, connect.NewRequest(&pb.CheckInRequest{
				PartyId: p.Id,
				Photo:   []byte("not an image"),
			}))
			return err
		}, connect.CodeInvalidArgument},
		{"unknown party", func() error {
			_, err := alice.Party.ListMembers(ctx, connect.NewRequest(&pb.ListMembersRequest{PartyId: "missing"}))
			return err
		}, connect.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectCode(t, tt.call(), tt.want)
		})
	}

	t.Run("failed photo leaves the party open", func(t *testing.T) {
		resp, err := bob.Party.GetParty(ctx, connect.NewRequest(&pb.GetPartyRequest{Code: p.Code}))
		if err != nil {
			t.Fatalf("GetParty failed: %v", err)
		}
		if resp.Msg.Party.Status != pb.PartyStatus_PARTY_STATUS_OPEN {
			t.Errorf("expected open party, got %s", resp.Msg.Party.Status)
		}
	})

	t.Run("cancel then leave", func(t *testing.T) {
		if _, err := alice.Party.CancelParty(ctx, connect.NewRequest(&pb.CancelPartyRequest{PartyId: p.Id})); err != nil {
			t.Fatalf("CancelParty failed: %v", err)
		}
		_, err := bob.Party.LeaveParty(ctx, connect.NewRequest(&pb.LeavePartyRequest{PartyId: p.Id}))
		expectCode(t, err, connect.CodeFailedPrecondition)
		_, err = bob.Party.GetParty(ctx, connect.NewRequest(&pb.GetPartyRequest{Code: p.Code}))
		expectCode(t, err, connect.CodeNotFound)
	})
}

func TestPartyService_GetActiveParty(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	resp, err := bob.Party.GetActiveParty(ctx, connect.NewRequest(&pb.GetActivePartyRequest{}))
	if err != nil {
		t.Fatalf("GetActiveParty failed: %v", err)
	}
	if resp.Msg.Party != nil {
		t.Fatalf("expected no active party, got %+v", resp.Msg.Party)
	}

	p := createParty(t, alice)
	joinParty(t, bob, p.Code)

	resp, err = bob.Party.GetActiveParty(ctx, connect.NewRequest(&pb.GetActivePartyRequest{}))
	if err != nil {
		t.Fatalf("GetActiveParty failed: %v", err)
	}
	if resp.Msg.Party == nil || resp.Msg.Party.Id != p.Id || resp.Msg.Party.MemberCount != 2 {
		t.Fatalf("expected party %s with 2 members, got %+v", p.Id, resp.Msg.Party)
	}

	if _, err := bob.Party.LeaveParty(ctx, connect.NewRequest(&pb.LeavePartyRequest{PartyId: p.Id})); err != nil {
		t.Fatalf("LeaveParty failed: %v", err)
	}
	resp, err = bob.Party.GetActiveParty(ctx, connect.NewRequest(&pb.GetActivePartyRequest{}))
	if err != nil {
		t.Fatalf("GetActiveParty failed: %v", err)
	}
	if resp.Msg.Party != nil {
		t.Errorf("expected no active party after leaving, got %+v", resp.Msg.Party)
	}
}

func TestPartyService_WatchParty(t *testing.T) {
	env := setupTestServer(t)

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	p := createParty(t, alice)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := alice.Party.WatchParty(ctx, connect.NewRequest(&pb.WatchPartyRequest{PartyId: p.Id}))
	if err != nil {
		t.Fatalf("WatchParty failed: %v", err)
	}
	defer stream.Close()

	// receiveUntil reads events until match returns true.
	receiveUntil := func(what string, match func(*pb.PartyEvent) bool) *pb.PartyEvent {
		t.Helper()
		for stream.Receive() {
			if ev := stream.Msg(); match(ev) {
				return ev
			}
		}
		t.Fatalf("stream ended before %s: %v", what, stream.Err())
		return nil
	}

	first := receiveUntil("the initial snapshot", func(ev *pb.PartyEvent) bool { return true })
	if first.Party.Id != p.Id || len(first.Members) != 1 || first.Party.Status != pb.PartyStatus_PARTY_STATUS_OPEN {
		t.Fatalf("unexpected initial snapshot %+v", first)
	}

	joinParty(t, bob, p.Code)
	joined := receiveUntil("bob joined", func(ev *pb.PartyEvent) bool { return len(ev.Members) == 2 })
	if joined.Members[1].DisplayName != "bob" || joined.Party.MemberCount != 2 {
		t.Errorf("unexpected snapshot after join %+v", joined)
	}

	if _, err := alice.Party.CancelParty(ctx, connect.NewRequest(&pb.CancelPartyRequest{PartyId: p.Id})); err != nil {
		t.Fatalf("CancelParty failed: %v", err)
	}
	final := receiveUntil("the cancellation", func(ev *pb.PartyEvent) bool { return ev.Party.Status == pb.PartyStatus_PARTY_STATUS_CANCELLED })
	if len(final.Members) != 0 {
		t.Errorf("expected no members after cancel, got %d", len(final.Members))
	}

	if stream.Receive() {
		t.Errorf("expected the stream to end after a terminal state, got %+v", stream.Msg())
	}
	if err := stream.Err(); err != nil {
		t.Errorf("expected a clean end of stream, got %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for env.hub.Subscribers(p.Id) != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected the party subscription to be released, %d open", env.hub.Subscribers(p.Id))
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestPartyService_WatchPartyRequiresMembership(t *testing.T) {
	env := setupTestServer(t)

	alice := env.register(t, "alice")
	mallory := env.register(t, "mallory")
	p := createParty(t, alice)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := mallory.Party.WatchParty(ctx, connect.NewRequest(&pb.WatchPartyRequest{PartyId: p.Id}))
	if err == nil {
		for stream.Receive() {
			t.Fatal("expected no events for a non-member")
		}
		err = stream.Err()
		stream.Close()
	}
	expectCode(t, err, connect.CodeNotFound)
}

func TestPartyService_WatchDisconnectReleasesSubscription(t *testing.T) {
	env := setupTestServer(t)

	alice := env.register(t, "alice")
	p := createParty(t, alice)

	ctx, cancel := context.WithCancel(context.Background())
	stream, err := alice.Party.WatchParty(ctx, connect.NewRequest(&pb.WatchPartyRequest{PartyId: p.Id}))
	if err != nil {
		t.Fatalf("WatchParty failed: %v", err)
	}
	if !stream.Receive() {
		t.Fatalf("expected an initial snapshot: %v", stream.Err())
	}
	if n := env.hub.Subscribers(p.Id); n != 1 {
		t.Errorf("expected 1 subscription while watching, got %d", n)
	}

	cancel()
	stream.Close()

	deadline := time.Now().Add(2 * time.Second)
	for env.hub.Subscribers(p.Id) != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected the subscription to be released after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestPartyService_StopWatchesEndsStreams(t *testing.T) {
	env := setupTestServer(t)

	alice := env.register(t, "alice")
	p := createParty(t, alice)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := alice.Party.WatchParty(ctx, connect.NewRequest(&pb.WatchPartyRequest{PartyId: p.Id}))
	if err != nil {
		t.Fatalf("WatchParty failed: %v", err)
	}
	defer stream.Close()
	if !stream.Receive() {
		t.Fatalf("expected an initial snapshot: %v", stream.Err())
	}

	env.partyRPC.StopWatches()
	env.partyRPC.StopWatches()

	for stream.Receive() {
	}
	expectCode(t, stream.Err(), connect.CodeUnavailable)
}
