package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/gymparty/pkg/proto"
)

func TestAttendanceService(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	resp, err := bob.Attendance.GetToday(ctx, connect.NewRequest(&pb.GetTodayRequest{}))
	if err != nil {
		t.Fatalf("GetToday failed: %v", err)
	}
	if resp.Msg.CheckedIn {
		t.Fatal("expected bob not to be checked in yet")
	}

	solo, err := bob.Attendance.SoloCheckIn(ctx, connect.NewRequest(&pb.SoloCheckInRequest{Photo: testPhoto(t)}))
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if solo.Msg.Record.Source != pb.AttendanceSource_ATTENDANCE_SOURCE_SOLO || solo.Msg.Record.PhotoUrl == "" {
		t.Errorf("unexpected solo record %+v", solo.Msg.Record)
	}

	_, err = bob.Attendance.SoloCheckIn(ctx, connect.NewRequest(&pb.SoloCheckInRequest{}))
	expectCode(t, err, connect.CodeAlreadyExists)

	t.Run("party check-in skips the solo record", func(t *testing.T) {
		p := createParty(t, alice)
		joinParty(t, bob, p.Code)

		res, err := alice.Party.CheckIn(ctx, connect.NewRequest(&pb.CheckInRequest{PartyId: p.Id}))
		if err != nil {
			t.Fatalf("CheckIn failed: %v", err)
		}
		if res.Msg.SuccessCount != 1 || res.Msg.AlreadyRecorded != 1 || res.Msg.MemberCount != 2 {
			t.Errorf("expected 1 written and 1 already recorded, got %+v", res.Msg)
		}
	})

	t.Run("history", func(t *testing.T) {
		list, err := bob.Attendance.ListAttendance(ctx, connect.NewRequest(&pb.ListAttendanceRequest{}))
		if err != nil {
			t.Fatalf("ListAttendance failed: %v", err)
		}
		if len(list.Msg.Records) != 1 || list.Msg.Records[0].Source != pb.AttendanceSource_ATTENDANCE_SOURCE_SOLO {
			t.Errorf("expected bob's single solo record, got %+v", list.Msg.Records)
		}

		list, err = alice.Attendance.ListAttendance(ctx, connect.NewRequest(&pb.ListAttendanceRequest{Limit: 5}))
		if err != nil {
			t.Fatalf("ListAttendance failed: %v", err)
		}
		if len(list.Msg.Records) != 1 || list.Msg.Records[0].Source != pb.AttendanceSource_ATTENDANCE_SOURCE_PARTY {
			t.Errorf("expected alice's party record, got %+v", list.Msg.Records)
		}
	})
}
