package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/gymparty/internal/attendance"
	"github.com/mmynk/gymparty/internal/models"
	pb "github.com/mmynk/gymparty/pkg/proto"
)

// AttendanceService implements the AttendanceService RPC interface.
type AttendanceService struct {
	attendance *attendance.Service
	logger     *slog.Logger
}

// NewAttendanceService creates the solo attendance RPC service.
func NewAttendanceService(svc *attendance.Service, logger *slog.Logger) *AttendanceService {
	return &AttendanceService{attendance: svc, logger: logger}
}

func (s *AttendanceService) SoloCheckIn(ctx context.Context, req *connect.Request[pb.SoloCheckInRequest]) (*connect.Response[pb.SoloCheckInResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Solo CheckIn request received", "user_id", userID, "photo_bytes", len(req.Msg.Photo))

	record, err := s.attendance.CheckIn(ctx, userID, req.Msg.Photo)
	if err != nil {
		s.logger.Warn("Solo check-in rejected", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.SoloCheckInResponse{Record: toPBRecord(record)}), nil
}

func (s *AttendanceService) GetToday(ctx context.Context, req *connect.Request[pb.GetTodayRequest]) (*connect.Response[pb.GetTodayResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	record, err := s.attendance.Today(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if record == nil {
		return connect.NewResponse(&pb.GetTodayResponse{}), nil
	}
	return connect.NewResponse(&pb.GetTodayResponse{CheckedIn: true, Record: toPBRecord(record)}), nil
}

func (s *AttendanceService) ListAttendance(ctx context.Context, req *connect.Request[pb.ListAttendanceRequest]) (*connect.Response[pb.ListAttendanceResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendance.History(ctx, userID, int(req.Msg.Limit))
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.AttendanceRecord, len(records))
	for i, r := range records {
		out[i] = toPBRecord(r)
	}
	return connect.NewResponse(&pb.ListAttendanceResponse{Records: out}), nil
}

func toPBRecord(r *models.AttendanceRecord) *pb.AttendanceRecord {
	return &pb.AttendanceRecord{
		Id:          r.ID,
		Date:        r.Date,
		CheckedInAt: r.CheckedInAt,
		PhotoUrl:    r.PhotoURL,
		PartyId:     r.PartyID,
		Source:      toPBSource(r.Source),
	}
}

func toPBSource(source models.AttendanceSource) pb.AttendanceSource {
	switch source {
	case models.SourceSolo:
		return pb.AttendanceSource_ATTENDANCE_SOURCE_SOLO
	case models.SourceParty:
		return pb.AttendanceSource_ATTENDANCE_SOURCE_PARTY
	}
	return pb.AttendanceSource_ATTENDANCE_SOURCE_UNSPECIFIED
}
