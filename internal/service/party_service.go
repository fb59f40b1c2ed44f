package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/party"
	"github.com/mmynk/gymparty/internal/partystate"
	pb "github.com/mmynk/gymparty/pkg/proto"
)

// UserDirectory resolves user IDs to accounts for display names.
type UserDirectory interface {
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)
}

// PartyService implements the PartyService RPC interface over the party
// domain service. Every RPC requires an authenticated caller.
type PartyService struct {
	parties *party.Service
	users   UserDirectory
	watch   *partystate.Registry
	logger  *slog.Logger

	stopOnce sync.Once
	stopping chan struct{}
}

// NewPartyService creates the party RPC service.
func NewPartyService(parties *party.Service, users UserDirectory, watch *partystate.Registry, logger *slog.Logger) *PartyService {
	return &PartyService{
		parties:  parties,
		users:    users,
		watch:    watch,
		logger:   logger,
		stopping: make(chan struct{}),
	}
}

// StopWatches ends every open WatchParty stream with CodeUnavailable. It is
// meant for http.Server.RegisterOnShutdown; Shutdown itself leaves active
// streams running.
func (s *PartyService) StopWatches() {
	s.stopOnce.Do(func() { close(s.stopping) })
}

func (s *PartyService) CreateParty(ctx context.Context, req *connect.Request[pb.CreatePartyRequest]) (*connect.Response[pb.CreatePartyResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreateParty request received", "user_id", userID)

	p, err := s.parties.CreateParty(ctx, userID, req.Msg.CustomMessage)
	if err != nil {
		s.logger.Error("Failed to create party", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.CreatePartyResponse{Party: s.toPBParty(p, 1)}), nil
}

func (s *PartyService) JoinParty(ctx context.Context, req *connect.Request[pb.JoinPartyRequest]) (*connect.Response[pb.JoinPartyResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("JoinParty request received", "user_id", userID, "code", req.Msg.Code)

	res, err := s.parties.JoinParty(ctx, userID, req.Msg.Code)
	if err != nil {
		s.logger.Warn("Failed to join party", "user_id", userID, "code", req.Msg.Code, "error", err)
		return nil, toConnectError(err)
	}

	p, err := s.withCount(ctx, res.Party)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.JoinPartyResponse{Party: p, AlreadyMember: res.AlreadyMember}), nil
}

func (s *PartyService) LeaveParty(ctx context.Context, req *connect.Request[pb.LeavePartyRequest]) (*connect.Response[pb.LeavePartyResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("LeaveParty request received", "user_id", userID, "party_id", req.Msg.PartyId)

	if err := s.parties.LeaveParty(ctx, userID, req.Msg.PartyId); err != nil {
		s.logger.Warn("Failed to leave party", "user_id", userID, "party_id", req.Msg.PartyId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.LeavePartyResponse{}), nil
}

func (s *PartyService) CancelParty(ctx context.Context, req *connect.Request[pb.CancelPartyRequest]) (*connect.Response[pb.CancelPartyResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CancelParty request received", "user_id", userID, "party_id", req.Msg.PartyId)

	if err := s.parties.CancelParty(ctx, req.Msg.PartyId, userID); err != nil {
		s.logger.Warn("Failed to cancel party", "user_id", userID, "party_id", req.Msg.PartyId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.CancelPartyResponse{}), nil
}

func (s *PartyService) CheckIn(ctx context.Context, req *connect.Request[pb.CheckInRequest]) (*connect.Response[pb.CheckInResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CheckIn request received",
		"user_id", userID,
		"party_id", req.Msg.PartyId,
		"photo_bytes", len(req.Msg.Photo),
	)

	res, err := s.parties.CheckIn(ctx, req.Msg.PartyId, userID, req.Msg.Photo)
	if err != nil {
		s.logger.Warn("Party check-in rejected", "user_id", userID, "party_id", req.Msg.PartyId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.CheckInResponse{
		SuccessCount:    int32(res.SuccessCount),
		MemberCount:     int32(res.MemberCount),
		AlreadyRecorded: int32(res.AlreadyRecorded),
		FailedCount:     int32(res.FailedCount),
		PhotoUrl:        res.PhotoURL,
		Date:            res.Date,
	}), nil
}

func (s *PartyService) GetParty(ctx context.Context, req *connect.Request[pb.GetPartyRequest]) (*connect.Response[pb.GetPartyResponse], error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	p, err := s.parties.GetParty(ctx, req.Msg.Code)
	if err != nil {
		return nil, toConnectError(err)
	}
	out, err := s.withCount(ctx, p)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetPartyResponse{Party: out}), nil
}

func (s *PartyService) ListMembers(ctx context.Context, req *connect.Request[pb.ListMembersRequest]) (*connect.Response[pb.ListMembersResponse], error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	p, err := s.parties.GetPartyByID(ctx, req.Msg.PartyId)
	if err != nil {
		return nil, toConnectError(err)
	}
	members, err := s.parties.ListMembers(ctx, req.Msg.PartyId)
	if err != nil {
		return nil, toConnectError(err)
	}

	out, err := s.toPBMembers(ctx, p, members)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ListMembersResponse{Members: out}), nil
}

func (s *PartyService) GetActiveParty(ctx context.Context, req *connect.Request[pb.GetActivePartyRequest]) (*connect.Response[pb.GetActivePartyResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.parties.GetActivePartyForUser(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if p == nil {
		return connect.NewResponse(&pb.GetActivePartyResponse{}), nil
	}

	out, err := s.withCount(ctx, p)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetActivePartyResponse{Party: out}), nil
}

// WatchParty streams a snapshot of the party on every change until the
// party reaches a terminal state or the client disconnects. Only members
// may watch; a party cancelled before the stream opens has no members and
// is reported as not found.
func (s *PartyService) WatchParty(ctx context.Context, req *connect.Request[pb.WatchPartyRequest], stream *connect.ServerStream[pb.PartyEvent]) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	partyID := req.Msg.PartyId
	s.logger.Info("WatchParty request received", "user_id", userID, "party_id", partyID)

	members, err := s.parties.ListMembers(ctx, partyID)
	if err != nil {
		return toConnectError(err)
	}
	if !containsUser(members, userID) {
		return toConnectError(party.ErrNotMember)
	}

	store, release := s.watch.Acquire(partyID)
	defer release()
	observer := store.Observe()
	defer observer.Close()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Watcher disconnected", "user_id", userID, "party_id", partyID)
			return nil
		case <-s.stopping:
			return connect.NewError(connect.CodeUnavailable, errors.New("server shutting down"))
		case snap := <-observer.C():
			if snap.Err != nil {
				if errors.Is(snap.Err, party.ErrNotFound) {
					return nil
				}
				return toConnectError(snap.Err)
			}

			event, err := s.toEvent(ctx, snap)
			if err != nil {
				return toConnectError(err)
			}
			if err := stream.Send(event); err != nil {
				return err
			}
			if snap.Terminal() {
				s.logger.Debug("Party reached a terminal state, closing watch",
					"party_id", partyID,
					"status", snap.Status,
				)
				return nil
			}
		}
	}
}

func (s *PartyService) toEvent(ctx context.Context, snap *partystate.Snapshot) (*pb.PartyEvent, error) {
	members, err := s.toPBMembers(ctx, snap.Party, snap.Members)
	if err != nil {
		return nil, err
	}
	p := s.toPBParty(snap.Party, len(snap.Members))
	p.Status = toPBStatus(snap.Status)
	return &pb.PartyEvent{Party: p, Members: members}, nil
}

func (s *PartyService) withCount(ctx context.Context, p *models.Party) (*pb.Party, error) {
	n, err := s.parties.CountMembers(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return s.toPBParty(p, n), nil
}

func (s *PartyService) toPBParty(p *models.Party, memberCount int) *pb.Party {
	return &pb.Party{
		Id:            p.ID,
		Code:          p.Code,
		CreatorId:     p.CreatorID,
		CreatedAt:     p.CreatedAt,
		ExpiresAt:     p.ExpiresAt,
		MaxMembers:    int32(p.MaxMembers),
		IsActive:      p.IsActive,
		CheckedIn:     p.CheckedIn,
		CheckedInAt:   p.CheckedInAt,
		CustomMessage: p.CustomMessage,
		Status:        toPBStatus(s.parties.Status(p)),
		MemberCount:   int32(memberCount),
	}
}

func (s *PartyService) toPBMembers(ctx context.Context, p *models.Party, members []*models.Membership) ([]*pb.Member, error) {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.UserID
	}
	users, err := s.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*pb.Member, len(members))
	for i, m := range members {
		name := ""
		if u, ok := users[m.UserID]; ok {
			name = u.DisplayName
		}
		out[i] = &pb.Member{
			UserId:      m.UserID,
			DisplayName: name,
			JoinedAt:    m.JoinedAt,
			IsCreator:   m.UserID == p.CreatorID,
		}
	}
	return out, nil
}

func toPBStatus(status models.PartyStatus) pb.PartyStatus {
	switch status {
	case models.PartyOpen:
		return pb.PartyStatus_PARTY_STATUS_OPEN
	case models.PartyCheckedIn:
		return pb.PartyStatus_PARTY_STATUS_CHECKED_IN
	case models.PartyCancelled:
		return pb.PartyStatus_PARTY_STATUS_CANCELLED
	case models.PartyExpired:
		return pb.PartyStatus_PARTY_STATUS_EXPIRED
	}
	return pb.PartyStatus_PARTY_STATUS_UNSPECIFIED
}

func containsUser(members []*models.Membership, userID string) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
