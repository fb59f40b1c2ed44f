package party

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/storage"
)

// JoinResult is the outcome of a successful JoinParty.
type JoinResult struct {
	Party *models.Party
	// AlreadyMember is true when the user was in the party before the call;
	// no membership was written.
	AlreadyMember bool
}

// JoinParty admits userID into the open party holding code.
//
// Joining twice is not an error. Admission is decided by the store in one
// atomic step, so concurrent joins cannot push the party past MaxMembers.
func (s *Service) JoinParty(ctx context.Context, userID, code string) (*JoinResult, error) {
	ctx, span := tracer.Start(ctx, "party.JoinParty")
	defer span.End()

	normalized, ok := NormalizeCode(code)
	if !ok {
		s.metrics.Join("not_found")
		return nil, ErrNotFound
	}

	party, err := s.store.GetActivePartyByCode(ctx, normalized)
	if errors.Is(err, storage.ErrNotFound) {
		s.metrics.Join("not_found")
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get party: %w", err)
	}
	span.SetAttributes(attribute.String("party.id", party.ID))

	if party.CheckedIn {
		s.metrics.Join("not_found")
		return nil, ErrNotFound
	}
	if s.policy.IsExpired(party) {
		s.expire(ctx, party)
		s.metrics.Join("expired")
		return nil, ErrNotFound
	}

	now := s.now().Unix()
	outcome, err := s.store.JoinParty(ctx, &models.Membership{
		PartyID:  party.ID,
		UserID:   userID,
		JoinedAt: now,
	}, now)
	if err != nil {
		return nil, fmt.Errorf("failed to join party: %w", err)
	}
	s.metrics.Join(outcome.String())

	switch outcome {
	case storage.JoinAdmitted:
		s.notifier.Publish(party.ID)
		s.logger.Info("Member joined party", "party_id", party.ID, "user_id", userID)
		return &JoinResult{Party: party}, nil
	case storage.JoinAlreadyMember:
		return &JoinResult{Party: party, AlreadyMember: true}, nil
	case storage.JoinFull:
		return nil, ErrCapacityExceeded
	default:
		// Closed between the lookup and the insert.
		return nil, ErrNotFound
	}
}

// LeaveParty removes the caller's own membership from an open party. The
// creator must use CancelParty instead.
func (s *Service) LeaveParty(ctx context.Context, userID, partyID string) error {
	party, err := s.loadParty(ctx, partyID)
	if err != nil {
		return err
	}
	if party.CreatorID == userID {
		return ErrCreatorMustCancel
	}
	if !s.policy.IsOpen(party) {
		if party.IsActive && !party.CheckedIn {
			s.expire(ctx, party)
		}
		return ErrExpiredOrInactive
	}

	removed, err := s.store.RemoveMember(ctx, partyID, userID, s.now().Unix())
	if errors.Is(err, storage.ErrPartyClosed) {
		// Closed by a check-in, cancel or expiry since the read above.
		return ErrExpiredOrInactive
	}
	if err != nil {
		return fmt.Errorf("failed to leave party: %w", err)
	}
	if !removed {
		return ErrNotMember
	}

	s.notifier.Publish(partyID)
	s.logger.Info("Member left party", "party_id", partyID, "user_id", userID)
	return nil
}

// ListMembers lists the party's members in join order.
func (s *Service) ListMembers(ctx context.Context, partyID string) ([]*models.Membership, error) {
	if _, err := s.loadParty(ctx, partyID); err != nil {
		return nil, err
	}
	members, err := s.store.ListMembers(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// GetActivePartyForUser returns the open party the user joined most
// recently, or nil if there is none.
func (s *Service) GetActivePartyForUser(ctx context.Context, userID string) (*models.Party, error) {
	parties, err := s.store.ListActivePartiesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties for user: %w", err)
	}
	for _, party := range parties {
		if s.policy.IsExpired(party) {
			s.expire(ctx, party)
			continue
		}
		return party, nil
	}
	return nil, nil
}

// CountMembers counts the party's current members.
func (s *Service) CountMembers(ctx context.Context, partyID string) (int, error) {
	n, err := s.store.CountMembers(ctx, partyID)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return n, nil
}
