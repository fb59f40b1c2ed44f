package party

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/storage"
)

// CreateParty creates an open party with a fresh join code and makes the
// creator its first member. If the creator's membership cannot be written
// the party is deleted again: there is no partially created party.
func (s *Service) CreateParty(ctx context.Context, creatorID, customMessage string) (*models.Party, error) {
	ctx, span := tracer.Start(ctx, "party.CreateParty")
	defer span.End()

	message := strings.TrimSpace(customMessage)
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, ErrInvalidMessage
	}

	now := s.now()

	// Codes of expired parties are only freed once the party is inactive.
	if n, err := s.store.DeactivateExpiredParties(ctx, now.Unix()); err != nil {
		s.logger.Warn("Failed to deactivate expired parties", "error", err)
	} else if n > 0 {
		s.logger.Debug("Deactivated expired parties", "count", n)
	}

	var party *models.Party
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, err
		}

		candidate := &models.Party{
			Code:          code,
			CreatorID:     creatorID,
			CreatedAt:     now.Unix(),
			ExpiresAt:     now.Add(s.ttl).Unix(),
			MaxMembers:    s.maxMembers,
			IsActive:      true,
			CustomMessage: message,
		}
		err = s.store.CreateParty(ctx, candidate)
		if errors.Is(err, storage.ErrCodeTaken) {
			s.logger.Debug("Join code collision, retrying", "code", code, "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create party: %w", err)
		}
		party = candidate
		break
	}
	if party == nil {
		return nil, ErrCodeSpaceExhausted
	}

	creator := &models.Membership{
		PartyID:  party.ID,
		UserID:   creatorID,
		JoinedAt: now.Unix(),
	}
	if err := s.store.AddMember(ctx, creator); err != nil {
		// The compensating delete must run even if ctx was the cause.
		if delErr := s.store.DeleteParty(context.WithoutCancel(ctx), party.ID); delErr != nil {
			s.logger.Error("Failed to delete party after creator membership failed",
				"party_id", party.ID,
				"error", delErr,
			)
		}
		return nil, fmt.Errorf("failed to add creator to party: %w", err)
	}

	span.SetAttributes(attribute.String("party.id", party.ID))
	s.metrics.PartyCreated()
	s.notifier.Publish(party.ID)
	s.logger.Info("Party created", "party_id", party.ID, "code", party.Code, "creator_id", creatorID)
	return party, nil
}

// CancelParty ends an open party on behalf of its creator and removes all
// memberships. The store re-checks that the party is open, so a check-in that
// lands after the reads below wins and the cancel fails.
func (s *Service) CancelParty(ctx context.Context, partyID, callerID string) error {
	party, err := s.loadParty(ctx, partyID)
	if err != nil {
		return err
	}
	if party.CreatorID != callerID {
		return ErrUnauthorized
	}
	if party.CheckedIn {
		return ErrAlreadyCheckedIn
	}
	if !party.IsActive {
		return ErrExpiredOrInactive
	}
	if s.policy.IsExpired(party) {
		s.expire(ctx, party)
		return ErrExpiredOrInactive
	}

	if err := s.store.CancelParty(ctx, partyID, s.now().Unix()); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return ErrNotFound
		case errors.Is(err, storage.ErrPartyCheckedIn):
			return ErrAlreadyCheckedIn
		case errors.Is(err, storage.ErrPartyClosed):
			return ErrExpiredOrInactive
		}
		return fmt.Errorf("failed to cancel party: %w", err)
	}

	s.metrics.PartyCancelled()
	s.notifier.Publish(partyID)
	s.logger.Info("Party cancelled", "party_id", partyID)
	return nil
}

// GetParty looks up the active party holding code. Expired parties are
// reported as ErrNotFound.
func (s *Service) GetParty(ctx context.Context, code string) (*models.Party, error) {
	normalized, ok := NormalizeCode(code)
	if !ok {
		return nil, ErrNotFound
	}

	party, err := s.store.GetActivePartyByCode(ctx, normalized)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get party: %w", err)
	}
	if s.policy.IsExpired(party) {
		s.expire(ctx, party)
		return nil, ErrNotFound
	}
	return party, nil
}

// GetPartyByID reads a party in any state.
func (s *Service) GetPartyByID(ctx context.Context, partyID string) (*models.Party, error) {
	return s.loadParty(ctx, partyID)
}
