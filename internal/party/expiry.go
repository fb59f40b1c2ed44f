package party

import (
	"context"
	"time"

	"github.com/mmynk/gymparty/internal/models"
)

// ExpirationPolicy decides expiry at read time. There is no background
// sweep: callers consult the policy on the freshest read they have.
type ExpirationPolicy struct {
	Now func() time.Time
}

// IsExpired reports whether now is past the party's expiry.
func (p ExpirationPolicy) IsExpired(party *models.Party) bool {
	return p.Now().Unix() > party.ExpiresAt
}

// IsOpen reports whether the party still accepts joins and check-in.
func (p ExpirationPolicy) IsOpen(party *models.Party) bool {
	return party.IsActive && !party.CheckedIn && !p.IsExpired(party)
}

// Status derives the lifecycle state of a party.
func (p ExpirationPolicy) Status(party *models.Party) models.PartyStatus {
	switch {
	case party.CheckedIn:
		return models.PartyCheckedIn
	case party.CancelledAt != 0:
		return models.PartyCancelled
	case !party.IsActive || p.IsExpired(party):
		return models.PartyExpired
	default:
		return models.PartyOpen
	}
}

// Status derives the lifecycle state of a party with the service clock.
func (s *Service) Status(party *models.Party) models.PartyStatus {
	return s.policy.Status(party)
}

// expire persists is_active = false for a party found expired. Failures are
// logged only; the caller already treats the party as expired.
func (s *Service) expire(ctx context.Context, party *models.Party) {
	if !party.IsActive {
		return
	}
	if err := s.store.DeactivateParty(ctx, party.ID); err != nil {
		s.logger.Warn("Failed to persist party expiry", "party_id", party.ID, "error", err)
		return
	}
	party.IsActive = false
	s.logger.Info("Party expired", "party_id", party.ID, "code", party.Code)
	s.notifier.Publish(party.ID)
}
