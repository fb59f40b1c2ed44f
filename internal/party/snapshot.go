package party

import (
	"context"
	"fmt"

	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/partystate"
)

// LoadSnapshot reads a party with its members and derived status. It has
// the signature of partystate.LoadFunc.
//
// A party found past its expiry is deactivated on the way, which publishes
// one more change and lets every watcher see the final state.
func (s *Service) LoadSnapshot(ctx context.Context, partyID string) (*partystate.Snapshot, error) {
	party, err := s.loadParty(ctx, partyID)
	if err != nil {
		return nil, err
	}
	status := s.policy.Status(party)
	if status == models.PartyExpired && party.IsActive && !party.CheckedIn {
		s.expire(ctx, party)
	}

	members, err := s.store.ListMembers(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return &partystate.Snapshot{Party: party, Status: status, Members: members}, nil
}
