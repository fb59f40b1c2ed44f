package party

import (
	"testing"
	"time"

	"github.com/mmynk/gymparty/internal/models"
)

func TestExpirationPolicy(t *testing.T) {
	clock := newFakeClock()
	policy := ExpirationPolicy{Now: clock.Now}
	now := clock.Now().Unix()

	tests := []struct {
		name    string
		party   models.Party
		expired bool
		status  models.PartyStatus
	}{
		{"open", models.Party{IsActive: true, ExpiresAt: now + 60}, false, models.PartyOpen},
		{"expires exactly now", models.Party{IsActive: true, ExpiresAt: now}, false, models.PartyOpen},
		{"past expiry", models.Party{IsActive: true, ExpiresAt: now - 1}, true, models.PartyExpired},
		{"deactivated", models.Party{IsActive: false, ExpiresAt: now + 60}, false, models.PartyExpired},
		{"cancelled", models.Party{IsActive: false, CancelledAt: now, ExpiresAt: now + 60}, false, models.PartyCancelled},
		{"checked in", models.Party{IsActive: true, CheckedIn: true, ExpiresAt: now - 1}, true, models.PartyCheckedIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.IsExpired(&tt.party); got != tt.expired {
				t.Errorf("IsExpired: got %v, want %v", got, tt.expired)
			}
			if got := policy.Status(&tt.party); got != tt.status {
				t.Errorf("Status: got %s, want %s", got, tt.status)
			}
			if got := policy.IsOpen(&tt.party); got != (tt.status == models.PartyOpen) {
				t.Errorf("IsOpen: got %v", got)
			}
		})
	}

	clock.Advance(2 * time.Minute)
	open := models.Party{IsActive: true, ExpiresAt: now + 60}
	if !policy.IsExpired(&open) {
		t.Error("expected policy to follow the clock")
	}
}
