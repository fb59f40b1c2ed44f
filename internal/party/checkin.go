package party

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mmynk/gymparty/internal/storage"
)

// CheckInResult reports what a party check-in recorded.
type CheckInResult struct {
	// SuccessCount is the number of attendance records written.
	SuccessCount int
	// MemberCount is the number of members at check-in time.
	MemberCount int
	// AlreadyRecorded counts members who had checked in on their own today.
	AlreadyRecorded int
	// FailedCount counts members whose record could not be written.
	FailedCount int
	// PhotoURL is the stored photo, empty without a photo.
	PhotoURL string
	// Date is the attendance date that was recorded.
	Date string
}

// CheckIn marks the party checked in and records today's attendance for
// every member, on behalf of the creator.
//
// Once the checked-in flag is set the operation is not rolled back: member
// writes that fail are logged and reported through FailedCount while the
// party stays checked in. A photo that cannot be stored aborts the check-in
// before anything is changed.
func (s *Service) CheckIn(ctx context.Context, partyID, callerID string, photo []byte) (*CheckInResult, error) {
	ctx, span := tracer.Start(ctx, "party.CheckIn")
	defer span.End()
	span.SetAttributes(attribute.String("party.id", partyID))

	party, err := s.loadParty(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.CreatorID != callerID {
		return nil, ErrUnauthorized
	}
	if party.CheckedIn {
		return nil, ErrAlreadyCheckedIn
	}
	if !party.IsActive {
		return nil, ErrExpiredOrInactive
	}
	if s.policy.IsExpired(party) {
		s.expire(ctx, party)
		return nil, ErrExpiredOrInactive
	}

	result := &CheckInResult{}
	if len(photo) > 0 {
		if s.photos == nil {
			return nil, fmt.Errorf("%w: photo storage is not configured", ErrPhotoUpload)
		}
		url, err := s.photos.Upload(ctx, "parties/"+partyID, photo)
		if err != nil {
			s.logger.Error("Check-in photo upload failed", "party_id", partyID, "error", err)
			return nil, fmt.Errorf("%w: %w", ErrPhotoUpload, err)
		}
		result.PhotoURL = url
	}

	now := s.now()
	won, err := s.store.MarkCheckedIn(ctx, partyID, now.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to mark party checked in: %w", err)
	}
	if !won {
		// Another check-in, a cancel or expiry got there first.
		s.discardPhoto(ctx, partyID, result.PhotoURL)
		current, err := s.loadParty(ctx, partyID)
		if err != nil {
			return nil, err
		}
		if current.CheckedIn {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, ErrExpiredOrInactive
	}
	s.notifier.Publish(partyID)

	// From here on the check-in stands; the ledger writes are best effort.
	// Members are read after the gate: no join can pass it any more.
	ctx = context.WithoutCancel(ctx)
	result.Date = s.today(now)

	members, err := s.store.ListMembers(ctx, partyID)
	if err != nil {
		s.logger.Error("Party checked in but members could not be listed",
			"party_id", partyID,
			"error", err,
		)
		span.SetStatus(codes.Error, "list members failed")
		s.metrics.CheckIn(0, 0, 0)
		return result, nil
	}
	result.MemberCount = len(members)

	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.UserID
	}

	batch, err := s.ledger.BatchCheckIn(ctx, storage.BatchCheckIn{
		MemberIDs: memberIDs,
		Date:      result.Date,
		Timestamp: now.Unix(),
		PhotoURL:  result.PhotoURL,
		PartyID:   partyID,
	})
	if err != nil {
		result.FailedCount = len(memberIDs)
		s.logger.Error("Party checked in but attendance batch failed",
			"party_id", partyID,
			"members", len(memberIDs),
			"error", err,
		)
		span.SetStatus(codes.Error, "attendance batch failed")
	} else {
		result.SuccessCount = batch.SuccessCount
		result.AlreadyRecorded = len(batch.AlreadyRecorded)
		result.FailedCount = len(batch.Failed)
		if len(batch.Failed) > 0 {
			failed := make([]string, 0, len(batch.Failed))
			for id, ferr := range batch.Failed {
				failed = append(failed, id)
				s.logger.Debug("Attendance write failed", "party_id", partyID, "user_id", id, "error", ferr)
			}
			s.logger.Warn("Partial ledger failure during party check-in",
				"party_id", partyID,
				"failed_members", failed,
				"success_count", batch.SuccessCount,
			)
		}
	}

	span.SetAttributes(
		attribute.Int("party.members", result.MemberCount),
		attribute.Int("party.success_count", result.SuccessCount),
	)
	s.metrics.CheckIn(result.SuccessCount, result.AlreadyRecorded, result.FailedCount)
	s.logger.Info("Party checked in",
		"party_id", partyID,
		"date", result.Date,
		"members", result.MemberCount,
		"success_count", result.SuccessCount,
		"already_recorded", result.AlreadyRecorded,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *Service) discardPhoto(ctx context.Context, partyID, url string) {
	if url == "" {
		return
	}
	if err := s.photos.Discard(context.WithoutCancel(ctx), url); err != nil {
		s.logger.Warn("Failed to discard unused check-in photo",
			"party_id", partyID,
			"url", url,
			"error", err,
		)
	}
}
