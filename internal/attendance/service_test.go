package attendance

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/gymparty/internal/models"
	"github.com/mmynk/gymparty/internal/storage"
	"github.com/mmynk/gymparty/internal/storage/sqlite"
)

type fakeUploader struct {
	url       string
	err       error
	calls     int
	discarded []string
}

func (u *fakeUploader) Upload(ctx context.Context, folder string, data []byte) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return u.url + "/" + folder, nil
}

func (u *fakeUploader) Discard(ctx context.Context, url string) error {
	u.discarded = append(u.discarded, url)
	return nil
}

// staleReadLedger never sees today's record on read, so the insert is what
// detects the duplicate.
type staleReadLedger struct {
	storage.AttendanceLedger
}

func (staleReadLedger) GetAttendance(ctx context.Context, userID, date string) (*models.AttendanceRecord, error) {
	return nil, storage.ErrNotFound
}

func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "attendance.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCheckIn(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 10, 14, 7, 30, 0, 0, time.UTC)
	uploader := &fakeUploader{url: "https://cdn.example.com"}
	svc := NewService(store, WithClock(func() time.Time { return now }), WithPhotoUploader(uploader))
	ctx := context.Background()

	rec, err := svc.CheckIn(ctx, "alice", []byte("photo"))
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if rec.Date != "2026-10-14" || rec.Source != models.SourceSolo {
		t.Errorf("unexpected record %+v", rec)
	}
	if rec.PhotoURL != "https://cdn.example.com/solo/alice" {
		t.Errorf("unexpected photo URL %s", rec.PhotoURL)
	}

	t.Run("second check-in on the same day", func(t *testing.T) {
		_, err := svc.CheckIn(ctx, "alice", []byte("photo"))
		if !errors.Is(err, ErrAlreadyCheckedInToday) {
			t.Fatalf("expected ErrAlreadyCheckedInToday, got %v", err)
		}
		if uploader.calls != 1 {
			t.Errorf("expected no second upload, got %d uploads", uploader.calls)
		}
	})

	t.Run("party record blocks a solo check-in", func(t *testing.T) {
		if _, err := store.RecordAttendance(ctx, &models.AttendanceRecord{
			UserID:      "bob",
			Date:        "2026-10-14",
			CheckedInAt: now.Unix(),
			PartyID:     "p1",
			Source:      models.SourceParty,
		}); err != nil {
			t.Fatalf("RecordAttendance failed: %v", err)
		}
		if _, err := svc.CheckIn(ctx, "bob", nil); !errors.Is(err, ErrAlreadyCheckedInToday) {
			t.Errorf("expected ErrAlreadyCheckedInToday, got %v", err)
		}
	})
}

func TestCheckIn_PhotoFailure(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, WithPhotoUploader(&fakeUploader{err: errors.New("timeout")}))
	ctx := context.Background()

	if _, err := svc.CheckIn(ctx, "alice", []byte("photo")); !errors.Is(err, ErrPhotoUpload) {
		t.Fatalf("expected ErrPhotoUpload, got %v", err)
	}
	today, err := svc.Today(ctx, "alice")
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if today != nil {
		t.Errorf("expected nothing recorded, got %+v", today)
	}
}

func TestTodayAndHistory(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(store, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.CheckIn(ctx, "alice", nil); err != nil {
			t.Fatalf("CheckIn day %d failed: %v", i, err)
		}
		now = now.Add(24 * time.Hour)
	}

	today, err := svc.Today(ctx, "alice")
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if today != nil {
		t.Errorf("expected no record on day 6, got %+v", today)
	}

	history, err := svc.History(ctx, "alice", 3)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	want := []string{"2026-10-05", "2026-10-04", "2026-10-03"}
	if len(history) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(history))
	}
	for i, rec := range history {
		if rec.Date != want[i] {
			t.Errorf("record %d: expected %s, got %s", i, want[i], rec.Date)
		}
	}

	all, err := svc.History(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("expected the default limit to return all 5 records, got %d", len(all))
	}
}

func TestCheckIn_TimeZone(t *testing.T) {
	store := newTestStore(t)
	loc := time.FixedZone("UTC-8", -8*60*60)
	now := time.Date(2026, 10, 14, 3, 0, 0, 0, time.UTC)
	svc := NewService(store, WithClock(func() time.Time { return now }), WithLocation(loc))

	rec, err := svc.CheckIn(context.Background(), "alice", nil)
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if rec.Date != "2026-10-13" {
		t.Errorf("expected the local date 2026-10-13, got %s", rec.Date)
	}
}

func TestCheckIn_DuplicateInsertDiscardsPhoto(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	if _, err := store.RecordAttendance(ctx, &models.AttendanceRecord{
		UserID:      "alice",
		Date:        now.Format(models.DateLayout),
		CheckedInAt: now.Unix(),
		Source:      models.SourceParty,
		PartyID:     "p1",
	}); err != nil {
		t.Fatalf("RecordAttendance failed: %v", err)
	}

	uploader := &fakeUploader{url: "https://cdn.example.com"}
	svc := NewService(staleReadLedger{store}, WithClock(func() time.Time { return now }), WithPhotoUploader(uploader))

	if _, err := svc.CheckIn(ctx, "alice", []byte("photo")); !errors.Is(err, ErrAlreadyCheckedInToday) {
		t.Fatalf("expected ErrAlreadyCheckedInToday, got %v", err)
	}
	if len(uploader.discarded) != 1 || uploader.discarded[0] != "https://cdn.example.com/solo/alice" {
		t.Errorf("expected the photo to be discarded, got %v", uploader.discarded)
	}
}
