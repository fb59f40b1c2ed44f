package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/gymparty/internal/attendance"
	"github.com/mmynk/gymparty/internal/auth"
	"github.com/mmynk/gymparty/internal/blob"
	"github.com/mmynk/gymparty/internal/middleware"
	"github.com/mmynk/gymparty/internal/party"
	"github.com/mmynk/gymparty/internal/partystate"
	"github.com/mmynk/gymparty/internal/realtime"
	"github.com/mmynk/gymparty/internal/storage/sqlite"
	pb "github.com/mmynk/gymparty/pkg/proto"
	"github.com/mmynk/gymparty/pkg/proto/protoconnect"
)

type testEnv struct {
	server     *httptest.Server
	store      *sqlite.SQLiteStore
	hub        *realtime.Hub
	partyRPC   *PartyService
	authClient protoconnect.AuthServiceClient
}

type testUser struct {
	ID         string
	Token      string
	Party      protoconnect.PartyServiceClient
	Attendance protoconnect.AttendanceServiceClient
}

// setupTestServer wires the full service stack over a temp SQLite database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	store, err := sqlite.New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	photos, err := blob.NewLocalStore(filepath.Join(dir, "photos"), "/photos")
	if err != nil {
		t.Fatalf("failed to create photo store: %v", err)
	}
	uploader := blob.NewPhotoUploader(photos, 256)

	logger := slog.Default()
	hub := realtime.NewHub(nil)
	partySvc := party.NewService(store, store,
		party.WithNotifier(hub),
		party.WithPhotoUploader(uploader),
		party.WithLogger(logger),
	)
	attendanceSvc := attendance.NewService(store, attendance.WithPhotoUploader(uploader))
	watch := partystate.NewRegistry(hub, partySvc.LoadSnapshot, logger)

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	protected := connect.WithInterceptors(middleware.RequireAuth(jwtManager), middleware.LoggingInterceptor())

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(
		NewAuthService(authenticator, store, jwtManager, logger),
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager), middleware.LoggingInterceptor()),
	))
	partyRPC := NewPartyService(partySvc, store, watch, logger)
	mux.Handle(protoconnect.NewPartyServiceHandler(partyRPC, protected))
	mux.Handle(protoconnect.NewAttendanceServiceHandler(NewAttendanceService(attendanceSvc, logger), protected))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		server:     server,
		store:      store,
		hub:        hub,
		partyRPC:   partyRPC,
		authClient: protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

// register creates an account and returns clients authenticated as it.
func (e *testEnv) register(t *testing.T, name string) *testUser {
	t.Helper()

	resp, err := e.authClient.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       name + "@example.com",
		Password:    "password123",
		DisplayName: name,
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", name, err)
	}
	return e.userFor(resp.Msg.User.Id, resp.Msg.Token)
}

func (e *testEnv) userFor(id, token string) *testUser {
	bearer := connect.WithInterceptors(middleware.BearerToken(token))
	return &testUser{
		ID:         id,
		Token:      token,
		Party:      protoconnect.NewPartyServiceClient(http.DefaultClient, e.server.URL, bearer),
		Attendance: protoconnect.NewAttendanceServiceClient(http.DefaultClient, e.server.URL, bearer),
	}
}

func testPhoto(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
	for x := 0; x < 320; x++ {
		img.Set(x, x%240, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode photo: %v", err)
	}
	return buf.Bytes()
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s, got success", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected %s, got %s (%v)", want, got, err)
	}
}

func createParty(t *testing.T, u *testUser) *pb.Party {
	t.Helper()

	resp, err := u.Party.CreateParty(context.Background(), connect.NewRequest(&pb.CreatePartyRequest{}))
	if err != nil {
		t.Fatalf("CreateParty failed: %v", err)
	}
	return resp.Msg.Party
}

func joinParty(t *testing.T, u *testUser, code string) *pb.JoinPartyResponse {
	t.Helper()

	resp, err := u.Party.JoinParty(context.Background(), connect.NewRequest(&pb.JoinPartyRequest{Code: code}))
	if err != nil {
		t.Fatalf("JoinParty failed: %v", err)
	}
	return resp.Msg
}
