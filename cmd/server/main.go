package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/gymparty/internal/attendance"
	"github.com/mmynk/gymparty/internal/auth"
	"github.com/mmynk/gymparty/internal/blob"
	"github.com/mmynk/gymparty/internal/config"
	"github.com/mmynk/gymparty/internal/metrics"
	"github.com/mmynk/gymparty/internal/middleware"
	"github.com/mmynk/gymparty/internal/party"
	"github.com/mmynk/gymparty/internal/partystate"
	"github.com/mmynk/gymparty/internal/realtime"
	"github.com/mmynk/gymparty/internal/service"
	"github.com/mmynk/gymparty/internal/storage/sqlite"
	"github.com/mmynk/gymparty/internal/telemetry"
	"github.com/mmynk/gymparty/pkg/logging"
	"github.com/mmynk/gymparty/pkg/proto/protoconnect"
)

const (
	serviceName = "gymparty"
	apiPrefix   = "/gymparty.v1."

	// Room for a base64 photo when clients use the JSON codec.
	maxRequestBytes = blob.MaxPhotoBytes*4/3 + 1<<20
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg.LogLevel)
	if cfg.UsesDevSecret() {
		logger.Warn("JWT_SECRET not set, using the development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, version, cfg.OTelEnabled, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("Failed to flush traces", "error", err)
		}
	}()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.DBPath)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	photos, localPhotos, err := newBlobStore(cfg)
	if err != nil {
		return err
	}
	uploader := blob.NewPhotoUploader(photos, cfg.PhotoMaxDimension)
	logger.Info("Photo storage initialized", "backend", cfg.BlobBackend)

	hub := realtime.NewHub(m)
	partySvc := party.NewService(store, store,
		party.WithNotifier(hub),
		party.WithPhotoUploader(uploader),
		party.WithMetrics(m),
		party.WithLogger(logger),
		party.WithLocation(cfg.Location()),
		party.WithMaxMembers(cfg.PartyMaxMembers),
		party.WithTTL(cfg.PartyTTL),
	)
	attendanceSvc := attendance.NewService(store,
		attendance.WithPhotoUploader(uploader),
		attendance.WithMetrics(m),
		attendance.WithLogger(logger),
		attendance.WithLocation(cfg.Location()),
	)
	watch := partystate.NewRegistry(hub, partySvc.LoadSnapshot, logger)

	jwtManager := auth.NewJWTManager(cfg.Secret(), cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	// Interceptors run outermost first.
	public := []connect.HandlerOption{
		connect.WithInterceptors(
			middleware.MetricsInterceptor(m),
			middleware.TracingInterceptor(),
			middleware.OptionalAuth(jwtManager),
			middleware.LoggingInterceptor(),
		),
	}
	protected := []connect.HandlerOption{
		connect.WithInterceptors(
			middleware.MetricsInterceptor(m),
			middleware.TracingInterceptor(),
			middleware.RequireAuth(jwtManager),
			middleware.LoggingInterceptor(),
		),
		connect.WithReadMaxBytes(maxRequestBytes),
	}

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(protoconnect.NewAuthServiceHandler(service.NewAuthService(authenticator, store, jwtManager, logger), public...))
	partyRPC := service.NewPartyService(partySvc, store, watch, logger)
	mux.Handle(protoconnect.NewPartyServiceHandler(partyRPC, protected...))
	mux.Handle(protoconnect.NewAttendanceServiceHandler(service.NewAttendanceService(attendanceSvc, logger), protected...))

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if localPhotos != nil {
		prefix := strings.TrimSuffix(cfg.BlobPublicBaseURL, "/") + "/"
		if strings.HasPrefix(prefix, "/") {
			mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(localPhotos.Dir()))))
			logger.Info("Serving photos", "path", localPhotos.Dir(), "prefix", prefix)
		}
	}

	if cfg.StaticPath != "" {
		staticDir, err := filepath.Abs(cfg.StaticPath)
		if err != nil {
			return fmt.Errorf("resolve static path: %w", err)
		}
		logger.Info("Serving static files", "path", staticDir)
		mux.Handle("/", staticHandler(staticDir))
	}

	// Add logging and CORS middleware
	handler := loggingMiddleware(corsMiddleware(mux))

	server := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		// Wrap with h2c for HTTP/2 without TLS (required for Connect streaming)
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.RegisterOnShutdown(partyRPC.StopWatches)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down", "open_watches", watch.Active())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newBlobStore returns the configured photo store. The second result is set
// when photos live on local disk and must be served by this process.
func newBlobStore(cfg *config.Config) (blob.Store, *blob.LocalStore, error) {
	switch cfg.BlobBackend {
	case config.BlobBackendSupabase:
		client := &http.Client{Timeout: 30 * time.Second}
		return blob.NewSupabaseStore(cfg.SupabaseProjectURL, cfg.SupabaseServiceRoleKey, cfg.SupabaseBucket, client), nil, nil
	default:
		local, err := blob.NewLocalStore(cfg.BlobDir, cfg.BlobPublicBaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize photo storage: %w", err)
		}
		return local, local, nil
	}
}

// staticHandler serves the web client, falling back to index.html for
// unknown paths.
func staticHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Unknown RPCs should not get the web client.
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, Traceparent")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
