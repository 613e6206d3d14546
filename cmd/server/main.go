package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/vensoc/vensoc/internal/auth"
	"github.com/vensoc/vensoc/internal/config"
	"github.com/vensoc/vensoc/internal/middleware"
	"github.com/vensoc/vensoc/internal/rpc"
	"github.com/vensoc/vensoc/internal/service"
	"github.com/vensoc/vensoc/internal/storage/sqlite"
	"github.com/vensoc/vensoc/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store)

	metrics := middleware.NewRPCMetrics(prometheus.DefaultRegisterer)
	observe := connect.WithInterceptors(metrics.Interceptor(), middleware.LoggingInterceptor())
	// Profile endpoints require a session; event endpoints accept guests and
	// enforce organizer-only operations internally.
	base := []connect.HandlerOption{observe}
	authed := []connect.HandlerOption{observe, connect.WithInterceptors(middleware.RequireAuth(jwtManager))}
	optional := []connect.HandlerOption{observe, connect.WithInterceptors(middleware.OptionalAuth(jwtManager))}

	mux := http.NewServeMux()

	authPath, authHandler := rpc.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, slog.Default()), base...)
	mux.Handle(authPath, authHandler)

	profilePath, profileHandler := rpc.NewProfileServiceHandler(
		service.NewProfileService(store), authed...)
	mux.Handle(profilePath, profileHandler)

	eventPath, eventHandler := rpc.NewEventServiceHandler(
		service.NewEventService(store), optional...)
	mux.Handle(eventPath, eventHandler)

	mux.Handle("/metrics", promhttp.Handler())

	handler := corsMiddleware(mux)

	// h2c allows HTTP/2 without TLS, required for Connect clients that
	// negotiate h2 upfront.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Connect server starting", "address", addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
