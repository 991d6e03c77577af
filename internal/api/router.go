package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/mazedle-go/internal/api/handler"
	"github.com/mcoot/mazedle-go/internal/api/middleware"
	"github.com/mcoot/mazedle-go/internal/api/sse"
	"github.com/mcoot/mazedle-go/internal/services/calendar"
	"github.com/mcoot/mazedle-go/internal/services/comparison"
	"github.com/mcoot/mazedle-go/internal/services/roster"
	"github.com/mcoot/mazedle-go/internal/services/selection"
	"github.com/mcoot/mazedle-go/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	SelectionEngine   *selection.Engine
	ComparisonService *comparison.Service
	Roster            *roster.Roster
	Calendar          *calendar.Service
	Hub               *sse.Hub
	// StreamInterval is the countdown tick period (defaults to one second)
	StreamInterval time.Duration
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = middleware.NotFound()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.ComparisonService)
	characterHandler := handler.NewCharacterHandler(cfg.Roster)
	selectionHandler := handler.NewSelectionHandler(cfg.SelectionEngine)
	countdownHandler := handler.NewCountdownHandler(cfg.Calendar, cfg.Hub, cfg.StreamInterval)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Session routes
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/session/guesses", sessionHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/session/give-up", sessionHandler.GiveUp).Methods(http.MethodPost)
	api.HandleFunc("/session/restart", sessionHandler.Restart).Methods(http.MethodPost)

	// Roster routes
	api.HandleFunc("/characters", characterHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/characters/{id}", characterHandler.Get).Methods(http.MethodGet)

	// Countdown routes
	api.HandleFunc("/countdown", countdownHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/countdown/stream", countdownHandler.Stream).Methods(http.MethodGet)

	// Selection ledger routes
	api.HandleFunc("/selection", selectionHandler.Info).Methods(http.MethodGet)
	api.HandleFunc("/selection/reset", selectionHandler.Reset).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
