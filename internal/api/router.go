package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/api/handler"
	"github.com/mcoot/easylog/internal/api/middleware"
	"github.com/mcoot/easylog/internal/api/response"
	sharedmw "github.com/mcoot/easylog/internal/middleware"
	"github.com/mcoot/easylog/internal/services/auth"
	"github.com/mcoot/easylog/internal/services/journal"
	"github.com/mcoot/easylog/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         zerolog.Logger
	AuthService    *auth.Service
	Guard          *session.Guard
	JournalService *journal.Service
	StorageType    string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter().UseEncodedPath()

	// Create handlers
	loginHandler := handler.NewMockLoginHandler(cfg.AuthService)
	sessionHandler := handler.NewSessionHandler(cfg.Guard)
	entityHandler := handler.NewEntityHandler(cfg.JournalService)
	entryHandler := handler.NewEntryHandler(cfg.JournalService)
	journalHandler := handler.NewJournalHandler(cfg.JournalService)

	// Create middleware
	sessionMiddleware := middleware.RequireSession(cfg.Guard)
	loggingMiddleware := sharedmw.Logging(cfg.Logger.With().Str("surface", "api").Logger())
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// Mock login endpoint: every method, CORS on every response
	login := r.Path("/api/login").Subrouter()
	login.Use(sharedmw.CORS)
	login.Use(middleware.LoginRecovery(cfg.Logger))
	login.Use(loggingMiddleware)
	login.Use(sharedmw.Metrics)
	login.NewRoute().Handler(loginHandler)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(sharedmw.Metrics)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler(cfg.StorageType)).Methods(http.MethodGet)

	// Logging in and out needs no session
	api.HandleFunc("/session", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/session", sessionHandler.Delete).Methods(http.MethodDelete)

	// Journal routes (all require a session)
	protected := api.NewRoute().Subrouter()
	protected.Use(sessionMiddleware)
	protected.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/suggest", journalHandler.Suggest).Methods(http.MethodPost)
	protected.HandleFunc("/{category}/entities", entityHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/{category}/entities", entityHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/{category}/entities/{name}", entityHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/{category}/entities/{name}/entries", entryHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/{category}/entities/{name}/entries", entryHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/{category}/journal/{name}", journalHandler.Get).Methods(http.MethodGet)

	return r
}

func healthHandler(storageType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok", Storage: storageType})
	}
}
