package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/metrics"
	sharedmw "github.com/mcoot/easylog/internal/middleware"
	"github.com/mcoot/easylog/internal/services/journal"
	"github.com/mcoot/easylog/internal/services/session"
	"github.com/mcoot/easylog/internal/web/handler"
	"github.com/mcoot/easylog/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         zerolog.Logger
	Guard          *session.Guard
	JournalService *journal.Service
	StaticDir      string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter().UseEncodedPath()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.Guard, cfg.Logger)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.Guard)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(sharedmw.Metrics)

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(cfg.Guard, cfg.Logger)
	journalHandler := handler.NewJournalHandler(cfg.JournalService, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Public routes
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/auth/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected routes (require a stored session)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)

	// Journal pages
	protected.HandleFunc("/journal", journalHandler.Index).Methods(http.MethodGet)
	protected.HandleFunc("/journal/customer/{name}", journalHandler.Customer).Methods(http.MethodGet)
	protected.HandleFunc("/journal/{name}", journalHandler.Client).Methods(http.MethodGet)

	// Form actions
	protected.HandleFunc("/entities/{category}", journalHandler.AddEntity).Methods(http.MethodPost)
	protected.HandleFunc("/entities/{category}/{name}/delete", journalHandler.DeleteEntity).Methods(http.MethodPost)
	protected.HandleFunc("/entries/{category}/{name}", journalHandler.AddEntry).Methods(http.MethodPost)

	return r
}
