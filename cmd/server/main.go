package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mcoot/easylog/internal/api"
	"github.com/mcoot/easylog/internal/config"
	"github.com/mcoot/easylog/internal/factory"
	"github.com/mcoot/easylog/internal/logger"
	"github.com/mcoot/easylog/internal/web"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		// No configured logger yet
		fallback := logger.New(logger.Options{})
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: os.Stdout})

	// Create application factory
	app, err := factory.FromConfig(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create application")
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()

	// Find static files directory
	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findStaticDir()
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         log,
		AuthService:    app.AuthService,
		Guard:          app.Guard,
		JournalService: app.JournalService,
		StorageType:    app.StorageType,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:         log,
		Guard:          app.Guard,
		JournalService: app.JournalService,
		StaticDir:      staticDir,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(mux, serverConfig, log)

	log.Info().
		Str("addr", server.Addr()).
		Str("storage", app.StorageType).
		Msg("server starting")

	if err := server.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	// Try common locations
	candidates := []string{
		"internal/web/static",
		"./internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	// Default to relative path
	return "internal/web/static"
}
