package middleware

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/middleware"
)

// Logging logs web requests tagged with surface=web
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With().Str("surface", "web").Logger())
}
