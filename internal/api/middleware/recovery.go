package middleware

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/api/apierr"
	"github.com/mcoot/easylog/internal/api/response"
	"github.com/mcoot/easylog/internal/middleware"
)

// Recovery creates panic recovery middleware for the API
// Returns JSON error responses on panic
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

// LoginRecovery reports panics in the mock login endpoint as {message, error}
func LoginRecovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, loginPanicHandler)
}

func loginPanicHandler(w http.ResponseWriter, _ *http.Request, err any) {
	response.JSON(w, http.StatusInternalServerError, response.MessageResponse{
		Message: "Server error during mock login",
		Error:   fmt.Sprint(err),
	})
}
