package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/route"
	"github.com/mcoot/easylog/internal/services/session"
	"github.com/mcoot/easylog/internal/web/middleware"
	"github.com/mcoot/easylog/internal/web/templates/layout"
	"github.com/mcoot/easylog/internal/web/templates/pages"
)

// AuthHandler handles the login page and actions
type AuthHandler struct {
	guard  *session.Guard
	logger zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(guard *session.Guard, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		guard:  guard,
		logger: logger.With().Str("component", "web-auth").Logger(),
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r.Context()) != nil {
		// Already logged in
		redirect(w, r, defaultJournalPath())
		return
	}

	data := pages.LoginData{
		PageData: layout.PageData{
			Title: "Sign in",
			Flash: middleware.GetFlash(r.Context()),
		},
	}
	render(w, r, http.StatusOK, pages.Login(data))
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, http.StatusBadRequest, "Invalid form data", "")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	sess, err := h.guard.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, model.ErrEmptyCredentials) {
			h.renderLoginError(w, r, http.StatusBadRequest, "Email and password are required", email)
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		h.renderLoginError(w, r, http.StatusInternalServerError, "Server error during login", email)
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Welcome, "+sess.User.Name+"!")
	redirect(w, r, defaultJournalPath())
}

// Logout clears the stored session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.guard.Logout(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("logout failed")
		middleware.SetFlash(w, middleware.FlashError, "Could not sign out")
		redirect(w, r, defaultJournalPath())
		return
	}

	middleware.SetFlash(w, middleware.FlashInfo, "You have been signed out")
	redirect(w, r, middleware.LoginPath)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, status int, errorMsg, email string) {
	data := pages.LoginData{
		PageData: layout.PageData{Title: "Sign in"},
		Email:    email,
		Error:    errorMsg,
	}
	render(w, r, status, pages.Login(data))
}

func defaultJournalPath() string {
	return route.Path(model.CategoryClient, model.CategoryClient.DefaultEntity())
}
