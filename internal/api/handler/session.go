package handler

import (
	"net/http"

	"github.com/mcoot/easylog/internal/api/middleware"
	"github.com/mcoot/easylog/internal/api/request"
	"github.com/mcoot/easylog/internal/api/response"
	"github.com/mcoot/easylog/internal/services/session"
)

// SessionHandler handles the stored session
type SessionHandler struct {
	guard *session.Guard
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(guard *session.Guard) *SessionHandler {
	return &SessionHandler{guard: guard}
}

// Create handles POST /api/v1/session
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	sess, err := h.guard.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionResponseFromModel(sess))
}

// Get handles GET /api/v1/session behind RequireSession
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	token, err := h.guard.Token(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionResponse{Token: token, User: *user})
}

// Delete handles DELETE /api/v1/session
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.guard.Logout(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
