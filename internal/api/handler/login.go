package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/easylog/internal/api/response"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/auth"
)

// Messages returned by the mock login endpoint
const (
	MsgLoginSuccess     = "Login successful (mock)"
	MsgMethodNotAllowed = "Method not allowed"
	MsgCredentials      = "Email and password are required"
	MsgInvalidBody      = "Invalid request body"
	MsgServerError      = "Server error during mock login"
)

// MockLoginHandler serves /api/login. It never touches the session store.
type MockLoginHandler struct {
	authService *auth.Service
}

// NewMockLoginHandler creates a new mock login handler
func NewMockLoginHandler(authService *auth.Service) *MockLoginHandler {
	return &MockLoginHandler{authService: authService}
}

type mockLoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles every method on /api/login
func (h *MockLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		response.Empty(w, http.StatusOK)
		return
	case http.MethodPost:
	default:
		response.JSON(w, http.StatusMethodNotAllowed, response.MessageResponse{Message: MsgMethodNotAllowed})
		return
	}

	var body mockLoginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.JSON(w, http.StatusBadRequest, response.MessageResponse{Message: MsgInvalidBody})
		return
	}

	session, err := h.authService.Authenticate(body.Email, body.Password)
	if errors.Is(err, model.ErrEmptyCredentials) {
		response.JSON(w, http.StatusBadRequest, response.MessageResponse{Message: MsgCredentials})
		return
	}
	if err != nil {
		response.JSON(w, http.StatusInternalServerError, response.MessageResponse{
			Message: MsgServerError,
			Error:   err.Error(),
		})
		return
	}

	response.JSON(w, http.StatusOK, response.MockLoginResponse{
		Message: MsgLoginSuccess,
		Token:   session.Token,
		User:    session.User,
	})
}
