package response

import (
	"github.com/mcoot/easylog/internal/model"
)

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// SessionResponse is returned by session endpoints
type SessionResponse struct {
	Token string     `json:"token,omitempty"`
	User  model.User `json:"user"`
}

// SessionResponseFromModel converts a model.Session
func SessionResponseFromModel(s *model.Session) SessionResponse {
	return SessionResponse{Token: s.Token, User: s.User}
}

// MockLoginResponse is the body of a successful mock login
type MockLoginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

// MessageResponse carries a bare message, optionally with raw error text
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// EntitiesResponse lists the names of one category
type EntitiesResponse struct {
	Category model.Category `json:"category"`
	Default  string         `json:"default"`
	Names    []string       `json:"names"`
}

// NewEntitiesResponse builds an EntitiesResponse
func NewEntitiesResponse(c model.Category, names []string) EntitiesResponse {
	return EntitiesResponse{Category: c, Default: c.DefaultEntity(), Names: names}
}

// DeleteEntityResponse reports a removal
type DeleteEntityResponse struct {
	Removed  string `json:"removed"`
	Redirect string `json:"redirect,omitempty"`
}

// EntriesResponse lists an entity's entries, newest first
type EntriesResponse struct {
	Category model.Category       `json:"category"`
	Entity   string               `json:"entity"`
	Entries  []model.JournalEntry `json:"entries"`
}

// SuggestResponse carries the composer hint, if any
type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
	Show       bool   `json:"show"`
}
