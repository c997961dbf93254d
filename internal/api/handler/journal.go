package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mcoot/easylog/internal/api/request"
	"github.com/mcoot/easylog/internal/api/response"
	"github.com/mcoot/easylog/internal/services/journal"
)

// JournalHandler serves the composed journal page
type JournalHandler struct {
	journal *journal.Service
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService *journal.Service) *JournalHandler {
	return &JournalHandler{journal: journalService}
}

// Get handles GET /api/v1/{category}/journal/{name}. An unknown entity
// answers with the redirecting resolution and no entries, unless
// ?follow=true asks for the default's page instead.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	build := h.journal.Page
	if follow, _ := strconv.ParseBool(r.URL.Query().Get("follow")); follow {
		build = h.journal.FollowPage
	}

	page, err := build(r.Context(), category, nameVar(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, page)
}

// Suggest handles POST /api/v1/suggest
func (h *JournalHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req request.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalid(w, "invalid request body")
		return
	}

	hint, ok := h.journal.Suggest(req.Text)
	response.JSON(w, http.StatusOK, response.SuggestResponse{Suggestion: hint, Show: ok})
}
