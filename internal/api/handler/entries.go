package handler

import (
	"net/http"

	"github.com/mcoot/easylog/internal/api/request"
	"github.com/mcoot/easylog/internal/api/response"
	"github.com/mcoot/easylog/internal/services/journal"
)

// EntryHandler handles entity entry logs
type EntryHandler struct {
	journal *journal.Service
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(journalService *journal.Service) *EntryHandler {
	return &EntryHandler{journal: journalService}
}

// List handles GET /api/v1/{category}/entities/{name}/entries
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	name := nameVar(r)

	entries, err := h.journal.Entries(r.Context(), category, name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EntriesResponse{Category: category, Entity: name, Entries: entries})
}

// Create handles POST /api/v1/{category}/entities/{name}/entries
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.CreateEntryRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	entry, err := h.journal.AddEntry(r.Context(), category, nameVar(r), req.Content)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, entry)
}
