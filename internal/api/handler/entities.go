package handler

import (
	"net/http"
	"strconv"

	"github.com/mcoot/easylog/internal/api/request"
	"github.com/mcoot/easylog/internal/api/response"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/journal"
	"github.com/mcoot/easylog/internal/services/registry"
	"github.com/mcoot/easylog/internal/services/route"
)

// EntityHandler handles the category registries
type EntityHandler struct {
	journal *journal.Service
}

// NewEntityHandler creates a new entity handler
func NewEntityHandler(journalService *journal.Service) *EntityHandler {
	return &EntityHandler{journal: journalService}
}

// List handles GET /api/v1/{category}/entities
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	names, err := h.journal.Entities(r.Context(), category)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NewEntitiesResponse(category, names))
}

// Create handles POST /api/v1/{category}/entities
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.CreateEntityRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	names, err := h.journal.AddEntity(r.Context(), category, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.NewEntitiesResponse(category, names))
}

// Delete handles DELETE /api/v1/{category}/entities/{name}?confirm=true.
// current_category and current_name identify the caller's open page.
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	name := nameVar(r)

	query := r.URL.Query()
	confirmed, _ := strconv.ParseBool(query.Get("confirm"))

	var current route.Route
	if c := query.Get("current_category"); c != "" {
		if current.Category, err = model.ParseCategory(c); err != nil {
			writeInvalid(w, "unknown current_category")
			return
		}
		current.Name = query.Get("current_name")
	}

	redirect, err := h.journal.DeleteEntity(r.Context(), category, name, current, registry.Confirmed(confirmed))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DeleteEntityResponse{Removed: name, Redirect: redirect})
}
