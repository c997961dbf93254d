package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/journal"
	"github.com/mcoot/easylog/internal/services/registry"
	"github.com/mcoot/easylog/internal/services/route"
	"github.com/mcoot/easylog/internal/web/middleware"
	"github.com/mcoot/easylog/internal/web/templates/layout"
	"github.com/mcoot/easylog/internal/web/templates/pages"
)

// JournalHandler handles journal pages and their form actions
type JournalHandler struct {
	journal *journal.Service
	logger  zerolog.Logger
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalService *journal.Service, logger zerolog.Logger) *JournalHandler {
	return &JournalHandler{
		journal: journalService,
		logger:  logger.With().Str("component", "web-journal").Logger(),
	}
}

// Index redirects /journal to the default client
func (h *JournalHandler) Index(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, defaultJournalPath())
}

// Client renders /journal/{name}
func (h *JournalHandler) Client(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, model.CategoryClient, nameVar(r))
}

// Customer renders /journal/customer/{name}
func (h *JournalHandler) Customer(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, model.CategoryCustomer, nameVar(r))
}

func (h *JournalHandler) view(w http.ResponseWriter, r *http.Request, category model.Category, name string) {
	page, err := h.journal.Page(r.Context(), category, name)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if page.Resolution.State == route.StateRedirecting {
		middleware.SetFlash(w, middleware.FlashWarning,
			fmt.Sprintf("%s %q was not found, showing %s instead", categoryNoun(category), name, page.Resolution.Entity))
		redirect(w, r, page.Resolution.RedirectTo)
		return
	}

	title := category.Label()
	if entity := page.Entity(); entity != "" {
		title = entity
	}
	data := pages.JournalData{
		PageData: layout.PageData{
			Title: title,
			User:  page.User,
			Flash: middleware.GetFlash(r.Context()),
		},
		Page: page,
	}
	render(w, r, http.StatusOK, pages.Journal(data))
}

// AddEntity handles POST /entities/{category}
func (h *JournalHandler) AddEntity(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		redirect(w, r, returnPath(r, category))
		return
	}

	name := r.FormValue("name")
	if _, err := h.journal.AddEntity(r.Context(), category, name); err != nil {
		h.flashError(w, err)
		redirect(w, r, returnPath(r, category))
		return
	}

	redirect(w, r, returnPath(r, category))
}

// DeleteEntity handles POST /entities/{category}/{name}/delete. The browser
// sets confirm=yes after the user accepts the confirmation dialog.
func (h *JournalHandler) DeleteEntity(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		redirect(w, r, returnPath(r, category))
		return
	}

	name := nameVar(r)
	current, _ := currentRoute(r)
	gate := registry.Confirmed(r.FormValue("confirm") == "yes")

	target, err := h.journal.DeleteEntity(r.Context(), category, name, current, gate)
	if err != nil {
		h.flashError(w, err)
		redirect(w, r, returnPath(r, category))
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, fmt.Sprintf("Deleted %s %q", string(category), name))
	if target == "" {
		target = returnPath(r, category)
	}
	redirect(w, r, target)
}

// AddEntry handles POST /entries/{category}/{name}
func (h *JournalHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	name := nameVar(r)
	back := route.Path(category, name)

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		redirect(w, r, back)
		return
	}

	if _, err := h.journal.AddEntry(r.Context(), category, name, r.FormValue("content")); err != nil {
		h.flashError(w, err)
	}
	redirect(w, r, back)
}

func (h *JournalHandler) flashError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrEmptyEntityName):
		middleware.SetFlash(w, middleware.FlashError, "Name must not be empty")
	case errors.Is(err, model.ErrInvalidEntityName):
		middleware.SetFlash(w, middleware.FlashError, "Name contains unreadable characters")
	case errors.Is(err, model.ErrEmptyContent):
		middleware.SetFlash(w, middleware.FlashError, "Entry must not be empty")
	case errors.Is(err, model.ErrDefaultEntityProtected):
		middleware.SetFlash(w, middleware.FlashError, "The default client or customer cannot be deleted")
	case errors.Is(err, model.ErrRemovalCancelled):
		middleware.SetFlash(w, middleware.FlashInfo, "Deletion cancelled")
	case errors.Is(err, model.ErrEntityNotFound):
		middleware.SetFlash(w, middleware.FlashWarning, "That client or customer no longer exists")
	default:
		h.logger.Error().Err(err).Msg("journal action failed")
		middleware.SetFlash(w, middleware.FlashError, "Something went wrong")
	}
}

func (h *JournalHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrNoSession) || errors.Is(err, model.ErrCorruptSession) {
		redirect(w, r, middleware.LoginPath)
		return
	}
	h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("journal page failed")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func categoryNoun(c model.Category) string {
	if c == model.CategoryCustomer {
		return "Customer"
	}
	return "Client"
}
