package handler

import (
	"net/http"

	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/route"
	"github.com/mcoot/easylog/internal/web/middleware"
)

// HomeHandler handles the root path
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home sends signed-in users to the default client journal, everyone else to
// the login page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r.Context()) == nil {
		redirect(w, r, middleware.LoginPath)
		return
	}
	redirect(w, r, route.Path(model.CategoryClient, model.CategoryClient.DefaultEntity()))
}
