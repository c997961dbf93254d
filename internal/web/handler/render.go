package handler

import (
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/route"
)

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// nameVar returns the decoded {name} segment; routers keep paths encoded so
// names may contain "/"
func nameVar(r *http.Request) string {
	raw := mux.Vars(r)["name"]
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

func categoryVar(r *http.Request) (model.Category, error) {
	return model.ParseCategory(mux.Vars(r)["category"])
}

// currentRoute reads the page a form was submitted from
func currentRoute(r *http.Request) (route.Route, bool) {
	category, err := model.ParseCategory(r.FormValue("current_category"))
	if err != nil {
		return route.Route{}, false
	}
	return route.Route{Category: category, Name: r.FormValue("current_name")}, true
}

// returnPath is the page to go back to after a form action
func returnPath(r *http.Request, fallback model.Category) string {
	current, ok := currentRoute(r)
	if !ok {
		return route.Path(fallback, fallback.DefaultEntity())
	}
	if current.Name == "" {
		return route.Path(current.Category, current.Category.DefaultEntity())
	}
	return current.Path()
}
