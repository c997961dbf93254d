package handler

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/easylog/internal/model"
)

// categoryVar parses the {category} path variable
func categoryVar(r *http.Request) (model.Category, error) {
	return model.ParseCategory(mux.Vars(r)["category"])
}

// nameVar returns the unescaped {name} path variable. The router matches on
// the encoded path so names may contain "/".
func nameVar(r *http.Request) string {
	raw := mux.Vars(r)["name"]
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}
