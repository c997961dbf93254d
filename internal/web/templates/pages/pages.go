// Package pages holds the full-page templates and their view models.
package pages

import (
	"net/url"

	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/journal"
	"github.com/mcoot/easylog/internal/web/templates/layout"
)

// SuggestDelay is how long, in milliseconds, the composer waits before
// asking for a hint
const SuggestDelay = 300

// LoginData is the login page model
type LoginData struct {
	layout.PageData
	Email string
	Error string
}

// JournalData is the journal page model
type JournalData struct {
	layout.PageData
	Page *journal.Page
}

func activeClass(active bool) string {
	if active {
		return "active"
	}
	return ""
}

func entitiesPath(category model.Category) string {
	return "/entities/" + string(category)
}

func deletePath(category model.Category, name string) string {
	return entitiesPath(category) + "/" + url.PathEscape(name) + "/delete"
}

func entriesPath(category model.Category, name string) string {
	return "/entries/" + string(category) + "/" + url.PathEscape(name)
}
