package journal

import (
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/route"
)

// SidebarItem is one entity link in a sidebar list
type SidebarItem struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Active    bool   `json:"active"`
	Deletable bool   `json:"deletable"`
}

// Sidebar lists the entities of one category
type Sidebar struct {
	Category model.Category `json:"category"`
	Label    string         `json:"label"`
	Active   bool           `json:"active"`
	Items    []SidebarItem  `json:"items"`
}

// Page is everything a journal page renders
type Page struct {
	User       *model.User          `json:"user"`
	Resolution *route.Resolution    `json:"resolution"`
	Sidebars   []Sidebar            `json:"sidebars"`
	Entries    []model.JournalEntry `json:"entries"`
}

// Category of the page
func (p *Page) Category() model.Category {
	return p.Resolution.Category
}

// Entity returns the shown entity, or "" unless the page is ready
func (p *Page) Entity() string {
	if !p.Resolution.Ready() {
		return ""
	}
	return p.Resolution.Entity
}

// CanCompose reports whether the composer is enabled
func (p *Page) CanCompose() bool {
	return p.Resolution.Ready()
}

func buildSidebar(category model.Category, names []string, active route.Route, ready bool) Sidebar {
	sb := Sidebar{
		Category: category,
		Label:    category.Label(),
		Active:   category == active.Category,
		Items:    make([]SidebarItem, 0, len(names)),
	}
	def := category.DefaultEntity()
	for _, name := range names {
		sb.Items = append(sb.Items, SidebarItem{
			Name:      name,
			Path:      route.Path(category, name),
			Active:    ready && sb.Active && name == active.Name,
			Deletable: name != def,
		})
	}
	return sb
}
