package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/mcoot/easylog/internal/api/response"
	"github.com/mcoot/easylog/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

var (
	titleColor = color.New(color.Bold, color.Underline)
	faintColor = color.New(color.Faint)
	warnColor  = color.New(color.FgYellow)
	okColor    = color.New(color.FgGreen)
)

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.HealthResponse:
		o.printHealth(v)
	case response.SessionResponse:
		o.printSession(v)
	case response.EntitiesResponse:
		o.printEntities(v)
	case response.EntriesResponse:
		o.printEntries(v.Entries)
	case *model.JournalEntry:
		_, _ = okColor.Fprintf(o.w, "Added entry %d\n", v.ID)
	case response.DeleteEntityResponse:
		o.printDeleted(v)
	case response.SuggestResponse:
		o.printSuggestion(v)
	case JournalPage:
		o.printJournal(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printHealth(h response.HealthResponse) {
	tbl := uitable.New()
	tbl.AddRow("Status:", h.Status)
	tbl.AddRow("Storage:", h.Storage)
	_, _ = fmt.Fprintln(o.w, tbl)
}

func (o *Output) printSession(s response.SessionResponse) {
	tbl := uitable.New()
	tbl.AddRow("Name:", s.User.Name)
	tbl.AddRow("Email:", s.User.Email)
	tbl.AddRow("Role:", string(s.User.Role))
	tbl.AddRow("ID:", s.User.ID)
	if s.Token != "" {
		tbl.AddRow("Token:", s.Token)
	}
	_, _ = fmt.Fprintln(o.w, tbl)
}

func (o *Output) printEntities(e response.EntitiesResponse) {
	_, _ = titleColor.Fprintln(o.w, e.Category.Label())
	tbl := uitable.New()
	tbl.Separator = " "
	for _, name := range e.Names {
		marker := ""
		if name == e.Default {
			marker = faintColor.Sprint("(default)")
		}
		tbl.AddRow(name, marker)
	}
	_, _ = fmt.Fprintln(o.w, tbl)
}

func (o *Output) printEntries(entries []model.JournalEntry) {
	if len(entries) == 0 {
		_, _ = faintColor.Fprintln(o.w, " none")
		return
	}
	tbl := uitable.New()
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	tbl.AddRow("DATE", "AUTHOR", "ENTRY")
	for _, e := range entries {
		tbl.AddRow(e.Date, e.Author, e.Content)
	}
	_, _ = fmt.Fprintln(o.w, tbl)
}

func (o *Output) printDeleted(d response.DeleteEntityResponse) {
	_, _ = okColor.Fprintf(o.w, "Deleted %s\n", strconv.Quote(d.Removed))
	if d.Redirect != "" {
		_, _ = fmt.Fprintf(o.w, "Now showing %s\n", d.Redirect)
	}
}

func (o *Output) printSuggestion(s response.SuggestResponse) {
	if !s.Show {
		_, _ = faintColor.Fprintln(o.w, "No suggestion")
		return
	}
	_, _ = fmt.Fprintln(o.w, s.Suggestion)
}

func (o *Output) printJournal(p JournalPage) {
	res := p.Resolution
	switch res.State {
	case "ready":
		if res.RedirectTo != "" {
			_, _ = warnColor.Fprintf(o.w, "%s not found, showing %s\n",
				strconv.Quote(res.Requested), strconv.Quote(res.Entity))
		}
	case "redirecting":
		_, _ = warnColor.Fprintf(o.w, "%s not found, use %s (%s)\n",
			strconv.Quote(res.Requested), strconv.Quote(res.Entity), res.RedirectTo)
		return
	default:
		_, _ = faintColor.Fprintf(o.w, "State: %s\n", res.State)
		return
	}

	for _, sb := range p.Sidebars {
		_, _ = titleColor.Fprintln(o.w, sb.Label)
		for _, item := range sb.Items {
			prefix := "  "
			if item.Active {
				prefix = "> "
			}
			_, _ = fmt.Fprintln(o.w, prefix+item.Name)
		}
	}
	_, _ = fmt.Fprintln(o.w)
	_, _ = titleColor.Fprintf(o.w, "%s (%s)\n", res.Entity, res.Category)
	o.printEntries(p.Entries)
}

// JournalPage mirrors the journal page JSON (matches API)
type JournalPage struct {
	User       model.User           `json:"user"`
	Resolution JournalResolution    `json:"resolution"`
	Sidebars   []JournalSidebar     `json:"sidebars"`
	Entries    []model.JournalEntry `json:"entries"`
}

// JournalResolution is the route outcome of a journal page
type JournalResolution struct {
	State      string         `json:"state"`
	Category   model.Category `json:"category"`
	Requested  string         `json:"requested"`
	Entity     string         `json:"entity"`
	RedirectTo string         `json:"redirectTo"`
}

// JournalSidebar lists one category's entities
type JournalSidebar struct {
	Category model.Category `json:"category"`
	Label    string         `json:"label"`
	Items    []struct {
		Name   string `json:"name"`
		Active bool   `json:"active"`
	} `json:"items"`
}
