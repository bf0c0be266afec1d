// Package render produces the server-side HTML of the event board. All
// event-supplied text goes through html/template's contextual escaping, so
// upstream data can never inject markup into the page.
package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"eventBoard/internal/models"
)

// BoardData is everything one board page needs: the filtered card list,
// the full tag index, and the filter state to round-trip into the form
// controls. A non-empty Error replaces the board with the failure text.
type BoardData struct {
	Query       string
	SelectedTag string
	Tags        []string
	Events      []models.Event
	Error       string
}

type Renderer struct {
	board *template.Template
}

var funcMap = template.FuncMap{
	"fmtDate": formatDate,
}

func New() *Renderer {
	return &Renderer{
		board: template.Must(
			template.New("board").Funcs(funcMap).Parse(tmplBase + tmplBoard),
		),
	}
}

// Board writes a full board page. Empty Events renders the single
// full-width placeholder instead of cards.
func (r *Renderer) Board(w io.Writer, data BoardData) error {
	if err := r.board.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render board: %w", err)
	}

	return nil
}

// Error renders the board page with the failure description in place of
// the cards.
func (r *Renderer) Error(w io.Writer, msg string) error {
	return r.Board(w, BoardData{Error: msg})
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// formatDate turns the raw upstream date text into a readable form. Text
// that parses as none of the known layouts comes back unchanged rather
// than as an "Invalid Date" artifact.
func formatDate(raw string) string {
	s := strings.TrimSpace(raw)

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			return t.Format("Mon, Jan 2 2006")
		}

		return t.Format("Mon, Jan 2 2006 15:04")
	}

	return raw
}
