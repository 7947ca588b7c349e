// Package web renders the single-page input/display surface.
package web

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/Harshitk-cp/mindshift/internal/domain"
	"github.com/Harshitk-cp/mindshift/internal/surface"
)

//go:embed templates/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// Section is one labelled category of results.
type Section struct {
	Category domain.Category
	Title    string
	Beliefs  []domain.Belief
}

// Page is the data rendered by the index template.
type Page struct {
	View     surface.View
	Sections []Section
	Provider string
}

// NewPage builds the page for a session snapshot. Result sections are only
// present for a settled, successful session.
func NewPage(v surface.View, provider string) Page {
	p := Page{View: v, Provider: provider}
	if v.Result != nil && !v.Loading {
		p.Sections = Sections(v.Result)
	}
	return p
}

// Sections splits a result into display sections in category order.
func Sections(t *domain.TransformedBeliefs) []Section {
	sections := make([]Section, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		sections = append(sections, Section{
			Category: c,
			Title:    c.Title(),
			Beliefs:  t.Beliefs(c),
		})
	}
	return sections
}

// RenderIndex writes the page HTML.
func RenderIndex(w io.Writer, p Page) error {
	return indexTmpl.Execute(w, p)
}
