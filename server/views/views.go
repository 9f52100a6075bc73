// Package views renders the html pages of the app from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Daskott/dogcare/server/forms"
)

const LAYOUT = "templates/layout.html"

//go:embed templates/*.html
var templateFS embed.FS

var (
	Pages = []string{
		"index",
		"login",
		"signup",
		"caretaker_dashboard",
		"customer_dashboard",
		"update_dog",
		"boarding_form",
		"error",
	}

	funcs = template.FuncMap{
		"join":       strings.Join,
		"formatDate": forms.FormatDate,
	}
)

// Data is the context handed to a page. "Flashes" & "Title" are read by the layout.
type Data map[string]interface{}

type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page along with the shared layout
func New() (*Renderer, error) {
	renderer := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range Pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(
			templateFS, LAYOUT, fmt.Sprintf("templates/%s.html", page))
		if err != nil {
			return nil, fmt.Errorf("views.New: %v", err)
		}
		renderer.pages[page] = tmpl
	}

	return renderer, nil
}

// Render writes 'page' to 'w'. Nothing is written if the page fails to render.
func (renderer *Renderer) Render(w io.Writer, page string, data Data) error {
	tmpl, ok := renderer.pages[page]
	if !ok {
		return fmt.Errorf("views.Render: unknown page %q", page)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "layout", data); err != nil {
		return fmt.Errorf("views.Render: %v", err)
	}

	_, err := buf.WriteTo(w)
	return err
}
