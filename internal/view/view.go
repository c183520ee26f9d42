// Package view renders the HTML pages of the catalog.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
)

//go:embed templates
var templateFS embed.FS

// Page names the handlers render.
const (
	BooksIndex = "books/index"
	BooksNew   = "books/new"
	BooksEdit  = "books/edit"
	BooksShow  = "books/show"
	Error      = "error"
)

// Data is the context handed to a page template.
type Data map[string]any

// Renderer executes a named page inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"add":        func(a, b int) int { return a + b },
	"sub":        func(a, b int) int { return a - b },
	"seq":        seq,
	"pathEscape": url.PathEscape,
}

// seq returns 1..n.
func seq(n int) []int {
	out := make([]int, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}
	return out
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	return NewFromFS(templateFS)
}

// NewFromFS parses templates/layout.html, templates/partials/*.html and one
// file per page name from fsys.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcs).ParseFS(fsys, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{BooksIndex, BooksNew, BooksEdit, BooksShow, Error} {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(fsys, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes page name with status. The page is rendered to a buffer
// first so a template failure leaves the response untouched.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data Data) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("view: render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
