// Package view renders logical view names into HTML.
//
// Templates are embedded under templates/ and addressed by their path
// without extension, so templates/response/hello.html is the view
// "response/hello". The sprig function map is available to every template.
package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/labstack/echo/v4"
)

//go:embed templates
var templates embed.FS

// ErrViewNotFound is returned for a view name with no template.
var ErrViewNotFound = errors.New("view not found")

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

// New parses every embedded template.
func New() (*Renderer, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open view templates: %w", err)
	}
	return NewFromFS(sub)
}

// NewFromFS parses every *.html file of fsys as a view.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	root := template.New("").Funcs(sprig.HtmlFuncMap())

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read view %s: %w", p, err)
		}

		name := strings.TrimSuffix(p, ".html")
		if _, err := root.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse view %s: %w", name, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Renderer{templates: root}, nil
}

// Render executes the view called name with data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	if r.templates.Lookup(name) == nil {
		return fmt.Errorf("%w: %s", ErrViewNotFound, name)
	}
	return r.templates.ExecuteTemplate(w, name, data)
}

// Has reports whether a view called name exists.
func (r *Renderer) Has(name string) bool {
	return r.templates.Lookup(name) != nil
}
