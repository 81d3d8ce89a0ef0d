// Package webui provides the embedded page templates and static files.
package webui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/samcharles93/tokplot/internal/analysis"
)

//go:embed static/*
var staticFS embed.FS

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	PageHome   = "home.html"
	PageResult = "result.html"
	PageError  = "error.html"
)

// HomeData feeds the home page.
type HomeData struct {
	Sentences []string
}

// ResultData feeds the result page.
type ResultData struct {
	Sentence string
	Tokens   []string
	Points   []analysis.Point
	Summary  analysis.Summary
}

// ErrorData feeds the error page.
type ErrorData struct {
	Title   string
	Message string
}

// StaticFS returns the embedded static files rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The embed path is fixed at compile time.
		panic(err)
	}
	return sub
}

// Renderer executes the embedded page templates. All interpolated values go
// through html/template's contextual escaping.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustRenderer is NewRenderer for package-level initialisation and tests.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes page into w. The page is rendered into a buffer first so a
// template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderString is Render into a string.
func (r *Renderer) RenderString(page string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, page, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
