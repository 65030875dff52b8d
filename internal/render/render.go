// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render parses the embedded page templates and renders them with
// the shared chrome (header/footer) from the base layout. Every page
// template is paired with base.html at startup, so a broken template fails
// the boot instead of a request.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"steelgate/web"
)

// Page wraps the data handed to every template: site chrome fields plus the
// page-specific Data payload.
type Page struct {
	SiteName         string
	Title            string
	MetaDescription  string
	Canonical        string
	JSONLD           template.HTML // structured data block, may be empty
	TurnstileSiteKey string        // empty when bot mitigation is disabled
	Year             int           // current year, for the footer
	Data             any           // page-specific view model
}

// Renderer holds the parsed template set.
type Renderer struct {
	templates map[string]*template.Template
}

// funcMap provides the small set of helpers templates use.
var funcMap = template.FuncMap{
	// mfgYear formats a year of manufacture, with the store's convention
	// that zero means unrecorded.
	"mfgYear": func(year int) string {
		if year == 0 {
			return "N/A"
		}
		return fmt.Sprintf("%d", year)
	},
	// date formats a timestamp for blog bylines.
	"date": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
}

// New parses all embedded page templates, each paired with the base layout.
func New() (*Renderer, error) {
	entries, err := web.TemplatesFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			web.TemplatesFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}
	return r, nil
}

// Render executes a page template into a byte slice so handlers can cache
// the result before writing it.
func (r *Renderer) Render(name string, page Page) ([]byte, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("render: unknown template %q", name)
	}
	if page.Year == 0 {
		page.Year = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", page); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
