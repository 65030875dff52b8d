// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the public site: the page
// renderers over the content store, the lead submission endpoints, and the
// SEO artifact routes.
package handlers

import (
	"log/slog"
	"net/http"

	"steelgate/internal/content"
	"steelgate/internal/media"
	"steelgate/internal/render"
)

// Public groups the page renderers. Every handler follows the same shape:
// extract route slugs, query the content store, render the template; a
// missing primary entity renders the shared not-found page with status 404,
// a content store failure renders the error page with status 500.
type Public struct {
	renderer *render.Renderer
	client   *content.Client
	resolver *media.Resolver

	siteName         string
	baseURL          string
	turnstileSiteKey string
}

// NewPublic creates the public handler group.
func NewPublic(renderer *render.Renderer, client *content.Client, resolver *media.Resolver, siteName, baseURL, turnstileSiteKey string) *Public {
	return &Public{
		renderer:         renderer,
		client:           client,
		resolver:         resolver,
		siteName:         siteName,
		baseURL:          baseURL,
		turnstileSiteKey: turnstileSiteKey,
	}
}

// page prefills the chrome fields shared by every render.
func (p *Public) page(title, metaDescription, canonicalPath string) render.Page {
	return render.Page{
		SiteName:         p.siteName,
		Title:            title,
		MetaDescription:  metaDescription,
		Canonical:        p.baseURL + canonicalPath,
		TurnstileSiteKey: p.turnstileSiteKey,
	}
}

// serve renders a template and writes it with the given status.
func (p *Public) serve(w http.ResponseWriter, status int, tmpl string, pg render.Page) {
	body, err := p.renderer.Render(tmpl, pg)
	if err != nil {
		slog.Error("render failed", "template", tmpl, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

// NotFound renders the shared not-found page. It backs both the router's
// fallback and every renderer whose primary entity is absent, so missing
// slugs behave identically everywhere.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	pg := p.page("Page Not Found", "", r.URL.Path)
	p.serve(w, http.StatusNotFound, "notfound", pg)
}

// serveError logs a content store failure and renders the 500 page.
func (p *Public) serveError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("content store query failed", "path", r.URL.Path, "error", err)
	pg := p.page("Something Went Wrong", "", r.URL.Path)
	p.serve(w, http.StatusInternalServerError, "error", pg)
}

// Health returns a simple JSON health check response.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
