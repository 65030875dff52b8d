// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"steelgate/internal/seo"
)

// SEO serves the crawl artifacts. Both sitemaps enumerate the full catalog
// on every request; the page cache in front of these routes gives them the
// same revalidation window as the rendered pages.
type SEO struct {
	generator *seo.Generator
	baseURL   string
}

// NewSEO creates the SEO handler group.
func NewSEO(generator *seo.Generator, baseURL string) *SEO {
	return &SEO{generator: generator, baseURL: baseURL}
}

// Sitemap serves /sitemap.xml.
func (s *SEO) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := s.generator.SitemapXML(r.Context())
	if err != nil {
		slog.Error("sitemap generation failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}

// ImageSitemap serves /sitemap-images.xml.
func (s *SEO) ImageSitemap(w http.ResponseWriter, r *http.Request) {
	body, err := s.generator.ImageSitemapXML(r.Context())
	if err != nil {
		slog.Error("image sitemap generation failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}

// Robots serves /robots.txt pointing crawlers at both sitemaps.
func (s *SEO) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\nSitemap: %s/sitemap-images.xml\n", s.baseURL, s.baseURL)
}
