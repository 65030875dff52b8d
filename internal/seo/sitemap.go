// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seo builds the site's search-engine artifacts: the sitemap, the
// image sitemap, and the JSON-LD structured data embedded in page templates.
// Generators enumerate the full catalog from the content store on every run;
// there is no incremental update.
package seo

import (
	"context"
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"steelgate/internal/media"
	"steelgate/internal/models"
	"steelgate/internal/slug"
)

// Source is the slice of the content client the generators consume.
type Source interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Subcategories(ctx context.Context) ([]models.Subcategory, error)
	AllMachines(ctx context.Context) ([]models.Machine, error)
	BrandNames(ctx context.Context) ([]string, error)
}

// URLSet is the sitemap protocol root element.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap entry.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Generator builds sitemaps for one site origin.
type Generator struct {
	baseURL  string
	source   Source
	resolver *media.Resolver
}

// NewGenerator creates a sitemap generator. baseURL is the canonical origin
// without a trailing slash.
func NewGenerator(baseURL string, source Source, resolver *media.Resolver) *Generator {
	return &Generator{baseURL: baseURL, source: source, resolver: resolver}
}

// staticEntry describes one hand-maintained page in the sitemap.
type staticEntry struct {
	path       string
	changeFreq string
	priority   string
}

// staticPages carries the priorities the site has always published for its
// fixed routes.
var staticPages = []staticEntry{
	{"", "weekly", "1.0"},
	{"/inventory", "daily", "0.9"},
	{"/brands", "weekly", "0.8"},
	{"/blog", "weekly", "0.5"},
	{"/about", "yearly", "0.3"},
	{"/sell", "yearly", "0.3"},
	{"/contact", "yearly", "0.3"},
}

// Sitemap enumerates static pages plus every category, subcategory, brand,
// and machine page. Entries are sorted by URL so two generations over the
// same content snapshot produce identical output.
func (g *Generator) Sitemap(ctx context.Context) (*URLSet, error) {
	now := time.Now().UTC().Format("2006-01-02")

	var urls []URL
	for _, p := range staticPages {
		urls = append(urls, URL{
			Loc:        g.baseURL + p.path,
			LastMod:    now,
			ChangeFreq: p.changeFreq,
			Priority:   p.priority,
		})
	}

	categories, err := g.source.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("sitemap categories: %w", err)
	}
	for _, c := range categories {
		if c.Slug.Current == "" {
			continue
		}
		urls = append(urls, URL{
			Loc:        g.baseURL + "/inventory/" + c.Slug.Current,
			LastMod:    lastMod(c.UpdatedAt, now),
			ChangeFreq: "daily",
			Priority:   "0.8",
		})
	}

	subcategories, err := g.source.Subcategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("sitemap subcategories: %w", err)
	}
	for _, s := range subcategories {
		if s.Slug.Current == "" || s.CategorySlug == "" {
			continue
		}
		urls = append(urls, URL{
			Loc:        g.baseURL + "/inventory/" + s.CategorySlug + "/" + s.Slug.Current,
			LastMod:    lastMod(s.UpdatedAt, now),
			ChangeFreq: "daily",
			Priority:   "0.8",
		})
	}

	brands, err := g.source.BrandNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("sitemap brands: %w", err)
	}
	for _, b := range brands {
		bs := slug.Generate(b)
		if bs == "" {
			continue
		}
		urls = append(urls, URL{
			Loc:        g.baseURL + "/brands/" + bs,
			LastMod:    now,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	machines, err := g.source.AllMachines(ctx)
	if err != nil {
		return nil, fmt.Errorf("sitemap machines: %w", err)
	}
	for _, m := range machines {
		path := m.DetailPath()
		if path == "" {
			continue
		}
		urls = append(urls, URL{
			Loc:        g.baseURL + path,
			LastMod:    lastMod(m.UpdatedAt, now),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	sort.Slice(urls, func(i, j int) bool { return urls[i].Loc < urls[j].Loc })
	urls = dedupe(urls)

	return &URLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}, nil
}

// SitemapXML renders the sitemap as an XML document with header.
func (g *Generator) SitemapXML(ctx context.Context) ([]byte, error) {
	set, err := g.Sitemap(ctx)
	if err != nil {
		return nil, err
	}
	return marshalXML(set)
}

// lastMod formats an entity timestamp, falling back when the store did not
// record one.
func lastMod(t time.Time, fallback string) string {
	if t.IsZero() {
		return fallback
	}
	return t.UTC().Format("2006-01-02")
}

// dedupe drops consecutive entries with the same Loc (input must be sorted).
// Duplicate slugs in the store would otherwise repeat a URL.
func dedupe(urls []URL) []URL {
	out := urls[:0]
	var prev string
	for _, u := range urls {
		if u.Loc == prev {
			continue
		}
		out = append(out, u)
		prev = u.Loc
	}
	return out
}

// marshalXML renders any sitemap root with the standard XML header.
func marshalXML(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sitemap marshal: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
