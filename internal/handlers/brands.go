// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"steelgate/internal/catalog"
	"steelgate/internal/models"
	"steelgate/internal/seo"
	"steelgate/internal/slug"
)

// BrandIndex renders the brand listing. Brands are not first-class entities
// in the content store — the index is derived from distinct machine brands.
func (p *Public) BrandIndex(w http.ResponseWriter, r *http.Request) {
	names, err := p.client.BrandNames(r.Context())
	if err != nil {
		p.serveError(w, r, err)
		return
	}
	brands := catalog.BrandsFromNames(names)

	items := make([]seo.ListItem, 0, len(brands))
	for _, b := range brands {
		items = append(items, seo.ListItem{Name: b.Name, URL: p.baseURL + "/brands/" + b.Slug})
	}

	pg := p.page(
		"Machine Brands We Carry | "+p.siteName,
		"Browse used CNC and industrial machines by brand. View available inventory by manufacturer.",
		"/brands",
	)
	pg.JSONLD = seo.ItemList("Machine Brands", items)
	pg.Data = struct{ Brands []catalog.Brand }{brands}
	p.serve(w, http.StatusOK, "brands", pg)
}

// categoryLink is one "browse by category" jump link on a brand page.
type categoryLink struct {
	Name string
	Path string
}

// brandView is the view model for a single brand page.
type brandView struct {
	BrandName     string
	Machines      []machineCard
	CategoryLinks []categoryLink
}

// Brand renders all machines of one brand. The brand slug is derived from
// the name, so the route humanizes the slug back and matches machines by
// the slugified brand — case differences in the store do not split brands.
func (p *Public) Brand(w http.ResponseWriter, r *http.Request) {
	brandSlug := chi.URLParam(r, "brand")
	brandName := slug.Humanize(brandSlug)

	machines, err := p.client.MachinesByBrand(r.Context(), brandName)
	if err != nil {
		p.serveError(w, r, err)
		return
	}
	if len(machines) == 0 {
		// The exact-name query misses brands whose stored casing differs
		// from the humanized slug; fall back to scanning the catalog.
		all, err := p.client.AllMachines(r.Context())
		if err != nil {
			p.serveError(w, r, err)
			return
		}
		machines = catalog.Filter(all, brandSlug, "")
		if len(machines) > 0 {
			brandName = machines[0].Brand
		}
	}

	cards := make([]machineCard, 0, len(machines))
	items := make([]seo.ListItem, 0, len(machines))
	for _, m := range machines {
		cards = append(cards, p.card(m))
		items = append(items, seo.ListItem{Name: m.Name, URL: p.baseURL + m.DetailPath()})
	}

	pg := p.page(
		"Used "+brandName+" CNC Machines for Sale",
		"Browse our current inventory of used "+brandName+" CNC machines including mills, lathes, and machining centers. View photos, specifications, and request a quote.",
		"/brands/"+brandSlug,
	)
	pg.JSONLD = seo.ItemList("Used "+brandName+" CNC Machines", items)
	pg.Data = brandView{
		BrandName:     brandName,
		Machines:      cards,
		CategoryLinks: brandCategoryLinks(machines),
	}
	p.serve(w, http.StatusOK, "brand", pg)
}

// brandCategoryLinks collects the distinct subcategory listing pages the
// brand's machines live in, preserving first-seen order.
func brandCategoryLinks(machines []models.Machine) []categoryLink {
	seen := make(map[string]bool)
	var links []categoryLink
	for _, m := range machines {
		if m.CategorySlug == "" || m.SubcategorySlug == "" {
			continue
		}
		path := "/inventory/" + m.CategorySlug + "/" + m.SubcategorySlug
		if seen[path] {
			continue
		}
		seen[path] = true
		name := m.SubcategoryName
		if name == "" {
			name = slug.Humanize(m.SubcategorySlug)
		}
		links = append(links, categoryLink{Name: name, Path: path})
	}
	return links
}
