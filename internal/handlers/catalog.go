// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"steelgate/internal/catalog"
	"steelgate/internal/media"
	"steelgate/internal/models"
	"steelgate/internal/portable"
	"steelgate/internal/seo"
)

// cardWidth is the transform width requested for listing thumbnails.
const cardWidth = 600

// machineCard is the view model for one machine tile in a listing grid.
type machineCard struct {
	Name        string
	Brand       string
	Year        int
	StockNumber string
	ImageURL    string
	ImageAlt    string
	Path        string
}

// card maps a machine onto its listing tile, resolving the primary image.
func (p *Public) card(m models.Machine) machineCard {
	c := machineCard{
		Name:        m.Name,
		Brand:       m.Brand,
		Year:        m.YearOfMfg,
		StockNumber: m.StockNumber,
		ImageURL:    media.Placeholder,
		ImageAlt:    m.Name + " for sale",
		Path:        m.DetailPath(),
	}
	if img := m.PrimaryImage(); img != nil {
		c.ImageURL = p.resolver.Display(img.URL, img.AssetRef, media.Options{Width: cardWidth, Fit: "crop"})
		if img.Alt != "" {
			c.ImageAlt = img.Alt
		}
	}
	return c
}

// categoryGroup pairs a category with its subcategories for the index grid.
type categoryGroup struct {
	Category      models.Category
	Subcategories []models.Subcategory
}

// InventoryIndex renders the all-categories page: every category with its
// subcategories in a column layout.
func (p *Public) InventoryIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := p.client.Categories(ctx)
	if err != nil {
		p.serveError(w, r, err)
		return
	}
	subcategories, err := p.client.Subcategories(ctx)
	if err != nil {
		p.serveError(w, r, err)
		return
	}

	byCategory := make(map[string][]models.Subcategory)
	for _, sub := range subcategories {
		byCategory[sub.ParentCategoryRef] = append(byCategory[sub.ParentCategoryRef], sub)
	}

	groups := make([]categoryGroup, 0, len(categories))
	for _, cat := range categories {
		groups = append(groups, categoryGroup{
			Category:      cat,
			Subcategories: byCategory[cat.ID],
		})
	}

	pg := p.page(
		"Used Machines & Industrial Equipment Inventory | "+p.siteName,
		"Browse our current inventory of used CNC machines for sale, including machining centers, lathes, mills, turning centers, and metalworking equipment.",
		"/inventory",
	)
	pg.Data = struct{ Groups []categoryGroup }{groups}
	p.serve(w, http.StatusOK, "inventory", pg)
}

// Category renders the subcategories of one category with ItemList
// structured data.
func (p *Public) Category(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categorySlug := chi.URLParam(r, "category")

	cat, err := p.client.CategoryBySlug(ctx, categorySlug)
	if err != nil {
		p.serveError(w, r, err)
		return
	}
	if cat == nil {
		p.NotFound(w, r)
		return
	}

	subcategories, err := p.client.SubcategoriesOf(ctx, categorySlug)
	if err != nil {
		p.serveError(w, r, err)
		return
	}

	items := make([]seo.ListItem, 0, len(subcategories))
	for _, sub := range subcategories {
		items = append(items, seo.ListItem{
			Name: sub.Name,
			URL:  p.baseURL + "/inventory/" + categorySlug + "/" + sub.Slug.Current,
		})
	}

	pg := p.page(
		cat.Name+" for Sale | Used Industrial Machinery",
		"Browse available "+cat.Name+" including CNC and industrial machines. View subcategories, specifications, and request a quote.",
		"/inventory/"+categorySlug,
	)
	pg.JSONLD = seo.ItemList(cat.Name+" Subcategories", items)
	pg.Data = struct {
		Category      *models.Category
		Subcategories []models.Subcategory
	}{cat, subcategories}
	p.serve(w, http.StatusOK, "category", pg)
}

// listingView is the view model for a subcategory machine listing,
// including the brand and year-bucket filter controls.
type listingView struct {
	Category      *models.Category
	Subcategory   *models.Subcategory
	Machines      []machineCard
	Brands        []catalog.Brand
	YearBuckets   []catalog.YearBucket
	SelectedBrand string
	SelectedYear  string
	BasePath      string
	Filtered      bool
}

// Subcategory renders the machine listing of one subcategory. Optional
// ?brand= and ?year= query parameters narrow the listing; filtering runs
// in-process over the full fetched set, and the filter controls themselves
// are derived from that same set.
func (p *Public) Subcategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categorySlug := chi.URLParam(r, "category")
	subcategorySlug := chi.URLParam(r, "subcategory")

	cat, err := p.client.CategoryBySlug(ctx, categorySlug)
	if err != nil {
		p.serveError(w, r, err)
		return
	}
	sub, err := p.client.SubcategoryBySlug(ctx, categorySlug, subcategorySlug)
	if err != nil {
		p.serveError(w, r, err)
		return
	}
	if cat == nil || sub == nil {
		p.NotFound(w, r)
		return
	}

	machines, err := p.client.MachinesIn(ctx, categorySlug, subcategorySlug)
	if err != nil {
		p.serveError(w, r, err)
		return
	}

	brandParam := r.URL.Query().Get("brand")
	yearParam := r.URL.Query().Get("year")
	filtered := catalog.Filter(machines, brandParam, yearParam)

	cards := make([]machineCard, 0, len(filtered))
	items := make([]seo.ListItem, 0, len(filtered))
	for _, m := range filtered {
		cards = append(cards, p.card(m))
		items = append(items, seo.ListItem{Name: m.Name, URL: p.baseURL + m.DetailPath()})
	}

	basePath := "/inventory/" + categorySlug + "/" + subcategorySlug
	pg := p.page(
		"Used "+sub.Name+" for Sale | "+p.siteName,
		"View our current inventory of used "+sub.Name+". Photos, specifications, and quotes available for every machine.",
		basePath,
	)
	pg.JSONLD = seo.ItemList("Used "+sub.Name, items)
	pg.Data = listingView{
		Category:      cat,
		Subcategory:   sub,
		Machines:      cards,
		Brands:        catalog.Brands(machines),
		YearBuckets:   catalog.YearBuckets,
		SelectedBrand: brandParam,
		SelectedYear:  yearParam,
		BasePath:      basePath,
		Filtered:      brandParam != "" || yearParam != "",
	}
	p.serve(w, http.StatusOK, "subcategory", pg)
}

// machineView is the view model for a machine detail page.
type machineView struct {
	Machine   *models.Machine
	Images    []models.Image
	SpecsHTML template.HTML
	Related   []machineCard
}

// Machine renders a single machine detail page: gallery, specifications,
// video, related machines, the request-quote form, and Product structured
// data. The machine is matched by the full slug triple.
func (p *Public) Machine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categorySlug := chi.URLParam(r, "category")
	subcategorySlug := chi.URLParam(r, "subcategory")
	machineSlug := chi.URLParam(r, "machine")

	m, err := p.client.MachineBySlugs(ctx, categorySlug, subcategorySlug, machineSlug)
	if err != nil {
		p.serveError(w, r, err)
		return
	}
	if m == nil {
		p.NotFound(w, r)
		return
	}

	// Related machines share the subcategory; a failure here degrades to an
	// empty strip rather than failing the page.
	related, err := p.client.RelatedMachines(ctx, subcategorySlug, m.ID)
	if err != nil {
		related = nil
	}
	relatedCards := make([]machineCard, 0, len(related))
	for _, rm := range related {
		relatedCards = append(relatedCards, p.card(rm))
	}

	images := make([]models.Image, 0, len(m.Images))
	var imageURLs []string
	for _, img := range m.Images {
		url := p.resolver.Display(img.URL, img.AssetRef, media.Options{Width: 1200})
		alt := img.Alt
		if alt == "" {
			alt = m.Name
		}
		images = append(images, models.Image{URL: url, Alt: alt})
		imageURLs = append(imageURLs, url)
	}

	pageURL := p.baseURL + m.DetailPath()
	description := "Used " + m.Name + " for sale. Stock #" + m.StockNumber + "."

	pg := p.page(
		"Used "+m.Name+" for Sale | Stock #"+m.StockNumber,
		description,
		m.DetailPath(),
	)
	pg.JSONLD = seo.Product(m.Name, m.Brand, m.StockNumber, pageURL, imageURLs, description)
	pg.Data = machineView{
		Machine:   m,
		Images:    images,
		SpecsHTML: portable.ToHTML(m.Specifications),
		Related:   relatedCards,
	}
	p.serve(w, http.StatusOK, "machine", pg)
}
