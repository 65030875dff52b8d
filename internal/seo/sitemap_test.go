// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"steelgate/internal/media"
	"steelgate/internal/models"
)

// fakeSource serves a fixed content snapshot to the generators.
type fakeSource struct {
	categories    []models.Category
	subcategories []models.Subcategory
	machines      []models.Machine
	brands        []string
}

func (f *fakeSource) Categories(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}
func (f *fakeSource) Subcategories(ctx context.Context) ([]models.Subcategory, error) {
	return f.subcategories, nil
}
func (f *fakeSource) AllMachines(ctx context.Context) ([]models.Machine, error) {
	return f.machines, nil
}
func (f *fakeSource) BrandNames(ctx context.Context) ([]string, error) {
	return f.brands, nil
}

func testSnapshot() *fakeSource {
	updated := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &fakeSource{
		categories: []models.Category{
			{ID: "c1", Name: "CNC Machinery", Slug: models.Slug{Current: "cnc-machinery"}, UpdatedAt: updated},
		},
		subcategories: []models.Subcategory{
			{ID: "s1", Name: "Vertical Machining Centers", Slug: models.Slug{Current: "vmc"}, CategorySlug: "cnc-machinery", UpdatedAt: updated},
		},
		machines: []models.Machine{
			{
				ID: "m1", Name: "Haas VF-2", Brand: "Haas", StockNumber: "S-1",
				Slug:         models.Slug{Current: "haas-vf-2"},
				CategorySlug: "cnc-machinery", SubcategorySlug: "vmc",
				UpdatedAt: updated,
				Images:    []models.Image{{URL: "https://cdn.example.com/vf2.jpg", Alt: "Haas VF-2 front"}},
			},
			{
				// No image and no full slug path; appears in neither sitemap's
				// machine entries.
				ID: "m2", Name: "Unlinked", Slug: models.Slug{Current: "unlinked"},
			},
		},
		brands: []string{"Haas"},
	}
}

func testGenerator(src Source) *Generator {
	resolver := media.NewResolver("https://cdn.example.com", "proj", "production")
	return NewGenerator("https://www.steelgatemachinery.com", src, resolver)
}

func locs(set *URLSet) []string {
	out := make([]string, 0, len(set.URLs))
	for _, u := range set.URLs {
		out = append(out, u.Loc)
	}
	return out
}

func TestSitemapContents(t *testing.T) {
	g := testGenerator(testSnapshot())

	set, err := g.Sitemap(context.Background())
	if err != nil {
		t.Fatalf("Sitemap: %v", err)
	}

	got := locs(set)
	wantPresent := []string{
		"https://www.steelgatemachinery.com",
		"https://www.steelgatemachinery.com/inventory",
		"https://www.steelgatemachinery.com/inventory/cnc-machinery",
		"https://www.steelgatemachinery.com/inventory/cnc-machinery/vmc",
		"https://www.steelgatemachinery.com/brands/haas",
		"https://www.steelgatemachinery.com/inventory/cnc-machinery/vmc/haas-vf-2",
	}
	for _, w := range wantPresent {
		found := false
		for _, l := range got {
			if l == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("sitemap missing %s\nhave: %v", w, got)
		}
	}

	// A machine without a full slug path is skipped.
	for _, l := range got {
		if strings.Contains(l, "unlinked") {
			t.Errorf("machine without slug path must not appear: %s", l)
		}
	}
}

func TestSitemapPriorities(t *testing.T) {
	g := testGenerator(testSnapshot())

	set, err := g.Sitemap(context.Background())
	if err != nil {
		t.Fatalf("Sitemap: %v", err)
	}

	want := map[string]string{
		"https://www.steelgatemachinery.com":                                   "1.0",
		"https://www.steelgatemachinery.com/inventory":                         "0.9",
		"https://www.steelgatemachinery.com/brands":                            "0.8",
		"https://www.steelgatemachinery.com/about":                             "0.3",
		"https://www.steelgatemachinery.com/inventory/cnc-machinery":           "0.8",
		"https://www.steelgatemachinery.com/brands/haas":                       "0.7",
		"https://www.steelgatemachinery.com/inventory/cnc-machinery/vmc/haas-vf-2": "0.6",
	}
	for _, u := range set.URLs {
		if p, ok := want[u.Loc]; ok && u.Priority != p {
			t.Errorf("%s priority = %s, want %s", u.Loc, u.Priority, p)
		}
	}
}

func TestSitemapIdempotentOverSnapshot(t *testing.T) {
	g := testGenerator(testSnapshot())
	ctx := context.Background()

	first, err := g.Sitemap(ctx)
	if err != nil {
		t.Fatalf("first Sitemap: %v", err)
	}
	second, err := g.Sitemap(ctx)
	if err != nil {
		t.Fatalf("second Sitemap: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two generations over the same snapshot must be identical")
	}
}

func TestSitemapSortedAndDeduped(t *testing.T) {
	src := testSnapshot()
	// Duplicate category slug in the store.
	src.categories = append(src.categories, src.categories[0])
	g := testGenerator(src)

	set, err := g.Sitemap(context.Background())
	if err != nil {
		t.Fatalf("Sitemap: %v", err)
	}

	got := locs(set)
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("urls not strictly sorted/deduped at %d: %q >= %q", i, got[i-1], got[i])
		}
	}
}

func TestSitemapLastModFromStore(t *testing.T) {
	g := testGenerator(testSnapshot())

	set, err := g.Sitemap(context.Background())
	if err != nil {
		t.Fatalf("Sitemap: %v", err)
	}
	for _, u := range set.URLs {
		if u.Loc == "https://www.steelgatemachinery.com/inventory/cnc-machinery" {
			if u.LastMod != "2026-03-14" {
				t.Errorf("category lastmod = %s, want store timestamp 2026-03-14", u.LastMod)
			}
			return
		}
	}
	t.Fatal("category entry missing")
}

func TestSitemapXMLDocument(t *testing.T) {
	g := testGenerator(testSnapshot())

	out, err := g.SitemapXML(context.Background())
	if err != nil {
		t.Fatalf("SitemapXML: %v", err)
	}
	doc := string(out)
	if !strings.HasPrefix(doc, "<?xml") {
		t.Error("sitemap must start with an XML declaration")
	}
	if !strings.Contains(doc, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`) {
		t.Error("sitemap missing protocol namespace")
	}
}

func TestImageSitemap(t *testing.T) {
	g := testGenerator(testSnapshot())

	set, err := g.ImageSitemap(context.Background())
	if err != nil {
		t.Fatalf("ImageSitemap: %v", err)
	}

	if len(set.URLs) != 1 {
		t.Fatalf("got %d image entries, want 1 (machines without images are skipped)", len(set.URLs))
	}
	entry := set.URLs[0]
	if entry.Loc != "https://www.steelgatemachinery.com/inventory/cnc-machinery/vmc/haas-vf-2" {
		t.Errorf("entry loc = %s", entry.Loc)
	}
	if entry.Image.Loc != "https://cdn.example.com/vf2.jpg" {
		t.Errorf("image loc = %s", entry.Image.Loc)
	}
	if entry.Image.Caption != "Haas VF-2 front" {
		t.Errorf("caption = %s, want the alt text", entry.Image.Caption)
	}
}

func TestImageSitemapXMLNamespace(t *testing.T) {
	g := testGenerator(testSnapshot())

	out, err := g.ImageSitemapXML(context.Background())
	if err != nil {
		t.Fatalf("ImageSitemapXML: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, `xmlns:image="http://www.google.com/schemas/sitemap-image/1.1"`) {
		t.Error("image sitemap missing image namespace")
	}
	if !strings.Contains(doc, "<image:image>") || !strings.Contains(doc, "<image:loc>") {
		t.Error("image sitemap missing image extension elements")
	}
}
