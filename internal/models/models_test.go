// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"testing"
)

func TestSlugUnmarshalObject(t *testing.T) {
	var s Slug
	if err := json.Unmarshal([]byte(`{"current":"cnc-machinery"}`), &s); err != nil {
		t.Fatalf("unmarshal object slug: %v", err)
	}
	if s.Current != "cnc-machinery" {
		t.Errorf("got %q, want cnc-machinery", s.Current)
	}
}

func TestSlugUnmarshalString(t *testing.T) {
	var s Slug
	if err := json.Unmarshal([]byte(`"lathes"`), &s); err != nil {
		t.Fatalf("unmarshal string slug: %v", err)
	}
	if s.Current != "lathes" {
		t.Errorf("got %q, want lathes", s.Current)
	}
}

func TestMachineDetailPath(t *testing.T) {
	m := Machine{
		Slug:            Slug{Current: "haas-vf-2"},
		CategorySlug:    "cnc-machinery",
		SubcategorySlug: "vertical-machining-centers",
	}
	want := "/inventory/cnc-machinery/vertical-machining-centers/haas-vf-2"
	if got := m.DetailPath(); got != want {
		t.Errorf("DetailPath = %q, want %q", got, want)
	}

	// Without dereferenced parents there is no valid path.
	m.CategorySlug = ""
	if got := m.DetailPath(); got != "" {
		t.Errorf("DetailPath without category = %q, want empty", got)
	}
}

func TestMachinePrimaryImage(t *testing.T) {
	m := Machine{}
	if m.PrimaryImage() != nil {
		t.Error("machine without images should have nil primary image")
	}

	m.Images = []Image{{URL: "first"}, {URL: "second"}}
	if img := m.PrimaryImage(); img == nil || img.URL != "first" {
		t.Errorf("PrimaryImage = %+v, want the first image", img)
	}
}

func TestBlogPostMetaFallbacks(t *testing.T) {
	p := BlogPost{Title: "Buying a Used VMC", Excerpt: "What to check first."}

	if got := p.MetaTitle(); got != "Buying a Used VMC" {
		t.Errorf("MetaTitle fallback = %q", got)
	}
	if got := p.MetaDescription(); got != "What to check first." {
		t.Errorf("MetaDescription fallback = %q", got)
	}

	p.SEO = &SEOOverrides{MetaTitle: "Used VMC Buyer's Guide", MetaDescription: "The full checklist."}
	if got := p.MetaTitle(); got != "Used VMC Buyer's Guide" {
		t.Errorf("MetaTitle override = %q", got)
	}
	if got := p.MetaDescription(); got != "The full checklist." {
		t.Errorf("MetaDescription override = %q", got)
	}
}

func TestBlocksPlainText(t *testing.T) {
	blocks := []Block{
		{Children: []Span{{Text: "X travel: "}, {Text: "30 in"}}},
		{Children: nil}, // empty block contributes nothing
		{Children: []Span{{Text: "Y travel: 16 in"}}},
	}

	want := "X travel: 30 in\nY travel: 16 in"
	if got := BlocksPlainText(blocks); got != want {
		t.Errorf("BlocksPlainText = %q, want %q", got, want)
	}
}
