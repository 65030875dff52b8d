// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the typed records decoded from the headless content
// store at the client boundary. The store returns loosely-shaped JSON; every
// entity is unmarshalled into one of these structs before any handler or
// generator touches it, so unexpected shapes fail at the boundary rather
// than deep inside a template.
package models

import (
	"encoding/json"
	"time"
)

// Slug wraps the content store's {"current": "..."} slug object and
// unmarshals from either that object or a bare string.
type Slug struct {
	Current string `json:"current"`
}

// UnmarshalJSON accepts both `{"current":"x"}` and `"x"`.
func (s *Slug) UnmarshalJSON(data []byte) error {
	var obj struct {
		Current string `json:"current"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Current != "" {
		s.Current = obj.Current
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	s.Current = str
	return nil
}

// Category is a top-level catalog grouping (e.g. "CNC Machinery").
type Category struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Slug      Slug      `json:"slug"`
	UpdatedAt time.Time `json:"_updatedAt"`
}

// Subcategory groups machines under a parent category
// (e.g. "Vertical Machining Centers" under "CNC Machinery").
type Subcategory struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Slug      Slug      `json:"slug"`
	UpdatedAt time.Time `json:"_updatedAt"`

	// ParentCategoryRef is the raw reference from the store; populated on
	// queries that project `parentCategory._ref`.
	ParentCategoryRef string `json:"parentCategoryRef"`

	// CategorySlug is populated on queries that dereference the parent.
	CategorySlug string `json:"categorySlug"`
}

// Image is a display-ready machine photo: a content-store asset reference
// (or a resolved URL) plus optional alt text.
type Image struct {
	AssetRef string `json:"assetRef"`
	URL      string `json:"url"`
	Alt      string `json:"alt"`
}

// Machine is a single inventory listing. The content store carries several
// historical shapes for machines; this is the canonical one — every query
// projects into these fields.
type Machine struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	YearOfMfg   int       `json:"yearOfMfg"`
	StockNumber string    `json:"stockNumber"`
	Slug        Slug      `json:"slug"`
	UpdatedAt   time.Time `json:"_updatedAt"`

	// Specifications is rich text (portable text blocks) from the store.
	Specifications []Block `json:"specifications"`

	Images   []Image `json:"images"`
	VideoURL string  `json:"videoUrl"`

	// Dereferenced parent slugs/names, populated per query.
	CategorySlug    string `json:"categorySlug"`
	CategoryName    string `json:"categoryName"`
	SubcategorySlug string `json:"subcategorySlug"`
	SubcategoryName string `json:"subcategoryName"`
}

// PrimaryImage returns the machine's first image, or nil when it has none.
func (m *Machine) PrimaryImage() *Image {
	if len(m.Images) == 0 {
		return nil
	}
	return &m.Images[0]
}

// DetailPath returns the site-relative URL of the machine's detail page,
// or "" when the parent slugs were not dereferenced.
func (m *Machine) DetailPath() string {
	if m.CategorySlug == "" || m.SubcategorySlug == "" || m.Slug.Current == "" {
		return ""
	}
	return "/inventory/" + m.CategorySlug + "/" + m.SubcategorySlug + "/" + m.Slug.Current
}
