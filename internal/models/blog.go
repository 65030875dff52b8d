// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SEOOverrides carry optional per-post metadata that replaces the defaults
// derived from the title and excerpt.
type SEOOverrides struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

// BlogPost is an article from the content store's blog section.
type BlogPost struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Slug        Slug          `json:"slug"`
	Excerpt     string        `json:"excerpt"`
	PublishedAt time.Time     `json:"publishedAt"`
	Body        []Block       `json:"body"`
	MainImage   *Image        `json:"mainImage"`
	SEO         *SEOOverrides `json:"seo"`
}

// MetaTitle returns the SEO title override when present, else the post title.
func (p *BlogPost) MetaTitle() string {
	if p.SEO != nil && p.SEO.MetaTitle != "" {
		return p.SEO.MetaTitle
	}
	return p.Title
}

// MetaDescription returns the SEO description override when present,
// else the excerpt.
func (p *BlogPost) MetaDescription() string {
	if p.SEO != nil && p.SEO.MetaDescription != "" {
		return p.SEO.MetaDescription
	}
	return p.Excerpt
}
