// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"context"
	"encoding/xml"
	"fmt"
	"sort"

	"steelgate/internal/media"
)

// ImageURLSet is the root element of the image sitemap, carrying the Google
// image sitemap namespace alongside the standard one.
type ImageURLSet struct {
	XMLName    xml.Name   `xml:"urlset"`
	Xmlns      string     `xml:"xmlns,attr"`
	XmlnsImage string     `xml:"xmlns:image,attr"`
	URLs       []ImageURL `xml:"url"`
}

// ImageURL associates a machine detail page with its primary image.
type ImageURL struct {
	Loc   string     `xml:"loc"`
	Image ImageEntry `xml:"image:image"`
}

// ImageEntry is the image extension element.
type ImageEntry struct {
	Loc     string `xml:"image:loc"`
	Caption string `xml:"image:caption,omitempty"`
	Title   string `xml:"image:title,omitempty"`
}

// ImageSitemap enumerates every machine that has a primary image and emits
// one entry per detail page. Sorted by page URL for snapshot idempotence.
func (g *Generator) ImageSitemap(ctx context.Context) (*ImageURLSet, error) {
	machines, err := g.source.AllMachines(ctx)
	if err != nil {
		return nil, fmt.Errorf("image sitemap machines: %w", err)
	}

	var urls []ImageURL
	for _, m := range machines {
		path := m.DetailPath()
		img := m.PrimaryImage()
		if path == "" || img == nil {
			continue
		}
		imgURL := g.resolver.Display(img.URL, img.AssetRef, media.Options{})
		if imgURL == media.Placeholder {
			continue
		}
		alt := img.Alt
		if alt == "" {
			alt = m.Name
		}
		urls = append(urls, ImageURL{
			Loc: g.baseURL + path,
			Image: ImageEntry{
				Loc:     imgURL,
				Caption: alt,
				Title:   alt,
			},
		})
	}

	sort.Slice(urls, func(i, j int) bool { return urls[i].Loc < urls[j].Loc })

	return &ImageURLSet{
		Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsImage: "http://www.google.com/schemas/sitemap-image/1.1",
		URLs:       urls,
	}, nil
}

// ImageSitemapXML renders the image sitemap as an XML document with header.
func (g *Generator) ImageSitemapXML(ctx context.Context) ([]byte, error) {
	set, err := g.ImageSitemap(ctx)
	if err != nil {
		return nil, err
	}
	return marshalXML(set)
}
