// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"encoding/json"
	"html/template"
	"time"
)

// ListItem is one entry of an ItemList structured-data block.
type ListItem struct {
	Name string
	URL  string
}

// ItemList builds schema.org ItemList JSON-LD for listing pages
// (subcategory grids, brand indexes, machine listings).
func ItemList(name string, items []ListItem) template.HTML {
	elements := make([]map[string]any, 0, len(items))
	for i, item := range items {
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"url":      item.URL,
		})
	}
	return toScript(map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"itemListElement": elements,
	})
}

// Product builds schema.org Product JSON-LD for a machine detail page.
func Product(name, brand, sku, pageURL string, imageURLs []string, description string) template.HTML {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        name,
		"sku":         sku,
		"url":         pageURL,
		"description": description,
	}
	if brand != "" {
		data["brand"] = map[string]any{"@type": "Brand", "name": brand}
	}
	if len(imageURLs) > 0 {
		data["image"] = imageURLs
	}
	return toScript(data)
}

// Service builds schema.org Service JSON-LD for the sell-your-machine page.
func Service(siteName, baseURL string) template.HTML {
	return toScript(map[string]any{
		"@context": "https://schema.org",
		"@type":    "Service",
		"name":     "Sell Metalworking Machinery",
		"provider": map[string]any{
			"@type": "Organization",
			"name":  siteName,
			"url":   baseURL,
		},
		"areaServed":  []string{"United States", "Worldwide"},
		"serviceType": "Used CNC and Metalworking Machinery Purchasing",
	})
}

// Article builds schema.org Article JSON-LD for a blog post page.
func Article(headline, description, pageURL, imageURL string, published time.Time) template.HTML {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    headline,
		"description": description,
		"url":         pageURL,
	}
	if imageURL != "" {
		data["image"] = imageURL
	}
	if !published.IsZero() {
		data["datePublished"] = published.UTC().Format(time.RFC3339)
	}
	return toScript(data)
}

// toScript wraps marshalled JSON-LD in its script tag. json.Marshal escapes
// <, >, and & inside strings, so the payload cannot close the tag early.
func toScript(data map[string]any) template.HTML {
	payload, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return template.HTML(`<script type="application/ld+json">` + string(payload) + `</script>`)
}
