// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// decodeJSONLD strips the script tag and unmarshals the payload.
func decodeJSONLD(t *testing.T, block string) map[string]any {
	t.Helper()
	inner := strings.TrimPrefix(block, `<script type="application/ld+json">`)
	inner = strings.TrimSuffix(inner, `</script>`)
	var data map[string]any
	if err := json.Unmarshal([]byte(inner), &data); err != nil {
		t.Fatalf("invalid JSON-LD payload: %v\n%s", err, inner)
	}
	return data
}

func TestItemList(t *testing.T) {
	block := string(ItemList("Used Lathes", []ListItem{
		{Name: "Haas ST-20", URL: "https://example.com/a"},
		{Name: "Mazak QT-250", URL: "https://example.com/b"},
	}))

	data := decodeJSONLD(t, block)
	if data["@type"] != "ItemList" || data["name"] != "Used Lathes" {
		t.Errorf("data = %v", data)
	}
	elements, ok := data["itemListElement"].([]any)
	if !ok || len(elements) != 2 {
		t.Fatalf("itemListElement = %v", data["itemListElement"])
	}
	first := elements[0].(map[string]any)
	if first["position"] != float64(1) || first["name"] != "Haas ST-20" {
		t.Errorf("first element = %v", first)
	}
}

func TestProduct(t *testing.T) {
	block := string(Product("Haas VF-2", "Haas", "S-1042",
		"https://example.com/m", []string{"https://cdn.example.com/a.jpg"}, "Used Haas VF-2 for sale."))

	data := decodeJSONLD(t, block)
	if data["@type"] != "Product" || data["sku"] != "S-1042" {
		t.Errorf("data = %v", data)
	}
	brand, ok := data["brand"].(map[string]any)
	if !ok || brand["name"] != "Haas" {
		t.Errorf("brand = %v", data["brand"])
	}
}

func TestProductOmitsEmptyBrand(t *testing.T) {
	data := decodeJSONLD(t, string(Product("Mystery Mill", "", "S-1", "https://example.com/m", nil, "")))
	if _, present := data["brand"]; present {
		t.Error("empty brand must be omitted")
	}
	if _, present := data["image"]; present {
		t.Error("empty image list must be omitted")
	}
}

func TestArticle(t *testing.T) {
	published := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	block := string(Article("Buying a Used VMC", "What to check.", "https://example.com/blog/x", "https://cdn.example.com/x.jpg", published))

	data := decodeJSONLD(t, block)
	if data["@type"] != "Article" || data["headline"] != "Buying a Used VMC" {
		t.Errorf("data = %v", data)
	}
	if data["datePublished"] != "2026-02-01T12:00:00Z" {
		t.Errorf("datePublished = %v", data["datePublished"])
	}
}

func TestServiceProvider(t *testing.T) {
	data := decodeJSONLD(t, string(Service("Steelgate Machinery", "https://example.com")))
	provider, ok := data["provider"].(map[string]any)
	if !ok || provider["name"] != "Steelgate Machinery" {
		t.Errorf("provider = %v", data["provider"])
	}
}

func TestJSONLDCannotBreakOutOfScriptTag(t *testing.T) {
	block := string(ItemList("</script><script>alert(1)</script>", nil))
	if strings.Count(block, "</script>") != 1 {
		t.Error("payload must not close the script tag early")
	}
}
