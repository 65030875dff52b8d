// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package media

import (
	"strings"
	"testing"
)

func testResolver() *Resolver {
	return NewResolver("https://cdn.example.com/", "p1a2b3c4", "production")
}

func TestURL(t *testing.T) {
	r := testResolver()

	got := r.URL("image-abc123-1200x800-jpg", Options{Width: 600, Fit: "crop"})
	want := "https://cdn.example.com/images/p1a2b3c4/production/abc123-1200x800.jpg?auto=format&fit=crop&w=600"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}

func TestURLNoOptions(t *testing.T) {
	r := testResolver()

	got := r.URL("image-abc123-1200x800-png", Options{})
	want := "https://cdn.example.com/images/p1a2b3c4/production/abc123-1200x800.png?auto=format"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}

func TestURLHyphenatedID(t *testing.T) {
	// Asset IDs can contain hyphens; dims and format come off the tail.
	r := testResolver()

	got := r.URL("image-ab-cd-ef-640x480-webp", Options{})
	if !strings.Contains(got, "/ab-cd-ef-640x480.webp") {
		t.Errorf("URL = %q, want hyphenated id preserved", got)
	}
}

func TestURLBadRefs(t *testing.T) {
	r := testResolver()

	for _, ref := range []string{
		"",
		"file-abc123-pdf",
		"image-",
		"image-abc123",
		"image-abc123-noformat",
		"image-abc123-notdims-jpg",
	} {
		if got := r.URL(ref, Options{Width: 600}); got != Placeholder {
			t.Errorf("URL(%q) = %q, want placeholder", ref, got)
		}
	}
}

func TestDisplayPrefersResolvedURL(t *testing.T) {
	r := testResolver()

	resolved := "https://cdn.example.com/images/p1a2b3c4/production/xyz-100x100.jpg"
	if got := r.Display(resolved, "image-abc123-1200x800-jpg", Options{}); got != resolved {
		t.Errorf("Display with resolved URL = %q, want %q", got, resolved)
	}
	if got := r.Display("", "image-abc123-1200x800-jpg", Options{}); !strings.Contains(got, "abc123") {
		t.Errorf("Display fallback to ref = %q, want resolved from ref", got)
	}
	if got := r.Display("", "", Options{}); got != Placeholder {
		t.Errorf("Display with nothing = %q, want placeholder", got)
	}
}
