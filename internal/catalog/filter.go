// Package catalog implements the listing-page filters: fixed year-of-
// manufacture buckets and brand matching. Filters are evaluated by linear
// scan over the result set already fetched from the content store.
package catalog

import (
	"sort"
	"strings"

	"steelgate/internal/models"
	"steelgate/internal/slug"
)

// YearBucket is a named range of manufacture years used as a coarse
// listing filter.
type YearBucket struct {
	Label string
	Min   int // inclusive; 0 means unbounded
	Max   int // inclusive; 0 means unbounded
}

// YearBuckets is the fixed set of filter controls rendered on listing pages,
// newest first.
var YearBuckets = []YearBucket{
	{Label: "2020+", Min: 2020},
	{Label: "2015-2019", Min: 2015, Max: 2019},
	{Label: "2010-2014", Min: 2010, Max: 2014},
	{Label: "Pre-2010", Max: 2009},
}

// Matches reports whether a year falls inside the bucket. Machines with no
// recorded year (zero) never match.
func (b YearBucket) Matches(year int) bool {
	if year == 0 {
		return false
	}
	if b.Min != 0 && year < b.Min {
		return false
	}
	if b.Max != 0 && year > b.Max {
		return false
	}
	return true
}

// BucketByLabel looks up a bucket by its label. Unknown labels return
// (zero, false) and callers skip year filtering entirely.
func BucketByLabel(label string) (YearBucket, bool) {
	for _, b := range YearBuckets {
		if b.Label == label {
			return b, true
		}
	}
	return YearBucket{}, false
}

// Filter narrows a machine list by brand slug and/or year-bucket label.
// Empty or unrecognized values leave that dimension unfiltered. The input
// slice is never mutated.
func Filter(machines []models.Machine, brandSlug, yearLabel string) []models.Machine {
	bucket, hasBucket := BucketByLabel(yearLabel)
	brandSlug = strings.ToLower(strings.TrimSpace(brandSlug))

	out := make([]models.Machine, 0, len(machines))
	for _, m := range machines {
		if brandSlug != "" && slug.Generate(m.Brand) != brandSlug {
			continue
		}
		if hasBucket && !bucket.Matches(m.YearOfMfg) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Brand pairs a display name with its derived slug.
type Brand struct {
	Name string
	Slug string
}

// Brands derives the distinct brand list from a set of machines: non-empty
// brands, deduplicated case-insensitively by slug, sorted by name. The same
// derivation backs both the brand filter controls and the /brands index.
func Brands(machines []models.Machine) []Brand {
	seen := make(map[string]bool)
	var out []Brand
	for _, m := range machines {
		name := strings.TrimSpace(m.Brand)
		if name == "" {
			continue
		}
		s := slug.Generate(name)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, Brand{Name: name, Slug: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// BrandsFromNames maps raw distinct brand names (as returned by the content
// store's unique-aggregation query) into Brand values, sorted by name.
func BrandsFromNames(names []string) []Brand {
	seen := make(map[string]bool)
	var out []Brand
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s := slug.Generate(name)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, Brand{Name: name, Slug: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
