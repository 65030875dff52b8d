// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package media derives display-ready image URLs from content-store asset
// references. Asset refs look like "image-<id>-<WxH>-<format>" and resolve
// to the store's image CDN with transform parameters appended. Pure
// functions, no I/O.
package media

import (
	"fmt"
	"net/url"
	"strings"
)

// Placeholder is served when a machine or post has no usable image.
const Placeholder = "/static/placeholder.jpg"

// Resolver builds CDN URLs for one project/dataset pair.
type Resolver struct {
	cdnURL    string
	projectID string
	dataset   string
}

// NewResolver returns a Resolver for the given CDN base URL, project, and dataset.
func NewResolver(cdnURL, projectID, dataset string) *Resolver {
	return &Resolver{
		cdnURL:    strings.TrimRight(cdnURL, "/"),
		projectID: projectID,
		dataset:   dataset,
	}
}

// Options are the supported image transform parameters.
type Options struct {
	Width int    // requested display width in pixels; 0 leaves the original
	Fit   string // "crop", "max", ... ; empty omits the parameter
}

// URL resolves an asset reference into a display URL with auto format
// negotiation. Unparseable or empty refs return the placeholder path so
// templates never emit a broken <img>.
func (r *Resolver) URL(assetRef string, opts Options) string {
	id, dims, format, ok := parseRef(assetRef)
	if !ok {
		return Placeholder
	}

	u := fmt.Sprintf("%s/images/%s/%s/%s-%s.%s", r.cdnURL, r.projectID, r.dataset, id, dims, format)

	q := url.Values{}
	q.Set("auto", "format")
	if opts.Width > 0 {
		q.Set("w", fmt.Sprintf("%d", opts.Width))
	}
	if opts.Fit != "" {
		q.Set("fit", opts.Fit)
	}
	return u + "?" + q.Encode()
}

// Display returns the URL for an already-resolved image URL or an asset ref,
// whichever the query populated. Listing queries dereference assets to plain
// URLs; detail queries may carry raw refs.
func (r *Resolver) Display(resolvedURL, assetRef string, opts Options) string {
	if resolvedURL != "" {
		return resolvedURL
	}
	return r.URL(assetRef, opts)
}

// parseRef splits "image-<id>-<WxH>-<format>" into its parts. The id itself
// may contain hyphens, so dims and format are taken from the tail.
func parseRef(ref string) (id, dims, format string, ok bool) {
	if !strings.HasPrefix(ref, "image-") {
		return "", "", "", false
	}
	parts := strings.Split(strings.TrimPrefix(ref, "image-"), "-")
	if len(parts) < 3 {
		return "", "", "", false
	}
	format = parts[len(parts)-1]
	dims = parts[len(parts)-2]
	id = strings.Join(parts[:len(parts)-2], "-")
	if id == "" || format == "" || !strings.Contains(dims, "x") {
		return "", "", "", false
	}
	return id, dims, format, true
}
