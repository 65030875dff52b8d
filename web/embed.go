// Package web provides the embedded page templates and static assets for
// the public site.
package web

import "embed"

// TemplatesFS embeds the HTML page templates.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS embeds the web/static/ directory tree (CSS, form JS, placeholder
// image), served at /static/.
//
//go:embed all:static
var StaticFS embed.FS
