// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package portable converts the content store's rich-text blocks (portable
// text) into HTML for page templates. All span text is escaped — the store
// is an external system and its content is never trusted as raw HTML.
package portable

import (
	"html"
	"html/template"
	"strings"

	"steelgate/internal/models"
)

// headingStyles maps block styles to the HTML tags they render as.
// Anything not listed renders as a paragraph.
var headingStyles = map[string]string{
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"blockquote": "blockquote",
}

// ToHTML renders portable-text blocks as HTML. Consecutive list-item blocks
// of the same kind are grouped into a single <ul> or <ol>.
func ToHTML(blocks []models.Block) template.HTML {
	var sb strings.Builder
	openList := "" // "", "bullet", or "number"

	closeList := func() {
		switch openList {
		case "bullet":
			sb.WriteString("</ul>")
		case "number":
			sb.WriteString("</ol>")
		}
		openList = ""
	}

	for _, b := range blocks {
		if b.Type != "" && b.Type != "block" {
			continue // non-text blocks (inline images, embeds) are skipped
		}

		if b.ListItem != "" {
			if openList != b.ListItem {
				closeList()
				if b.ListItem == "number" {
					sb.WriteString("<ol>")
				} else {
					sb.WriteString("<ul>")
				}
				openList = b.ListItem
			}
			sb.WriteString("<li>")
			renderSpans(&sb, b.Children)
			sb.WriteString("</li>")
			continue
		}

		closeList()
		tag := headingStyles[b.Style]
		if tag == "" {
			tag = "p"
		}
		sb.WriteString("<" + tag + ">")
		renderSpans(&sb, b.Children)
		sb.WriteString("</" + tag + ">")
	}
	closeList()

	return template.HTML(sb.String())
}

// renderSpans writes escaped span text with strong/em decorators applied.
func renderSpans(sb *strings.Builder, spans []models.Span) {
	for _, s := range spans {
		text := html.EscapeString(s.Text)
		if s.HasMark("strong") {
			text = "<strong>" + text + "</strong>"
		}
		if s.HasMark("em") {
			text = "<em>" + text + "</em>"
		}
		sb.WriteString(text)
	}
}
