// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strings"

// Span is a run of text inside a rich-text block, optionally carrying
// decorator marks ("strong", "em").
type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

// HasMark reports whether the span carries the given decorator mark.
func (s Span) HasMark(mark string) bool {
	for _, m := range s.Marks {
		if m == mark {
			return true
		}
	}
	return false
}

// Block is one rich-text block from the content store (portable text).
// Style is "normal" for paragraphs, "h2"/"h3"/"h4" for headings, or
// "blockquote". ListItem is "bullet" or "number" for list entries.
type Block struct {
	Type     string `json:"_type"`
	Style    string `json:"style"`
	ListItem string `json:"listItem"`
	Children []Span `json:"children"`
}

// PlainText concatenates the block's span texts without any markup.
func (b Block) PlainText() string {
	var sb strings.Builder
	for _, c := range b.Children {
		sb.WriteString(c.Text)
	}
	return sb.String()
}

// BlocksPlainText joins the plain text of all blocks with newlines.
// Used for the text part of lead emails and for meta descriptions.
func BlocksPlainText(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if t := b.PlainText(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}
