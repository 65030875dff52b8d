// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"steelgate/internal/media"
	"steelgate/internal/portable"
	"steelgate/internal/seo"
)

// postCard is one article tile on the blog index.
type postCard struct {
	Title       string
	Slug        string
	Excerpt     string
	PublishedAt time.Time
	ImageURL    string
	ImageAlt    string
}

// BlogIndex renders the blog listing, newest post first.
func (p *Public) BlogIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := p.client.Posts(r.Context())
	if err != nil {
		p.serveError(w, r, err)
		return
	}

	cards := make([]postCard, 0, len(posts))
	for _, post := range posts {
		card := postCard{
			Title:       post.Title,
			Slug:        post.Slug.Current,
			Excerpt:     post.Excerpt,
			PublishedAt: post.PublishedAt,
		}
		if post.MainImage != nil {
			card.ImageURL = p.resolver.Display(post.MainImage.URL, post.MainImage.AssetRef, media.Options{Width: cardWidth, Fit: "crop"})
			card.ImageAlt = post.MainImage.Alt
			if card.ImageAlt == "" {
				card.ImageAlt = post.Title
			}
		}
		cards = append(cards, card)
	}

	pg := p.page(
		"Blog | "+p.siteName,
		"Insights, guides, and industry knowledge on CNC and metalworking machinery.",
		"/blog",
	)
	pg.Data = struct{ Posts []postCard }{cards}
	p.serve(w, http.StatusOK, "blog", pg)
}

// postView is the view model for a single blog article.
type postView struct {
	Title       string
	PublishedAt time.Time
	BodyHTML    template.HTML
	ImageURL    string
	ImageAlt    string
}

// BlogPost renders one article by slug, honoring per-post SEO overrides.
func (p *Public) BlogPost(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	post, err := p.client.PostBySlug(r.Context(), slugParam)
	if err != nil {
		p.serveError(w, r, err)
		return
	}
	if post == nil {
		p.NotFound(w, r)
		return
	}

	view := postView{
		Title:       post.Title,
		PublishedAt: post.PublishedAt,
		BodyHTML:    portable.ToHTML(post.Body),
	}
	if post.MainImage != nil {
		view.ImageURL = p.resolver.Display(post.MainImage.URL, post.MainImage.AssetRef, media.Options{Width: 1200})
		view.ImageAlt = post.MainImage.Alt
		if view.ImageAlt == "" {
			view.ImageAlt = post.Title
		}
	}

	pageURL := p.baseURL + "/blog/" + slugParam
	pg := p.page(post.MetaTitle(), post.MetaDescription(), "/blog/"+slugParam)
	pg.JSONLD = seo.Article(post.Title, post.MetaDescription(), pageURL, view.ImageURL, post.PublishedAt)
	pg.Data = view
	p.serve(w, http.StatusOK, "blog_post", pg)
}
