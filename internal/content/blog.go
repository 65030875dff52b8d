// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"

	"steelgate/internal/models"
)

const postProjection = `{
	_id,
	title,
	slug,
	excerpt,
	publishedAt,
	body,
	seo{ metaTitle, metaDescription },
	"mainImage": mainImage{ "url": asset->url, "assetRef": asset._ref, alt }
}`

// Posts returns all blog posts, newest first.
func (c *Client) Posts(ctx context.Context) ([]models.BlogPost, error) {
	var out []models.BlogPost
	err := c.Fetch(ctx, `*[_type == "post"] | order(publishedAt desc)`+postProjection, nil, &out)
	return out, err
}

// PostBySlug returns a single blog post, or nil when no post has the slug.
func (c *Client) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var out models.BlogPost
	err := c.Fetch(ctx, `*[_type == "post" && slug.current == $slug][0]`+postProjection,
		map[string]string{"slug": slug}, &out)
	if err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}
