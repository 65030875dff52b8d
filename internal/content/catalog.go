// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"

	"steelgate/internal/models"
)

// Machine queries project the store's historical machine shapes into the one
// canonical record, dereferencing parent category/subcategory slugs and
// resolving image assets to CDN URLs.
const machineProjection = `{
	_id,
	name,
	brand,
	yearOfMfg,
	stockNumber,
	slug,
	_updatedAt,
	specifications,
	"videoUrl": videoUrl,
	"images": images[]{ "url": asset->url, "assetRef": asset._ref, alt },
	"categorySlug": category->slug.current,
	"categoryName": category->name,
	"subcategorySlug": subcategory->slug.current,
	"subcategoryName": subcategory->name
}`

// Categories returns all catalog categories, ordered by name.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.Fetch(ctx, `*[_type == "category"] | order(name asc){ _id, name, slug, _updatedAt }`, nil, &out)
	return out, err
}

// CategoryBySlug returns a single category, or nil when no category has
// the given slug.
func (c *Client) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var out models.Category
	err := c.Fetch(ctx,
		`*[_type == "category" && slug.current == $slug][0]{ _id, name, slug, _updatedAt }`,
		map[string]string{"slug": slug}, &out)
	if err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

// Subcategories returns all subcategories with their parent references,
// for the inventory index grid.
func (c *Client) Subcategories(ctx context.Context) ([]models.Subcategory, error) {
	var out []models.Subcategory
	err := c.Fetch(ctx, `*[_type == "subcategory"] | order(name asc){
		_id, name, slug, _updatedAt,
		"parentCategoryRef": parentCategory._ref,
		"categorySlug": parentCategory->slug.current
	}`, nil, &out)
	return out, err
}

// SubcategoriesOf returns the subcategories of one category, ordered by name.
func (c *Client) SubcategoriesOf(ctx context.Context, categorySlug string) ([]models.Subcategory, error) {
	var out []models.Subcategory
	err := c.Fetch(ctx, `*[_type == "subcategory" && parentCategory->slug.current == $slug] | order(name asc){
		_id, name, slug, _updatedAt,
		"categorySlug": parentCategory->slug.current
	}`, map[string]string{"slug": categorySlug}, &out)
	return out, err
}

// SubcategoryBySlug returns one subcategory matched by its own slug and its
// parent category's slug, or nil when absent.
func (c *Client) SubcategoryBySlug(ctx context.Context, categorySlug, subcategorySlug string) (*models.Subcategory, error) {
	var out models.Subcategory
	err := c.Fetch(ctx, `*[_type == "subcategory" && slug.current == $sub && parentCategory->slug.current == $cat][0]{
		_id, name, slug, _updatedAt,
		"categorySlug": parentCategory->slug.current
	}`, map[string]string{"cat": categorySlug, "sub": subcategorySlug}, &out)
	if err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

// MachinesIn returns all machines of a subcategory, newest year first.
// Brand and year-bucket filtering happen in-process (internal/catalog) over
// this full result set.
func (c *Client) MachinesIn(ctx context.Context, categorySlug, subcategorySlug string) ([]models.Machine, error) {
	var out []models.Machine
	err := c.Fetch(ctx,
		`*[_type == "machine" && subcategory->slug.current == $sub && category->slug.current == $cat] | order(yearOfMfg desc)`+machineProjection,
		map[string]string{"cat": categorySlug, "sub": subcategorySlug}, &out)
	return out, err
}

// MachineBySlugs returns one machine matched by the full category /
// subcategory / machine slug triple, or nil when no machine matches.
func (c *Client) MachineBySlugs(ctx context.Context, categorySlug, subcategorySlug, machineSlug string) (*models.Machine, error) {
	var out models.Machine
	err := c.Fetch(ctx,
		`*[_type == "machine" && slug.current == $machine && subcategory->slug.current == $sub && category->slug.current == $cat][0]`+machineProjection,
		map[string]string{"cat": categorySlug, "sub": subcategorySlug, "machine": machineSlug}, &out)
	if err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

// RelatedMachines returns other machines sharing a subcategory with the
// given machine, for the "related machines" strip on detail pages.
func (c *Client) RelatedMachines(ctx context.Context, subcategorySlug, excludeID string) ([]models.Machine, error) {
	var out []models.Machine
	err := c.Fetch(ctx,
		`*[_type == "machine" && subcategory->slug.current == $sub && _id != $id] | order(yearOfMfg desc)[0...6]`+machineProjection,
		map[string]string{"sub": subcategorySlug, "id": excludeID}, &out)
	return out, err
}

// BrandNames returns the distinct non-empty brand names across all machines.
// Brands are not first-class documents in the store; the brand index is
// derived from machine records.
func (c *Client) BrandNames(ctx context.Context) ([]string, error) {
	var out []string
	err := c.Fetch(ctx, `array::unique(*[_type == "machine" && defined(brand)].brand) | order(@ asc)`, nil, &out)
	return out, err
}

// MachinesByBrand returns all machines of one brand, newest year first.
func (c *Client) MachinesByBrand(ctx context.Context, brand string) ([]models.Machine, error) {
	var out []models.Machine
	err := c.Fetch(ctx,
		`*[_type == "machine" && brand == $brand] | order(yearOfMfg desc)`+machineProjection,
		map[string]string{"brand": brand}, &out)
	return out, err
}

// AllMachines enumerates every machine with a complete slug path. Used by
// the sitemap generators, which need URLs, timestamps, and primary images
// for the whole catalog on every run.
func (c *Client) AllMachines(ctx context.Context) ([]models.Machine, error) {
	var out []models.Machine
	err := c.Fetch(ctx, `*[_type == "machine" && defined(slug.current) && defined(category->slug.current) && defined(subcategory->slug.current)]`+machineProjection, nil, &out)
	return out, err
}
