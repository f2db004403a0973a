// Package catalog holds the restaurant's fixed menu: categories and the items in them.
//
// A Catalog is built once at startup and is read-only afterwards. Accessors
// return copies so callers cannot mutate the shared seed.
package catalog

import (
	_ "embed"
	"fmt"

	"foodie-site-api/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type categoryDoc struct {
	ID          int64   `yaml:"id"`
	Name        string  `yaml:"name"`
	Slug        string  `yaml:"slug"`
	BannerImage string  `yaml:"bannerImage"`
	Description *string `yaml:"description"`
}

type itemDoc struct {
	ID           int64   `yaml:"id"`
	CategoryID   int64   `yaml:"categoryId"`
	Name         string  `yaml:"name"`
	Price        int     `yaml:"price"`
	Description  *string `yaml:"description"`
	ImageURL     string  `yaml:"imageUrl"`
	IsVeg        *bool   `yaml:"isVeg"`
	IsBestseller bool    `yaml:"isBestseller"`
}

type document struct {
	Categories []categoryDoc `yaml:"categories"`
	Items      []itemDoc     `yaml:"items"`
}

type Catalog struct {
	categories []models.Category
	items      []models.MenuItem
	bySlug     map[string]int
	byID       map[int64]int
}

// Load parses the catalog embedded in the binary.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse builds a Catalog from YAML. Items default to veg and get a generated
// description when none is given.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		bySlug: make(map[string]int, len(doc.Categories)),
		byID:   make(map[int64]int, len(doc.Categories)),
	}
	for _, d := range doc.Categories {
		if d.ID <= 0 || d.Slug == "" || d.Name == "" {
			return nil, fmt.Errorf("category %d: id, name and slug are required", d.ID)
		}
		if _, dup := c.bySlug[d.Slug]; dup {
			return nil, fmt.Errorf("duplicate category slug %q", d.Slug)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %d", d.ID)
		}
		c.bySlug[d.Slug] = len(c.categories)
		c.byID[d.ID] = len(c.categories)
		c.categories = append(c.categories, models.Category{
			ID:          d.ID,
			Name:        d.Name,
			Slug:        d.Slug,
			BannerImage: d.BannerImage,
			Description: d.Description,
		})
	}

	itemIDs := make(map[int64]bool, len(doc.Items))
	for _, d := range doc.Items {
		if itemIDs[d.ID] || d.ID <= 0 {
			return nil, fmt.Errorf("item %q: id %d is missing or duplicated", d.Name, d.ID)
		}
		if _, ok := c.byID[d.CategoryID]; !ok {
			return nil, fmt.Errorf("item %q: unknown category %d", d.Name, d.CategoryID)
		}
		if d.Price < 0 {
			return nil, fmt.Errorf("item %q: negative price", d.Name)
		}
		itemIDs[d.ID] = true

		desc := d.Description
		if desc == nil {
			s := "Delicious " + d.Name + " prepared with fresh ingredients."
			desc = &s
		}
		isVeg := true
		if d.IsVeg != nil {
			isVeg = *d.IsVeg
		}
		c.items = append(c.items, models.MenuItem{
			ID:           d.ID,
			CategoryID:   d.CategoryID,
			Name:         d.Name,
			Price:        d.Price,
			Description:  desc,
			ImageURL:     d.ImageURL,
			IsVeg:        isVeg,
			IsBestseller: d.IsBestseller,
		})
	}
	return c, nil
}

// Categories returns every category in catalog order.
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) CategoryBySlug(slug string) (models.Category, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return models.Category{}, false
	}
	return c.categories[i], true
}

func (c *Catalog) HasCategory(id int64) bool {
	_, ok := c.byID[id]
	return ok
}

// Items returns every menu item in catalog order.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemsInCategory never returns nil, so an empty category encodes as [].
func (c *Catalog) ItemsInCategory(id int64) []models.MenuItem {
	out := []models.MenuItem{}
	for _, it := range c.items {
		if it.CategoryID == id {
			out = append(out, it)
		}
	}
	return out
}
