package catalog

import (
	"restaurant-pos/models"
)

// Catalog is the fixed menu supplied at process start. It is built
// once and never mutated; the core and both presentation layers only
// read from it. Item order is the order the source listed them in.
type Catalog struct {
	items []models.MenuItem
	byID  map[string]models.MenuItem
}

func New(items []models.MenuItem) *Catalog {
	c := &Catalog{
		items: make([]models.MenuItem, len(items)),
		byID:  make(map[string]models.MenuItem, len(items)),
	}
	copy(c.items, items)
	for _, it := range c.items {
		c.byID[it.ID] = it
	}
	return c
}

// Items returns all items in catalog order.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory returns the items of one category, catalog order preserved.
func (c *Catalog) ByCategory(cat models.Category) []models.MenuItem {
	var out []models.MenuItem
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

func (c *Catalog) Get(id string) (models.MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

func (c *Catalog) Len() int {
	return len(c.items)
}
