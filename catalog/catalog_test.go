package catalog

import (
	"testing"

	"restaurant-pos/models"
)

func sample() []models.MenuItem {
	return []models.MenuItem{
		{ID: "s1", Name: "Soup", Price: 99, Category: models.CategoryStarters, Available: true},
		{ID: "m1", Name: "Curry", Price: 250, Category: models.CategoryMains, Available: true},
		{ID: "s2", Name: "Salad", Price: 120, Category: models.CategoryStarters, Available: false},
		{ID: "d1", Name: "Kheer", Price: 80, Category: models.CategoryDesserts, Available: true},
	}
}

func TestCatalog_Order(t *testing.T) {
	c := New(sample())
	items := c.Items()
	if len(items) != 4 {
		t.Fatalf("Items len = %d, want 4", len(items))
	}
	for i, want := range []string{"s1", "m1", "s2", "d1"} {
		if items[i].ID != want {
			t.Errorf("items[%d] = %s, want %s (source order must be kept)", i, items[i].ID, want)
		}
	}
}

func TestCatalog_ByCategory(t *testing.T) {
	c := New(sample())
	starters := c.ByCategory(models.CategoryStarters)
	if len(starters) != 2 || starters[0].ID != "s1" || starters[1].ID != "s2" {
		t.Errorf("ByCategory(starters) = %+v, want [s1 s2] in order", starters)
	}
	if got := c.ByCategory(models.CategoryBeverages); len(got) != 0 {
		t.Errorf("ByCategory(beverages) = %+v, want empty", got)
	}
}

func TestCatalog_Get(t *testing.T) {
	c := New(sample())
	it, ok := c.Get("m1")
	if !ok || it.Name != "Curry" {
		t.Errorf("Get(m1) = %+v, %v", it, ok)
	}
	if _, ok := c.Get("nope"); ok {
		t.Error("Get(nope) found something")
	}
}

func TestCatalog_ItemsIsACopy(t *testing.T) {
	c := New(sample())
	items := c.Items()
	items[0].Price = 1
	if got, _ := c.Get("s1"); got.Price != 99 {
		t.Error("mutating the Items() result leaked into the catalog")
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
items:
  - id: x1
    name: Thing
    price: 10.5
    category: mains
  - id: x2
    name: Other
    price: 0
    category: beverages
    available: false
`)
	c, err := parseYAML(data)
	if err != nil {
		t.Fatalf("parseYAML: %v", err)
	}
	x1, _ := c.Get("x1")
	if !x1.Available {
		t.Error("availability should default to true")
	}
	if x1.Price != 10.5 || x1.Category != models.CategoryMains {
		t.Errorf("x1 = %+v", x1)
	}
	x2, _ := c.Get("x2")
	if x2.Available {
		t.Error("explicit available: false ignored")
	}
}

func TestParseYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "items:\n  - name: X\n    price: 1\n    category: mains\n"},
		{"missing name", "items:\n  - id: x\n    price: 1\n    category: mains\n"},
		{"negative price", "items:\n  - id: x\n    name: X\n    price: -1\n    category: mains\n"},
		{"not yaml", "items: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseYAML([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefaultMenu(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("embedded menu is empty")
	}
	for _, it := range c.Items() {
		if !it.Category.Valid() {
			t.Errorf("item %s has unknown category %q", it.ID, it.Category)
		}
		if it.Price < 0 {
			t.Errorf("item %s has negative price", it.ID)
		}
	}
	// Every category is represented so the filter bar is never empty.
	for _, cat := range models.Categories() {
		if len(c.ByCategory(cat)) == 0 {
			t.Errorf("embedded menu has no %s", cat)
		}
	}
}
