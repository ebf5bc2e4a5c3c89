package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"restaurant-pos/models"

	"gopkg.in/yaml.v3"
)

// Embed the default menu so the terminal works with no DB and no
// config, regardless of the current working directory.
//
//go:embed menu.yaml
var defaultMenu []byte

type menuItemYAML struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
	Available   *bool   `yaml:"available"` // nil means available
}

type menuFileYAML struct {
	Items []menuItemYAML `yaml:"items"`
}

// LoadFile reads a menu from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	c, err := parseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse menu file %s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := parseYAML(defaultMenu)
	if err != nil {
		// The embedded menu is part of the build; a parse failure is a
		// packaging bug, not a runtime condition.
		panic(fmt.Sprintf("embedded menu: %v", err))
	}
	return c
}

func parseYAML(data []byte) (*Catalog, error) {
	var f menuFileYAML
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	items := make([]models.MenuItem, 0, len(f.Items))
	for i, y := range f.Items {
		if y.ID == "" {
			return nil, fmt.Errorf("item %d: id is required", i)
		}
		if y.Name == "" {
			return nil, fmt.Errorf("item %s: name is required", y.ID)
		}
		if y.Price < 0 {
			return nil, fmt.Errorf("item %s: price must be >= 0", y.ID)
		}
		available := true
		if y.Available != nil {
			available = *y.Available
		}
		items = append(items, models.MenuItem{
			ID:          y.ID,
			Name:        y.Name,
			Price:       y.Price,
			Category:    models.Category(y.Category),
			Description: y.Description,
			Available:   available,
		})
	}
	return New(items), nil
}
