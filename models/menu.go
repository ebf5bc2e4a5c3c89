package models

// Category is the closed set of menu sections.
type Category string

const (
	CategoryStarters  Category = "starters"
	CategoryMains     Category = "mains"
	CategoryDesserts  Category = "desserts"
	CategoryBeverages Category = "beverages"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryStarters, CategoryMains, CategoryDesserts, CategoryBeverages}
}

var categoryLabels = map[Category]string{
	CategoryStarters:  "Starters",
	CategoryMains:     "Main Course",
	CategoryDesserts:  "Desserts",
	CategoryBeverages: "Beverages",
}

var categoryIcons = map[Category]string{
	CategoryStarters:  "🥗",
	CategoryMains:     "🍛",
	CategoryDesserts:  "🍰",
	CategoryBeverages: "🥤",
}

// Label returns the display name for the category; unknown values fall
// back to the raw string so a bad catalog row still renders.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Icon returns the display icon for the category, "🍽" when unknown.
func (c Category) Icon() string {
	if i, ok := categoryIcons[c]; ok {
		return i
	}
	return "🍽"
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

type MenuItem struct {
	ID          string
	Name        string
	Price       float64 // rupees; non-negative, full precision internally
	Category    Category
	Description string
	Available   bool
}
