package models

import "testing"

func TestCategoryDisplayMaps(t *testing.T) {
	// Every category in the closed set has a real label and icon.
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("Categories() returned invalid %q", c)
		}
		if c.Label() == string(c) {
			t.Errorf("category %q has no display label", c)
		}
		if c.Icon() == "🍽" {
			t.Errorf("category %q falls back to the default icon", c)
		}
	}
}

func TestCategoryFallback(t *testing.T) {
	bad := Category("tapas")
	if bad.Valid() {
		t.Error("unknown category reported valid")
	}
	if bad.Label() != "tapas" {
		t.Errorf("unknown label = %q, want raw value", bad.Label())
	}
	if bad.Icon() != "🍽" {
		t.Errorf("unknown icon = %q, want fallback", bad.Icon())
	}
}

func TestOrderLineAmount(t *testing.T) {
	l := OrderLine{Item: MenuItem{Price: 12.5}, Qty: 3}
	if got := l.Amount(); got != 37.5 {
		t.Errorf("Amount = %v, want 37.5", got)
	}
}
