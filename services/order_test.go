package services

import (
	"testing"

	"restaurant-pos/models"
)

func TestCreateOrder_EmptyCart(t *testing.T) {
	cart := NewCart()
	order, err := CreateOrder(cart, models.OrderTypeDineIn)
	if err != ErrEmptyCart {
		t.Fatalf("CreateOrder on empty cart: err = %v, want ErrEmptyCart", err)
	}
	if order != nil {
		t.Errorf("CreateOrder on empty cart returned an order: %+v", order)
	}
	if cart.Len() != 0 {
		t.Errorf("empty-cart rejection must leave the cart unchanged, got %d lines", cart.Len())
	}
}

func TestCreateOrder_Snapshot(t *testing.T) {
	cart := NewCart()
	cart.AddItem(models.MenuItem{ID: "a", Name: "Paneer Tikka", Price: 100})
	cart.AddItem(models.MenuItem{ID: "a", Name: "Paneer Tikka", Price: 100})
	cart.AddItem(models.MenuItem{ID: "b", Name: "Masala Chai", Price: 50})

	order, err := CreateOrder(cart, models.OrderTypeTakeaway)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("new order status = %q, want pending", order.Status)
	}
	if order.Type != models.OrderTypeTakeaway {
		t.Errorf("order type = %q, want takeaway", order.Type)
	}
	if order.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
	if len(order.Lines) != 2 || order.Lines[0].Item.ID != "a" || order.Lines[0].Qty != 2 {
		t.Errorf("snapshot lines wrong: %+v", order.Lines)
	}
	if order.Totals.Total != 295 {
		t.Errorf("snapshot total = %v, want 295", order.Totals.Total)
	}

	// The factory must not clear the cart; that is the caller's job.
	if cart.Len() != 2 {
		t.Errorf("CreateOrder mutated the cart: %d lines", cart.Len())
	}

	// Snapshot independence: later cart mutations must not leak into
	// the order.
	cart.AddItem(models.MenuItem{ID: "a", Name: "Paneer Tikka", Price: 100})
	cart.Clear()
	if len(order.Lines) != 2 || order.Lines[0].Qty != 2 {
		t.Errorf("order lines changed after cart mutation: %+v", order.Lines)
	}
}

func TestCreateOrder_UniqueIDs(t *testing.T) {
	cart := NewCart()
	cart.AddItem(models.MenuItem{ID: "a", Price: 10})

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		order, err := CreateOrder(cart, models.OrderTypeDineIn)
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		if seen[order.ID] {
			t.Fatalf("duplicate order id %q after %d orders", order.ID, i)
		}
		seen[order.ID] = true
	}
}

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.OrderStatusPending, models.OrderStatusPreparing, true},
		{models.OrderStatusPending, models.OrderStatusReady, false},
		{models.OrderStatusPending, models.OrderStatusCompleted, false},
		{models.OrderStatusPreparing, models.OrderStatusReady, true},
		{models.OrderStatusPreparing, models.OrderStatusPending, false},
		{models.OrderStatusPreparing, models.OrderStatusCompleted, false},
		{models.OrderStatusReady, models.OrderStatusCompleted, true},
		{models.OrderStatusReady, models.OrderStatusPreparing, false},
		{models.OrderStatusCompleted, models.OrderStatusPending, false},
		{"", models.OrderStatusPending, false},
		{models.OrderStatusPending, "", false},
	}
	for _, tt := range tests {
		got := ValidStatusTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAdvanceOrder(t *testing.T) {
	cart := NewCart()
	cart.AddItem(models.MenuItem{ID: "a", Price: 10})
	order, _ := CreateOrder(cart, models.OrderTypeDineIn)

	if err := AdvanceOrder(order, models.OrderStatusCompleted); err == nil {
		t.Error("pending -> completed should be rejected")
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("failed advance changed status to %q", order.Status)
	}
	for _, next := range []string{models.OrderStatusPreparing, models.OrderStatusReady, models.OrderStatusCompleted} {
		if err := AdvanceOrder(order, next); err != nil {
			t.Fatalf("AdvanceOrder(%s): %v", next, err)
		}
	}
	if order.Status != models.OrderStatusCompleted {
		t.Errorf("status after full chain = %q, want completed", order.Status)
	}
}
