package models

import "time"

const (
	OrderTypeDineIn   = "dine-in"
	OrderTypeTakeaway = "takeaway"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
)

const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// OrderLine is one menu item plus the quantity requested. A cart holds
// at most one line per menu item id; Qty is always >= 1.
type OrderLine struct {
	Item MenuItem
	Qty  int
	Note string
}

// Amount is the line total (unit price x quantity).
func (l OrderLine) Amount() float64 {
	return l.Item.Price * float64(l.Qty)
}

// BillTotals is derived from cart lines on every read, never stored.
type BillTotals struct {
	Subtotal float64
	Tax      float64 // GST, Subtotal * 0.18
	Discount float64 // reserved, always 0 for now
	Total    float64 // Subtotal + Tax - Discount
}

// Order is an immutable snapshot of a cart at checkout time. Only
// Status changes after construction, and only through the services
// transition helpers.
type Order struct {
	ID        string
	Type      string // dine-in | takeaway
	Lines     []OrderLine
	Totals    BillTotals
	Status    string
	CreatedAt time.Time

	TableNumber   string
	CustomerName  string
	CustomerPhone string
}

// Bill pairs a finished order with the chosen payment method.
// AmountPaid and Change are reserved: tendered cash is not collected
// anywhere in this system yet, so they stay zero.
type Bill struct {
	Order         *Order
	PaymentMethod string // cash | card | upi
	AmountPaid    float64
	Change        float64
	PrintedAt     time.Time
}
