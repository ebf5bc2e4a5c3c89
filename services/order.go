package services

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"restaurant-pos/models"
)

// ErrEmptyCart is returned by CreateOrder for a cart with no lines,
// the one validation rule in the core.
var ErrEmptyCart = errors.New("cart is empty")

var orderSeq atomic.Int64

// nextOrderID builds an id unique within this process: wall clock in
// millis plus a counter, so two checkouts in the same millisecond
// still differ.
func nextOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%04d", now.UnixMilli(), orderSeq.Add(1))
}

// CreateOrder snapshots the cart into an immutable pending order.
// The cart itself is left untouched: clearing it after the order is
// accepted downstream is the caller's job.
func CreateOrder(cart *Cart, orderType string) (*models.Order, error) {
	if cart.Len() == 0 {
		return nil, ErrEmptyCart
	}
	now := time.Now()
	return &models.Order{
		ID:        nextOrderID(now),
		Type:      orderType,
		Lines:     cart.Lines(),
		Totals:    ComputeTotals(cart),
		Status:    models.OrderStatusPending,
		CreatedAt: now,
	}, nil
}

// ValidStatusTransition reports whether an order may move from one
// status to the next. The kitchen chain is strictly forward:
// pending -> preparing -> ready -> completed.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusPreparing
	case models.OrderStatusPreparing:
		return to == models.OrderStatusReady
	case models.OrderStatusReady:
		return to == models.OrderStatusCompleted
	default:
		return false
	}
}

// AdvanceOrder moves the order one step along the kitchen chain.
func AdvanceOrder(o *models.Order, to string) error {
	if !ValidStatusTransition(o.Status, to) {
		return fmt.Errorf("invalid status transition: %s -> %s", o.Status, to)
	}
	o.Status = to
	return nil
}
