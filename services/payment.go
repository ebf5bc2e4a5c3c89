package services

import (
	"fmt"
	"time"

	"restaurant-pos/models"
)

// ValidPaymentMethod reports whether the tag is one of cash/card/upi.
func ValidPaymentMethod(method string) bool {
	switch method {
	case models.PaymentCash, models.PaymentCard, models.PaymentUPI:
		return true
	}
	return false
}

// SettleBill records the chosen payment method for an order and marks
// the order completed: billing and handover are one step at a single
// terminal, there is no kitchen pipeline in between. No money is
// processed: AmountPaid and Change stay zero until tendered cash is
// actually collected somewhere.
func SettleBill(o *models.Order, method string) (*models.Bill, error) {
	if !ValidPaymentMethod(method) {
		return nil, fmt.Errorf("unknown payment method: %s", method)
	}
	o.Status = models.OrderStatusCompleted
	return &models.Bill{
		Order:         o,
		PaymentMethod: method,
		PrintedAt:     time.Now(),
	}, nil
}
