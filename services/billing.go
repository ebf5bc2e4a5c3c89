package services

import (
	"restaurant-pos/models"
)

// GSTRate is the fixed tax surcharge applied to the subtotal.
const GSTRate = 0.18

// ComputeTotals derives the bill from the cart lines. Pure: same cart,
// same totals, and the cart is never touched. All math stays in full
// float64 precision; two-place rounding happens only when an amount is
// formatted for display, so repeated additions do not compound
// rounding error.
func ComputeTotals(c *Cart) models.BillTotals {
	var subtotal float64
	for _, l := range c.Lines() {
		subtotal += l.Item.Price * float64(l.Qty)
	}
	tax := subtotal * GSTRate
	discount := 0.0 // reserved: no discount scheme exists yet
	return models.BillTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal + tax - discount,
	}
}
