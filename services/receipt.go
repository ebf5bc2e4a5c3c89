package services

import (
	"fmt"
	"strings"

	"restaurant-pos/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CardButton is one inline button (text + callback data).
type CardButton struct {
	Text         string
	CallbackData string
}

// CardContent is presentation-neutral text plus an optional button
// grid; the bot turns it into a Telegram inline keyboard, the TUI
// renders the text and maps the buttons to keys.
type CardContent struct {
	Text    string
	Buttons [][]CardButton
}

var rupees = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount renders a monetary value for display. This is the only
// place two-decimal rounding happens; everything upstream keeps full
// precision.
func FormatAmount(v float64) string {
	return rupees.Sprintf("₹%.2f", v)
}

// ShortOrderID is the tail of the order id shown on printed bills.
func ShortOrderID(id string) string {
	if len(id) <= 6 {
		return strings.ToUpper(id)
	}
	return strings.ToUpper(id[len(id)-6:])
}

// OrderTypeLabel maps the order type tag to its display name.
func OrderTypeLabel(orderType string) string {
	switch orderType {
	case models.OrderTypeDineIn:
		return "Dine-In"
	case models.OrderTypeTakeaway:
		return "Takeaway"
	default:
		return orderType
	}
}

// StatusLabel maps an order status to its display name.
func StatusLabel(status string) string {
	switch status {
	case models.OrderStatusPending:
		return "Pending"
	case models.OrderStatusPreparing:
		return "Preparing"
	case models.OrderStatusReady:
		return "Ready"
	case models.OrderStatusCompleted:
		return "Completed"
	default:
		return status
	}
}

func writeLines(b *strings.Builder, lines []models.OrderLine) {
	for _, l := range lines {
		fmt.Fprintf(b, "• %s × %d — %s\n", l.Item.Name, l.Qty, FormatAmount(l.Amount()))
		if l.Note != "" {
			fmt.Fprintf(b, "  ✎ %s\n", l.Note)
		}
	}
}

func writeTotals(b *strings.Builder, t models.BillTotals) {
	fmt.Fprintf(b, "Subtotal: %s\n", FormatAmount(t.Subtotal))
	fmt.Fprintf(b, "GST (18%%): %s\n", FormatAmount(t.Tax))
	if t.Discount > 0 {
		fmt.Fprintf(b, "Discount: -%s\n", FormatAmount(t.Discount))
	}
	fmt.Fprintf(b, "*Total: %s*", FormatAmount(t.Total))
}

// BuildCartSummary renders the in-progress cart: lines plus the
// derived totals block. Empty cart gets the empty-state text from the
// original screen.
func BuildCartSummary(cart *Cart) string {
	if cart.Len() == 0 {
		return "🛒 Your order is empty.\nAdd some items from our kitchen!"
	}
	b := &strings.Builder{}
	b.WriteString("🛒 *Order Summary*\n\n")
	writeLines(b, cart.Lines())
	b.WriteString("\n")
	writeTotals(b, ComputeTotals(cart))
	return b.String()
}

// BuildBillCard renders the payable bill for a finalized order, with
// one button per payment method.
func BuildBillCard(restaurantName string, o *models.Order) CardContent {
	b := &strings.Builder{}
	fmt.Fprintf(b, "🧾 *%s*\n", restaurantName)
	fmt.Fprintf(b, "Order #%s · %s\n", ShortOrderID(o.ID), OrderTypeLabel(o.Type))
	fmt.Fprintf(b, "%s\n\n", o.CreatedAt.Format("02 Jan 2006, 03:04 PM"))
	b.WriteString("*Items Ordered*\n")
	writeLines(b, o.Lines)
	b.WriteString("\n")
	writeTotals(b, o.Totals)

	buttons := [][]CardButton{
		{
			{Text: "💵 Cash", CallbackData: "pay:" + models.PaymentCash},
			{Text: "💳 Card", CallbackData: "pay:" + models.PaymentCard},
			{Text: "📱 UPI", CallbackData: "pay:" + models.PaymentUPI},
		},
		{{Text: "⬅ Back to cart", CallbackData: "cart"}},
	}
	return CardContent{Text: b.String(), Buttons: buttons}
}

// BuildPaymentConfirmation is the toast text after a bill is settled.
func BuildPaymentConfirmation(bill *models.Bill) string {
	return fmt.Sprintf("Payment of %s processed via %s.",
		FormatAmount(bill.Order.Totals.Total), strings.ToUpper(bill.PaymentMethod))
}
