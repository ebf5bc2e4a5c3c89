package services

import (
	"restaurant-pos/models"
)

// Cart is the current order in progress: an ordered list of lines,
// one per distinct menu item, first-added item first. It lives in
// memory only and is owned by a single presentation session, so there
// is no locking here: one logical actor per cart.
type Cart struct {
	lines []models.OrderLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts one unit of the item into the cart: an existing line
// gains quantity, otherwise a new line is appended. Availability is a
// display concern and is not checked here.
func (c *Cart) AddItem(item models.MenuItem) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, models.OrderLine{Item: item, Qty: 1})
}

// RemoveItem takes one unit of the item out of the cart. A line at
// quantity 1 is deleted outright; quantity never reaches 0. Removing
// an id that is not in the cart is a no-op.
func (c *Cart) RemoveItem(menuItemID string) {
	for i := range c.lines {
		if c.lines[i].Item.ID != menuItemID {
			continue
		}
		if c.lines[i].Qty > 1 {
			c.lines[i].Qty--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// SetNote attaches free text to an existing line ("no onions").
// Unknown id is a no-op, same as RemoveItem.
func (c *Cart) SetNote(menuItemID, note string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == menuItemID {
			c.lines[i].Note = note
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []models.OrderLine {
	out := make([]models.OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Quantity returns the quantity for a menu item id, 0 when absent.
func (c *Cart) Quantity(menuItemID string) int {
	for _, l := range c.lines {
		if l.Item.ID == menuItemID {
			return l.Qty
		}
	}
	return 0
}

// UnitCount is the total number of units across all lines (the cart
// badge number in the header).
func (c *Cart) UnitCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}
