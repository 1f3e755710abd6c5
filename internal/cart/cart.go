// Package cart aggregates a customer's selected menu items for the
// active session: quantities, line totals, and the tax-inclusive
// grand total used at checkout.
package cart

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/menu"
)

// ErrItemUnavailable is returned when adding an item whose lifecycle
// status is not active.
var ErrItemUnavailable = errors.New("menu item is not available")

// Line is one menu item with its selected quantity. Quantity is always
// at least 1; a line that would drop to 0 is removed instead.
type Line struct {
	Item     menu.Item `json:"item"`
	Quantity int       `json:"quantity"`
}

// Total returns the line total (price × quantity).
func (l Line) Total() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the session's lines in the order items were first added.
// It is owned by a single session; callers serialize access.
type Cart struct {
	lines   []Line
	taxRate decimal.Decimal
}

// New creates an empty cart with the given tax rate (e.g. 0.08).
func New(taxRate decimal.Decimal) *Cart {
	return &Cart{taxRate: taxRate}
}

// Add puts one portion of item into the cart, incrementing the
// quantity if a line for it already exists. Items that are inactive or
// out of stock are rejected.
func (c *Cart) Add(item menu.Item) (Line, error) {
	if item.Status != enum.ItemStatusActive {
		return Line{}, ErrItemUnavailable
	}

	if i, ok := c.find(item.ID); ok {
		c.lines[i].Quantity++
		return c.lines[i], nil
	}

	line := Line{Item: item, Quantity: 1}
	c.lines = append(c.lines, line)
	return line, nil
}

// SetQuantity sets the quantity of an existing line. A quantity of 0
// or below removes the line. Setting the same quantity twice is a
// no-op the second time. Unknown ids are ignored.
func (c *Cart) SetQuantity(id uuid.UUID, quantity int) {
	i, ok := c.find(id)
	if !ok {
		return
	}
	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = quantity
}

// Remove deletes a line unconditionally. Removing an id that is not in
// the cart is a no-op.
func (c *Cart) Remove(id uuid.UUID) {
	if i, ok := c.find(id); ok {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Clear empties the cart. Called after a successful checkout and on
// logout.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// ItemCount is the total number of portions across all lines; shown on
// the cart badge.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of all line totals before tax.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// Tax is the subtotal multiplied by the configured tax rate.
func (c *Cart) Tax() decimal.Decimal {
	return c.Subtotal().Mul(c.taxRate)
}

// Total is the single canonical amount the customer pays:
// subtotal plus tax.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.Tax())
}

func (c *Cart) find(id uuid.UUID) (int, bool) {
	for i, l := range c.lines {
		if l.Item.ID == id {
			return i, true
		}
	}
	return 0, false
}
