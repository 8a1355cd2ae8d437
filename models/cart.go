package models

import "fmt"

// CartLine is one selected menu item. UnitPrice is the price the customer
// saw when the line was added; checkout copies it into price_at_order and
// never re-reads the live menu price.
type CartLine struct {
	MenuItemID uint    `json:"menu_item_id"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

// CartSnapshot is the read-only view handed to checkout: the lines in
// insertion order plus the computed subtotal.
type CartSnapshot struct {
	Lines    []CartLine `json:"lines"`
	Subtotal float64    `json:"subtotal"`
}

func (s CartSnapshot) Empty() bool {
	return len(s.Lines) == 0
}

// Cart is a session-local value object. It is never persisted; it only
// exists between adding the first item and checkout (or abandonment).
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddLine appends a line, or merges into an existing line for the same
// menu item by summing quantities.
func (c *Cart) AddLine(menuItemID uint, unitPrice float64, quantity int) error {
	if quantity < 1 {
		return &ValidationError{Message: fmt.Sprintf("quantity must be at least 1, got %d", quantity)}
	}
	if unitPrice < 0 {
		return &ValidationError{Message: fmt.Sprintf("unit price must not be negative, got %.2f", unitPrice)}
	}
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, CartLine{
		MenuItemID: menuItemID,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
	})
	return nil
}

// UpdateQuantity replaces the quantity of an existing line. A result of
// zero or less is rejected; callers remove the line instead.
func (c *Cart) UpdateQuantity(menuItemID uint, quantity int) error {
	if quantity < 1 {
		return &ValidationError{Message: "quantity must be at least 1, remove the line instead"}
	}
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return &ValidationError{Message: fmt.Sprintf("menu item %d is not in the cart", menuItemID)}
}

func (c *Cart) RemoveLine(menuItemID uint) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Snapshot copies the lines so later cart mutations cannot leak into an
// in-flight checkout.
func (c *Cart) Snapshot() CartSnapshot {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)

	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	return CartSnapshot{Lines: lines, Subtotal: subtotal}
}
