package cart

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/scantoserve/scantoserve/internal/catalog"
)

// TaxRate is applied on the cart subtotal.
var TaxRate = decimal.NewFromFloat(0.08)

// CartLine is one merged entry in the cart: an item, its resolved
// customizations, and a quantity. ID is the canonical merge key.
type CartLine struct {
	ID         string     `json:"id"`
	ItemID     string     `json:"item_id"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	ImageURL   string     `json:"image_url"`
	Selections Selections `json:"selections,omitempty"`
	Quantity   int        `json:"quantity"`
}

// Totals is the priced summary of a cart, rounded to two decimals.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Cart holds the line items for one session. Mutations are serialized
// under a single lock so concurrent adds never lose an increment.
type Cart struct {
	mu    sync.Mutex
	lines []*CartLine
}

func New() *Cart {
	return &Cart{}
}

// AddOrMerge resolves the selections against the item and either bumps the
// quantity of the matching line or appends a new line with quantity 1.
func (c *Cart) AddOrMerge(item catalog.MenuItem, requested Selections) ([]CartLine, error) {
	resolved, err := Resolve(item, requested)
	if err != nil {
		return nil, fmt.Errorf("cannot add item %s: %w", item.ID, err)
	}
	key := CanonicalKey(item.ID, resolved)

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range c.lines {
		if line.ID == key {
			line.Quantity++
			return c.snapshot(), nil
		}
	}

	c.lines = append(c.lines, &CartLine{
		ID:         key,
		ItemID:     item.ID,
		Name:       item.Name,
		Price:      item.Price,
		ImageURL:   item.ImageURL,
		Selections: resolved,
		Quantity:   1,
	})
	return c.snapshot(), nil
}

// SetQuantity replaces the line's quantity. A quantity of zero or less
// removes the line entirely.
func (c *Cart) SetQuantity(lineID string, quantity int) []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, line := range c.lines {
		if line.ID != lineID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			line.Quantity = quantity
		}
		break
	}
	return c.snapshot()
}

// Clear empties the cart.
func (c *Cart) Clear() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	return c.snapshot()
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot()
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.lines) == 0
}

// Totals recomputes subtotal, tax and total from the current lines.
// Nothing is cached between calls.
func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := decimal.Zero
	for _, line := range c.lines {
		price := decimal.NewFromFloat(line.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	tax := subtotal.Mul(TaxRate).Round(2)
	return Totals{
		Subtotal: subtotal.Round(2),
		Tax:      tax,
		Total:    subtotal.Add(tax).Round(2),
	}
}

// snapshot copies the lines; caller must hold the lock.
func (c *Cart) snapshot() []CartLine {
	out := make([]CartLine, len(c.lines))
	for i, line := range c.lines {
		out[i] = *line
	}
	return out
}
