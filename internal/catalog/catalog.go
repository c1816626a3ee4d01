package catalog

import "fmt"

// Catalog is an in-memory index over the restaurant profile and menu.
// Items are immutable after construction so reads need no locking.
type Catalog struct {
	restaurant Restaurant
	items      []MenuItem
	byID       map[string]MenuItem
}

// New builds a catalog from a restaurant profile and its menu.
func New(restaurant Restaurant, items []MenuItem) *Catalog {
	byID := make(map[string]MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Catalog{
		restaurant: restaurant,
		items:      items,
		byID:       byID,
	}
}

// NewDefault builds a catalog over the built-in restaurant and menu.
func NewDefault() *Catalog {
	return New(DefaultRestaurant, DefaultMenu)
}

// Restaurant returns the venue profile.
func (c *Catalog) Restaurant() Restaurant {
	return c.restaurant
}

// Items returns all menu items in display order.
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemsByCategory returns items in the given category, in display order.
func (c *Catalog) ItemsByCategory(category string) []MenuItem {
	var out []MenuItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Categories returns the distinct categories in display order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range c.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

// Item returns the menu item with the given ID.
func (c *Catalog) Item(id string) (MenuItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return MenuItem{}, fmt.Errorf("menu item not found: %s", id)
	}
	return item, nil
}
