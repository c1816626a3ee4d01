package catalog

// CustomizationType distinguishes single-choice from multi-choice groups.
type CustomizationType string

const (
	CustomizationRadio    CustomizationType = "radio"
	CustomizationCheckbox CustomizationType = "checkbox"
)

// CustomizationOption is one selectable choice within a group.
type CustomizationOption struct {
	Name string `json:"name"`
}

// Customization is a named group of options attached to a menu item.
// Radio groups require exactly one selection; checkbox groups allow any subset.
type Customization struct {
	Name    string                `json:"name"`
	Type    CustomizationType     `json:"type"`
	Options []CustomizationOption `json:"options"`
}

// MenuItem represents a dish, drink or any offerable product
type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	ImageURL       string          `json:"image_url"`
	Category       string          `json:"category"`
	Rating         int             `json:"rating"`
	Customizations []Customization `json:"customizations,omitempty"`
}

// HasCustomizations reports whether the item offers any customization groups.
func (m MenuItem) HasCustomizations() bool {
	return len(m.Customizations) > 0
}

// Customization returns the named group on the item, if any.
func (m MenuItem) Customization(name string) (Customization, bool) {
	for _, c := range m.Customizations {
		if c.Name == name {
			return c, true
		}
	}
	return Customization{}, false
}

// HasOption reports whether the group contains an option with the given name.
func (c Customization) HasOption(name string) bool {
	for _, o := range c.Options {
		if o.Name == name {
			return true
		}
	}
	return false
}

// Location is a geographic coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Restaurant is the venue profile served alongside the menu.
type Restaurant struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Location Location `json:"location"`
}
