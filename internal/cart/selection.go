package cart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scantoserve/scantoserve/internal/catalog"
)

// Selections maps a customization group name to the chosen option names.
// Single-choice groups hold exactly one entry, multi-choice groups any subset.
type Selections map[string][]string

// Resolve normalizes the requested selections against the item's
// customization groups. Missing single-choice groups default to the first
// listed option; missing multi-choice groups default to empty. A selection
// naming a group or option the item does not define is a configuration
// error and is rejected.
func Resolve(item catalog.MenuItem, requested Selections) (Selections, error) {
	for group := range requested {
		if _, ok := item.Customization(group); !ok {
			return nil, fmt.Errorf("item %s has no customization group %q", item.ID, group)
		}
	}

	resolved := make(Selections, len(item.Customizations))
	for _, group := range item.Customizations {
		chosen := requested[group.Name]
		for _, opt := range chosen {
			if !group.HasOption(opt) {
				return nil, fmt.Errorf("group %q on item %s has no option %q", group.Name, item.ID, opt)
			}
		}

		switch group.Type {
		case catalog.CustomizationRadio:
			if len(chosen) == 0 {
				resolved[group.Name] = []string{group.Options[0].Name}
				continue
			}
			if len(chosen) > 1 {
				return nil, fmt.Errorf("group %q on item %s allows a single option", group.Name, item.ID)
			}
			resolved[group.Name] = []string{chosen[0]}
		case catalog.CustomizationCheckbox:
			out := make([]string, len(chosen))
			copy(out, chosen)
			resolved[group.Name] = out
		default:
			return nil, fmt.Errorf("group %q on item %s has unknown type %q", group.Name, item.ID, group.Type)
		}
	}
	return resolved, nil
}

// ToggleSingle replaces the single-choice group's value with the option.
func ToggleSingle(item catalog.MenuItem, sel Selections, group, option string) error {
	g, ok := item.Customization(group)
	if !ok {
		return fmt.Errorf("item %s has no customization group %q", item.ID, group)
	}
	if g.Type != catalog.CustomizationRadio {
		return fmt.Errorf("group %q on item %s is not single-choice", group, item.ID)
	}
	if !g.HasOption(option) {
		return fmt.Errorf("group %q on item %s has no option %q", group, item.ID, option)
	}
	sel[group] = []string{option}
	return nil
}

// ToggleMulti adds the option to the multi-choice group if absent, removes
// it if present.
func ToggleMulti(item catalog.MenuItem, sel Selections, group, option string) error {
	g, ok := item.Customization(group)
	if !ok {
		return fmt.Errorf("item %s has no customization group %q", item.ID, group)
	}
	if g.Type != catalog.CustomizationCheckbox {
		return fmt.Errorf("group %q on item %s is not multi-choice", group, item.ID)
	}
	if !g.HasOption(option) {
		return fmt.Errorf("group %q on item %s has no option %q", group, item.ID, option)
	}

	current := sel[group]
	for i, chosen := range current {
		if chosen == option {
			sel[group] = append(current[:i:i], current[i+1:]...)
			return nil
		}
	}
	sel[group] = append(current, option)
	return nil
}

// CanonicalKey derives the merge identity for an item and its resolved
// selections. Group names are sorted, and multi-choice options are sorted
// within each group, so identical choices always yield the same key
// regardless of selection order.
func CanonicalKey(itemID string, resolved Selections) string {
	groups := make([]string, 0, len(resolved))
	for group := range resolved {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	var b strings.Builder
	b.WriteString(itemID)
	for _, group := range groups {
		options := make([]string, len(resolved[group]))
		copy(options, resolved[group])
		sort.Strings(options)

		b.WriteString("|")
		b.WriteString(group)
		b.WriteString("=")
		b.WriteString(strings.Join(options, ","))
	}
	return b.String()
}
