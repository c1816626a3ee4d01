package cart

import (
	"testing"

	"github.com/scantoserve/scantoserve/internal/catalog"
)

func testItem(id string) catalog.MenuItem {
	cat := catalog.NewDefault()
	item, err := cat.Item(id)
	if err != nil {
		panic(err)
	}
	return item
}

func TestResolve(t *testing.T) {
	biryani := testItem("2")
	chicken65 := testItem("6")
	meals := testItem("1")

	tests := []struct {
		name      string
		item      catalog.MenuItem
		requested Selections
		want      Selections
		wantErr   bool
	}{
		{
			name:      "radioDefaultsToFirstOption",
			item:      biryani,
			requested: nil,
			want:      Selections{"Spice Level": {"Mild"}},
		},
		{
			name:      "radioExplicitChoice",
			item:      biryani,
			requested: Selections{"Spice Level": {"Spicy"}},
			want:      Selections{"Spice Level": {"Spicy"}},
		},
		{
			name:      "checkboxDefaultsToEmpty",
			item:      chicken65,
			requested: nil,
			want:      Selections{"Add-ons": {}},
		},
		{
			name:      "checkboxSubset",
			item:      chicken65,
			requested: Selections{"Add-ons": {"Lemon Squeeze"}},
			want:      Selections{"Add-ons": {"Lemon Squeeze"}},
		},
		{
			name:      "noGroupsNoSelections",
			item:      meals,
			requested: nil,
			want:      Selections{},
		},
		{
			name:      "unknownGroupRejected",
			item:      biryani,
			requested: Selections{"Toppings": {"Cheese"}},
			wantErr:   true,
		},
		{
			name:      "unknownOptionRejected",
			item:      biryani,
			requested: Selections{"Spice Level": {"Extra Hot"}},
			wantErr:   true,
		},
		{
			name:      "multipleRadioChoicesRejected",
			item:      biryani,
			requested: Selections{"Spice Level": {"Mild", "Spicy"}},
			wantErr:   true,
		},
		{
			name:      "groupOnItemWithoutGroupsRejected",
			item:      meals,
			requested: Selections{"Spice Level": {"Mild"}},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.item, tt.requested)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Resolve() expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Resolve() = %v, want %v", got, tt.want)
			}
			for group, wantOpts := range tt.want {
				gotOpts, ok := got[group]
				if !ok {
					t.Errorf("Resolve() missing group %q", group)
					continue
				}
				if len(gotOpts) != len(wantOpts) {
					t.Errorf("group %q = %v, want %v", group, gotOpts, wantOpts)
					continue
				}
				for i := range wantOpts {
					if gotOpts[i] != wantOpts[i] {
						t.Errorf("group %q = %v, want %v", group, gotOpts, wantOpts)
						break
					}
				}
			}
		})
	}
}

func TestToggleSingle(t *testing.T) {
	biryani := testItem("2")

	sel, err := Resolve(biryani, nil)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if err := ToggleSingle(biryani, sel, "Spice Level", "Spicy"); err != nil {
		t.Fatalf("ToggleSingle() unexpected error: %v", err)
	}
	if got := sel["Spice Level"]; len(got) != 1 || got[0] != "Spicy" {
		t.Errorf("Spice Level = %v, want [Spicy]", got)
	}

	if err := ToggleSingle(biryani, sel, "Spice Level", "Extra Hot"); err == nil {
		t.Error("ToggleSingle() with unknown option should fail")
	}
}

func TestToggleMulti(t *testing.T) {
	chicken65 := testItem("6")

	sel, err := Resolve(chicken65, nil)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}

	if err := ToggleMulti(chicken65, sel, "Add-ons", "Lemon Squeeze"); err != nil {
		t.Fatalf("ToggleMulti() unexpected error: %v", err)
	}
	if got := sel["Add-ons"]; len(got) != 1 || got[0] != "Lemon Squeeze" {
		t.Errorf("Add-ons = %v, want [Lemon Squeeze]", got)
	}

	// Toggling again removes the option.
	if err := ToggleMulti(chicken65, sel, "Add-ons", "Lemon Squeeze"); err != nil {
		t.Fatalf("ToggleMulti() unexpected error: %v", err)
	}
	if got := sel["Add-ons"]; len(got) != 0 {
		t.Errorf("Add-ons = %v, want empty", got)
	}

	if err := ToggleMulti(chicken65, sel, "Add-ons", "Ketchup"); err == nil {
		t.Error("ToggleMulti() with unknown option should fail")
	}
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		name string
		a    Selections
		b    Selections
		same bool
	}{
		{
			name: "identicalSelections",
			a:    Selections{"Spice Level": {"Medium"}},
			b:    Selections{"Spice Level": {"Medium"}},
			same: true,
		},
		{
			name: "differentOptions",
			a:    Selections{"Spice Level": {"Mild"}},
			b:    Selections{"Spice Level": {"Spicy"}},
			same: false,
		},
		{
			name: "multiSelectOrderIrrelevant",
			a:    Selections{"Add-ons": {"Lemon Squeeze", "Extra Curry Leaves"}},
			b:    Selections{"Add-ons": {"Extra Curry Leaves", "Lemon Squeeze"}},
			same: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyA := CanonicalKey("2", tt.a)
			keyB := CanonicalKey("2", tt.b)
			if (keyA == keyB) != tt.same {
				t.Errorf("keys %q and %q: same = %v, want %v", keyA, keyB, keyA == keyB, tt.same)
			}
		})
	}

	if CanonicalKey("2", Selections{"Spice Level": {"Mild"}}) == CanonicalKey("4", Selections{"Spice Level": {"Mild"}}) {
		t.Error("different items must never share a key")
	}
}
