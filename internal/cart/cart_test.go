package cart

import (
	"sync"
	"testing"

	"github.com/appetiteclub/apt"
)

func TestAddOrMergeIdenticalSelections(t *testing.T) {
	biryani := testItem("2")
	c := New()

	sel := Selections{"Spice Level": {"Medium"}}
	for i := 0; i < 2; i++ {
		if _, err := c.AddOrMerge(biryani, sel); err != nil {
			t.Fatalf("AddOrMerge() unexpected error: %v", err)
		}
	}

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", lines[0].Quantity)
	}

	totals := c.Totals()
	if got := totals.Subtotal.String(); got != "120" {
		t.Errorf("subtotal = %s, want 120", got)
	}
	if got := totals.Tax.String(); got != "9.6" {
		t.Errorf("tax = %s, want 9.6", got)
	}
	if got := totals.Total.String(); got != "129.6" {
		t.Errorf("total = %s, want 129.6", got)
	}
}

func TestAddOrMergeDistinctSelections(t *testing.T) {
	biryani := testItem("2")
	c := New()

	if _, err := c.AddOrMerge(biryani, Selections{"Spice Level": {"Mild"}}); err != nil {
		t.Fatalf("AddOrMerge() unexpected error: %v", err)
	}
	if _, err := c.AddOrMerge(biryani, Selections{"Spice Level": {"Spicy"}}); err != nil {
		t.Fatalf("AddOrMerge() unexpected error: %v", err)
	}

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("cart has %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if line.Quantity != 1 {
			t.Errorf("line %s quantity = %d, want 1", line.ID, line.Quantity)
		}
	}
}

func TestAddOrMergeRejectsBadSelection(t *testing.T) {
	biryani := testItem("2")
	c := New()

	if _, err := c.AddOrMerge(biryani, Selections{"Toppings": {"Cheese"}}); err == nil {
		t.Fatal("AddOrMerge() with undefined group should fail")
	}
	if !c.IsEmpty() {
		t.Error("failed add must not leave a line in the cart")
	}
}

func TestSetQuantity(t *testing.T) {
	vada := testItem("5")
	c := New()

	lines, err := c.AddOrMerge(vada, nil)
	if err != nil {
		t.Fatalf("AddOrMerge() unexpected error: %v", err)
	}
	lineID := lines[0].ID

	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{name: "increase", quantity: 5, wantLines: 1, wantQty: 5},
		{name: "decrease", quantity: 1, wantLines: 1, wantQty: 1},
		{name: "zeroRemovesLine", quantity: 0, wantLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.SetQuantity(lineID, tt.quantity)
			if len(got) != tt.wantLines {
				t.Fatalf("cart has %d lines, want %d", len(got), tt.wantLines)
			}
			if tt.wantLines > 0 && got[0].Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", got[0].Quantity, tt.wantQty)
			}
		})
	}

	if _, err := c.AddOrMerge(vada, nil); err != nil {
		t.Fatalf("AddOrMerge() unexpected error: %v", err)
	}
	if got := c.SetQuantity(lineID, -3); len(got) != 0 {
		t.Errorf("negative quantity should remove the line, got %d lines", len(got))
	}
}

func TestClear(t *testing.T) {
	c := New()

	if _, err := c.AddOrMerge(testItem("1"), nil); err != nil {
		t.Fatalf("AddOrMerge() unexpected error: %v", err)
	}
	if _, err := c.AddOrMerge(testItem("3"), nil); err != nil {
		t.Fatalf("AddOrMerge() unexpected error: %v", err)
	}

	if got := c.Clear(); len(got) != 0 {
		t.Errorf("Clear() left %d lines", len(got))
	}
	if got := c.Totals().Total.String(); got != "0" {
		t.Errorf("empty cart total = %s, want 0", got)
	}
}

func TestTotalsRecomputedFresh(t *testing.T) {
	porotta := testItem("3") // price 15
	c := New()

	lines, err := c.AddOrMerge(porotta, nil)
	if err != nil {
		t.Fatalf("AddOrMerge() unexpected error: %v", err)
	}

	if got := c.Totals().Total.String(); got != "16.2" {
		t.Errorf("total = %s, want 16.2", got)
	}

	c.SetQuantity(lines[0].ID, 4)
	if got := c.Totals().Total.String(); got != "64.8" {
		t.Errorf("total after quantity change = %s, want 64.8", got)
	}
}

func TestConcurrentAddOrMerge(t *testing.T) {
	biryani := testItem("2")
	c := New()
	sel := Selections{"Spice Level": {"Medium"}}

	const adds = 50
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.AddOrMerge(biryani, sel); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(lines))
	}
	if lines[0].Quantity != adds {
		t.Errorf("quantity = %d, want %d", lines[0].Quantity, adds)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(apt.NewNoopLogger())

	a := reg.Get("sess-a")
	if a == nil {
		t.Fatal("Get() returned nil cart")
	}
	if again := reg.Get("sess-a"); again != a {
		t.Error("Get() should return the same cart for the same session")
	}
	if other := reg.Get("sess-b"); other == a {
		t.Error("different sessions must get different carts")
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}

	reg.Drop("sess-a")
	if reg.Len() != 1 {
		t.Errorf("Len() after Drop = %d, want 1", reg.Len())
	}
}
