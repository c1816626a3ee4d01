package mongo

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/scantoserve/scantoserve/internal/cart"
	"github.com/scantoserve/scantoserve/internal/order"
)

func TestOrderRecordMapping(t *testing.T) {
	o := &order.Order{
		ID: uuid.New(),
		Items: []cart.CartLine{
			{
				ID:         "2|Spice Level=Medium",
				ItemID:     "2",
				Name:       "Biryani",
				Price:      60,
				Selections: cart.Selections{"Spice Level": {"Medium"}},
				Quantity:   2,
			},
		},
		Total: 129.60,
		Customer: order.UserDetails{
			FirstName: "Asha",
			LastName:  "Rao",
			Email:     "asha@example.com",
			Mobile:    "9876543210",
		},
		Status:        order.StatusPreparing,
		PaymentMethod: "card",
		CreatedAt:     time.Now().Truncate(time.Millisecond),
	}

	rec := toRecord(o)

	if rec.ID != o.ID.String() {
		t.Errorf("record id = %s, want %s", rec.ID, o.ID.String())
	}
	if rec.FirstName != "Asha" || rec.LastName != "Rao" {
		t.Errorf("record names = %s %s, want Asha Rao", rec.FirstName, rec.LastName)
	}
	if rec.TotalAmount != 129.60 {
		t.Errorf("record total_amount = %v, want 129.60", rec.TotalAmount)
	}
	if rec.Status != string(order.StatusPreparing) {
		t.Errorf("record status = %q, want %q", rec.Status, order.StatusPreparing)
	}
	if rec.PaymentMethod != "card" {
		t.Errorf("record payment_method = %q, want card", rec.PaymentMethod)
	}

	back, err := fromRecord(rec)
	if err != nil {
		t.Fatalf("fromRecord() unexpected error: %v", err)
	}
	if back.ID != o.ID {
		t.Errorf("round-trip id = %s, want %s", back.ID, o.ID)
	}
	if back.Customer != o.Customer {
		t.Errorf("round-trip customer = %+v, want %+v", back.Customer, o.Customer)
	}
	if back.Total != o.Total {
		t.Errorf("round-trip total = %v, want %v", back.Total, o.Total)
	}
	if back.Status != o.Status {
		t.Errorf("round-trip status = %q, want %q", back.Status, o.Status)
	}
	if back.PaymentMethod != o.PaymentMethod {
		t.Errorf("round-trip payment method = %q, want %q", back.PaymentMethod, o.PaymentMethod)
	}
	if !back.CreatedAt.Equal(o.CreatedAt) {
		t.Errorf("round-trip created_at = %v, want %v", back.CreatedAt, o.CreatedAt)
	}
	if len(back.Items) != 1 || back.Items[0].ID != o.Items[0].ID || back.Items[0].Quantity != 2 {
		t.Errorf("round-trip items = %+v, want %+v", back.Items, o.Items)
	}
}

func TestFromRecordInvalidID(t *testing.T) {
	if _, err := fromRecord(orderRecord{ID: "not-a-uuid"}); err == nil {
		t.Error("fromRecord() with a malformed id should fail")
	}
}
