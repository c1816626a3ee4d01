package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scantoserve/scantoserve/internal/cart"
	"github.com/scantoserve/scantoserve/internal/order"
)

// orderRecord is the external persistence shape. Field names differ from
// the in-memory order; toRecord and fromRecord are total mappings that
// never drop a field.
type orderRecord struct {
	ID            string          `bson:"_id"`
	FirstName     string          `bson:"first_name"`
	LastName      string          `bson:"last_name"`
	Email         string          `bson:"email"`
	Mobile        string          `bson:"mobile"`
	Items         []cart.CartLine `bson:"items"`
	TotalAmount   float64         `bson:"total_amount"`
	Status        string          `bson:"status"`
	PaymentMethod string          `bson:"payment_method"`
	CreatedAt     time.Time       `bson:"created_at"`
}

func toRecord(o *order.Order) orderRecord {
	return orderRecord{
		ID:            o.ID.String(),
		FirstName:     o.Customer.FirstName,
		LastName:      o.Customer.LastName,
		Email:         o.Customer.Email,
		Mobile:        o.Customer.Mobile,
		Items:         o.Items,
		TotalAmount:   o.Total,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
	}
}

func fromRecord(rec orderRecord) (*order.Order, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid order id %s: %w", rec.ID, err)
	}
	return &order.Order{
		ID:    id,
		Items: rec.Items,
		Total: rec.TotalAmount,
		Customer: order.UserDetails{
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Email:     rec.Email,
			Mobile:    rec.Mobile,
		},
		Status:        order.Status(rec.Status),
		PaymentMethod: rec.PaymentMethod,
		CreatedAt:     rec.CreatedAt,
	}, nil
}

type OrderRepo struct {
	collection *mongo.Collection
}

func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{
		collection: db.Collection("orders"),
	}
}

func (r *OrderRepo) Create(ctx context.Context, o *order.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	if _, err := r.collection.InsertOne(ctx, toRecord(o)); err != nil {
		return fmt.Errorf("cannot create order: %w", err)
	}

	return nil
}

func (r *OrderRepo) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var rec orderRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot get order: %w", err)
	}
	return fromRecord(rec)
}

func (r *OrderRepo) List(ctx context.Context) ([]*order.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var records []orderRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("cannot decode orders: %w", err)
	}

	result := make([]*order.Order, 0, len(records))
	for _, rec := range records {
		o, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *OrderRepo) SetStatus(ctx context.Context, id uuid.UUID, status order.Status, allowed ...order.Status) error {
	filter := bson.M{"_id": id.String()}
	if len(allowed) > 0 {
		current := make([]string, len(allowed))
		for i, a := range allowed {
			current[i] = string(a)
		}
		filter["status"] = bson.M{"$in": current}
	}

	update := bson.M{"$set": bson.M{"status": string(status)}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("cannot update order status: %w", err)
	}

	if result.MatchedCount == 0 {
		// No match either means the id is unknown or the status guard
		// failed; only the latter leaves a document behind.
		if len(allowed) > 0 {
			count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id.String()})
			if err != nil {
				return fmt.Errorf("cannot check order existence: %w", err)
			}
			if count > 0 {
				return order.ErrStaleStatus
			}
		}
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *OrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("cannot delete order: %w", err)
	}

	if result.DeletedCount == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}
