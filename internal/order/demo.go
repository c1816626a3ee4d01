package order

import (
	"context"
	"errors"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/seed"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scantoserve/scantoserve/internal/cart"
)

const orderDemoSeedApplication = "scantoserve_demo"

// ApplyDemoSeeds creates a handful of demo orders at different points in
// the fulfillment progression.
func ApplyDemoSeeds(ctx context.Context, repo Repo, db *mongo.Database, logger apt.Logger) error {
	if db == nil {
		return errors.New("database is required for demo seeding")
	}

	demoSeeds := buildDemoOrderSeeds(repo, logger)
	tracker := seed.NewMongoTracker(db)

	logger.Info("Applying demo order seeds")
	if err := seed.Apply(ctx, tracker, demoSeeds, orderDemoSeedApplication); err != nil {
		return err
	}
	logger.Info("Demo order seeds applied successfully")
	return nil
}

func buildDemoOrderSeeds(repo Repo, logger apt.Logger) []seed.Seed {
	return []seed.Seed{
		{
			ID:          "2026-08-29_demo_orders_v1",
			Description: "Create demo orders across the fulfillment progression",
			Run: func(ctx context.Context) error {
				return seedDemoOrders(ctx, repo, logger)
			},
		},
	}
}

func seedDemoOrders(ctx context.Context, repo Repo, logger apt.Logger) error {
	now := time.Now()

	orders := []*Order{
		{
			Items: []cart.CartLine{
				{ID: "2|Spice Level=Medium", ItemID: "2", Name: "Biryani", Price: 60, Selections: cart.Selections{"Spice Level": {"Medium"}}, Quantity: 2},
				{ID: "13", ItemID: "13", Name: "Juice", Price: 20, Quantity: 2},
			},
			Total:         172.80,
			Status:        StatusPlaced,
			Customer:      UserDetails{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Mobile: "9876543210"},
			PaymentMethod: "upi",
			CreatedAt:     now.Add(-5 * time.Second),
		},
		{
			Items: []cart.CartLine{
				{ID: "1", ItemID: "1", Name: "Meals", Price: 50, Quantity: 1},
				{ID: "14", ItemID: "14", Name: "Coffee", Price: 20, Quantity: 1},
			},
			Total:         75.60,
			Status:        StatusPreparing,
			Customer:      UserDetails{FirstName: "Vikram", LastName: "Iyer", Email: "vikram@example.com", Mobile: "9123456780"},
			PaymentMethod: "card",
			CreatedAt:     now.Add(-20 * time.Second),
		},
		{
			Items: []cart.CartLine{
				{ID: "6|Add-ons=Lemon Squeeze", ItemID: "6", Name: "Chicken 65", Price: 30, Selections: cart.Selections{"Add-ons": {"Lemon Squeeze"}}, Quantity: 3},
			},
			Total:         97.20,
			Status:        StatusDelivered,
			Customer:      UserDetails{FirstName: "Meena", LastName: "Krishnan", Email: "meena@example.com", Mobile: "9012345678"},
			PaymentMethod: "cod",
			CreatedAt:     now.Add(-2 * time.Minute),
		},
		{
			Items: []cart.CartLine{
				{ID: "9", ItemID: "9", Name: "Gulab Jamun", Price: 40, Quantity: 1},
			},
			Total:         43.20,
			Status:        StatusCancelled,
			Customer:      UserDetails{FirstName: "Ravi", LastName: "Nair", Email: "ravi@example.com", Mobile: "9988776655"},
			PaymentMethod: "upi",
			CreatedAt:     now.Add(-1 * time.Minute),
		},
	}

	for _, o := range orders {
		o.EnsureID()
		if err := repo.Create(ctx, o); err != nil {
			return err
		}
		logger.Debug("demo order created", "order_id", o.ID.String(), "status", string(o.Status))
	}
	return nil
}

// DemoSeedingFunc returns a lifecycle hook that applies the demo seeds in
// the background.
func DemoSeedingFunc(seedCtx context.Context, repo Repo, db *mongo.Database, logger apt.Logger) func(ctx context.Context) error {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}

	return func(ctx context.Context) error {
		logger.Info("Starting demo order seeding in background")
		go func() {
			if err := ApplyDemoSeeds(seedCtx, repo, db, logger); err != nil && !errors.Is(err, context.Canceled) {
				logger.Errorf("Demo order seeds failed: %v", err)
			} else if err == nil {
				logger.Info("Demo order seeding completed")
			}
		}()
		return nil
	}
}
