package commands

import (
	"context"
	"fmt"

	"github.com/appetiteclub/apt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var demoCustomerEmails = []string{
	"asha@example.com",
	"vikram@example.com",
	"meena@example.com",
	"ravi@example.com",
}

// ClearDemo removes the demo orders and their seed tracker entry.
func ClearDemo(ctx context.Context, config *apt.Config, logger apt.Logger) error {
	logger.Info("Starting demo data cleanup")

	client, err := connectMongo(ctx, config)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("cannot disconnect from MongoDB", "error", err)
		}
	}()

	db := client.Database(databaseName)
	if err := clearDemoOrders(ctx, db, logger); err != nil {
		return fmt.Errorf("cannot clear demo orders: %w", err)
	}

	return nil
}

func clearDemoOrders(ctx context.Context, db *mongo.Database, logger apt.Logger) error {
	ordersCollection := db.Collection("orders")
	ordersResult, err := ordersCollection.DeleteMany(ctx, bson.M{"email": bson.M{"$in": demoCustomerEmails}})
	if err != nil {
		return fmt.Errorf("cannot delete demo orders: %w", err)
	}
	logger.Info("Deleted demo orders", "count", ordersResult.DeletedCount)

	seedsCollection := db.Collection("_seeds")
	trackerResult, err := seedsCollection.DeleteOne(ctx, bson.M{"_id": "2026-08-29_demo_orders_v1"})
	if err != nil {
		return fmt.Errorf("cannot delete seed tracker entry: %w", err)
	}
	logger.Info("Cleared seed tracker", "deleted", trackerResult.DeletedCount)

	return nil
}
