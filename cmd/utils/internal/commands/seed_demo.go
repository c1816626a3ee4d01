package commands

import (
	"context"
	"fmt"

	"github.com/appetiteclub/apt"

	serveMongo "github.com/scantoserve/scantoserve/internal/mongo"
	"github.com/scantoserve/scantoserve/internal/order"
)

// SeedDemo applies the demo order seeds against the configured database.
func SeedDemo(ctx context.Context, config *apt.Config, logger apt.Logger) error {
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
	repo := serveMongo.NewOrderRepo(db)

	logger.Info("Applying demo seeds", "database", databaseName)

	if err := order.ApplyDemoSeeds(ctx, repo, db, logger); err != nil {
		return fmt.Errorf("cannot apply demo seeds: %w", err)
	}

	return nil
}
