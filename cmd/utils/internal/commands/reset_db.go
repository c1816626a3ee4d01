package commands

import (
	"context"

	"github.com/appetiteclub/apt"
	"go.mongodb.org/mongo-driver/bson"
)

// ResetDB drops the Scan To Serve database - USE WITH CAUTION.
func ResetDB(ctx context.Context, config *apt.Config, logger apt.Logger) error {
	logger.Infof("DANGER: this will drop the %s database!", databaseName)
	logger.Infof("This action cannot be undone!")

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
	logger.Info("Dropping database", "database", databaseName)
	result := db.RunCommand(ctx, bson.D{{Key: "dropDatabase", Value: 1}})
	if result.Err() != nil {
		logger.Infof("Failed to drop database %s (may not exist): %v", databaseName, result.Err())
		return nil
	}

	logger.Info("Database dropped", "database", databaseName)
	return nil
}
