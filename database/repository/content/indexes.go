package contentRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoContentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	planModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tutor_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.planColl.Indexes().CreateMany(ctx, planModels); err != nil {
		return fmt.Errorf("failed to create growth plan indexes: %w", err)
	}

	assetModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tutor_id", Value: 1}, {Key: "asset_type", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.assetColl.Indexes().CreateMany(ctx, assetModels); err != nil {
		return fmt.Errorf("failed to create asset indexes: %w", err)
	}
	return nil
}
