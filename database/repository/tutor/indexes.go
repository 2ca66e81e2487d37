package tutorRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func optionsReplaceUpsert() *options.ReplaceOptions {
	return options.Replace().SetUpsert(true)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTutorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create tutor indexes: %w", err)
	}

	onboardingModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tutor_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.onboardingColl.Indexes().CreateMany(ctx, onboardingModels); err != nil {
		return fmt.Errorf("failed to create onboarding indexes: %w", err)
	}
	return nil
}
