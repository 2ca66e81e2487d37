package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorhq/database"
	"tutorhq/models"
	"tutorhq/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no rule matches the query.
	ErrNotFound = errors.New("availability rule not found")
	// ErrDuplicateRule is returned when a tutor already has a rule starting
	// at the same time on the same day.
	ErrDuplicateRule = errors.New("duplicate availability rule")
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &MongoAvailabilityRepo{coll: database.DB().Collection("availability_rules")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("availability repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) Create(rule *models.AvailabilityRule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, rule); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateRule
		}
		return fmt.Errorf("failed to insert availability rule: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) ListByTutor(tutorID string) ([]models.AvailabilityRule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day_of_week", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tutor_id": tutorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching availability rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	for cursor.Next(ctx) {
		var rule models.AvailabilityRule
		if err := cursor.Decode(&rule); err != nil {
			return nil, fmt.Errorf("error decoding availability rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return rules, nil
}

func (r *MongoAvailabilityRepo) Delete(id, tutorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "tutor_id": tutorID})
	if err != nil {
		return fmt.Errorf("failed to delete availability rule %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
