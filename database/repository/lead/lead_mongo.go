package leadRepo

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

// ErrNotFound is returned when no lead matches the query.
var ErrNotFound = errors.New("lead not found")

// MongoLeadRepo implements LeadRepository using MongoDB.
type MongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo constructs a new instance of MongoLeadRepo.
func NewMongoLeadRepo() LeadRepository {
	repo := &MongoLeadRepo{coll: database.DB().Collection("leads")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("lead repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoLeadRepo) Create(lead *models.Lead) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

func (r *MongoLeadRepo) GetByID(id, tutorID string) (*models.Lead, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var lead models.Lead
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "tutor_id": tutorID}).Decode(&lead); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching lead %s: %w", id, err)
	}
	return &lead, nil
}

func (r *MongoLeadRepo) ListByTutor(tutorID string) ([]models.Lead, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tutor_id": tutorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	for cursor.Next(ctx) {
		var lead models.Lead
		if err := cursor.Decode(&lead); err != nil {
			return nil, fmt.Errorf("error decoding lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return leads, nil
}

func (r *MongoLeadRepo) Update(id, tutorID string, fields map[string]interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "tutor_id": tutorID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update lead %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoLeadRepo) Delete(id, tutorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "tutor_id": tutorID})
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoLeadRepo) MarkFollowUpDue(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"follow_up_due": true, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark follow-up due for lead %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
