package tutorRepo

import (
	"errors"
	"fmt"
	"time"

	"tutorhq/database"
	"tutorhq/models"
	"tutorhq/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no tutor matches the query.
var ErrNotFound = errors.New("tutor not found")

// MongoTutorRepo implements TutorRepository using MongoDB.
type MongoTutorRepo struct {
	coll           *mongo.Collection
	onboardingColl *mongo.Collection
}

// NewMongoTutorRepo constructs a new instance of MongoTutorRepo.
func NewMongoTutorRepo() TutorRepository {
	db := database.DB()
	repo := &MongoTutorRepo{
		coll:           db.Collection("tutors"),
		onboardingColl: db.Collection("onboarding"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("tutor repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoTutorRepo) Create(tutor *models.Tutor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, tutor); err != nil {
		return fmt.Errorf("failed to insert tutor: %w", err)
	}
	return nil
}

func (r *MongoTutorRepo) GetByID(id string) (*models.Tutor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tutor models.Tutor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tutor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching tutor with id %s: %w", id, err)
	}
	return &tutor, nil
}

func (r *MongoTutorRepo) GetByEmail(email string) (*models.Tutor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tutor models.Tutor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&tutor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching tutor with email %s: %w", email, err)
	}
	return &tutor, nil
}

func (r *MongoTutorRepo) Update(id string, fields map[string]interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update tutor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTutorRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tutor %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTutorRepo) SetTokenHash(id, tokenHash string) error {
	return r.Update(id, map[string]interface{}{"token_hash": tokenHash})
}

func (r *MongoTutorRepo) UpsertOnboarding(ob *models.Onboarding) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	ob.UpdatedAt = time.Now().UTC()
	opts := optionsReplaceUpsert()
	if _, err := r.onboardingColl.ReplaceOne(ctx, bson.M{"tutor_id": ob.TutorID}, ob, opts); err != nil {
		return fmt.Errorf("failed to upsert onboarding for tutor %s: %w", ob.TutorID, err)
	}
	return nil
}

func (r *MongoTutorRepo) GetOnboarding(tutorID string) (*models.Onboarding, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ob models.Onboarding
	if err := r.onboardingColl.FindOne(ctx, bson.M{"tutor_id": tutorID}).Decode(&ob); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching onboarding for tutor %s: %w", tutorID, err)
	}
	return &ob, nil
}
