package siteRepo

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

// ErrNotFound is returned when no site matches the query.
var ErrNotFound = errors.New("site not found")

// MongoSiteRepo implements SiteRepository using MongoDB.
type MongoSiteRepo struct {
	coll *mongo.Collection
}

// NewMongoSiteRepo constructs a new instance of MongoSiteRepo.
func NewMongoSiteRepo() SiteRepository {
	repo := &MongoSiteRepo{coll: database.DB().Collection("sites")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("site repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSiteRepo) Upsert(site *models.TutorSite) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	site.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"tutor_id": site.TutorID}, site, opts); err != nil {
		return fmt.Errorf("failed to upsert site for tutor %s: %w", site.TutorID, err)
	}
	return nil
}

func (r *MongoSiteRepo) GetByTutorID(tutorID string) (*models.TutorSite, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var site models.TutorSite
	if err := r.coll.FindOne(ctx, bson.M{"tutor_id": tutorID}).Decode(&site); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching site for tutor %s: %w", tutorID, err)
	}
	return &site, nil
}

func (r *MongoSiteRepo) GetPublishedBySlug(slug string) (*models.TutorSite, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var site models.TutorSite
	filter := bson.M{"slug": slug, "published": true}
	if err := r.coll.FindOne(ctx, filter).Decode(&site); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching site with slug %s: %w", slug, err)
	}
	return &site, nil
}

func (r *MongoSiteRepo) SlugExists(slug string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, fmt.Errorf("error counting slug %s: %w", slug, err)
	}
	return n > 0, nil
}

func (r *MongoSiteRepo) SetPublished(tutorID string, published bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"published": published, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"tutor_id": tutorID}, update)
	if err != nil {
		return fmt.Errorf("failed to set published for tutor %s: %w", tutorID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoSiteRepo) Delete(tutorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"tutor_id": tutorID}); err != nil {
		return fmt.Errorf("failed to delete site for tutor %s: %w", tutorID, err)
	}
	return nil
}
