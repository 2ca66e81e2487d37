package contentRepo

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

// ErrNotFound is returned when no content matches the query.
var ErrNotFound = errors.New("content not found")

// MongoContentRepo implements ContentRepository using MongoDB.
type MongoContentRepo struct {
	planColl  *mongo.Collection
	assetColl *mongo.Collection
}

// NewMongoContentRepo constructs a new instance of MongoContentRepo.
func NewMongoContentRepo() ContentRepository {
	db := database.DB()
	repo := &MongoContentRepo{
		planColl:  db.Collection("growth_plans"),
		assetColl: db.Collection("assets"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("content repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoContentRepo) SaveGrowthPlan(plan *models.GrowthPlan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.planColl.ReplaceOne(ctx, bson.M{"tutor_id": plan.TutorID}, plan, opts); err != nil {
		return fmt.Errorf("failed to save growth plan for tutor %s: %w", plan.TutorID, err)
	}
	return nil
}

func (r *MongoContentRepo) GetGrowthPlan(tutorID string) (*models.GrowthPlan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var plan models.GrowthPlan
	if err := r.planColl.FindOne(ctx, bson.M{"tutor_id": tutorID}).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching growth plan for tutor %s: %w", tutorID, err)
	}
	return &plan, nil
}

func (r *MongoContentRepo) SaveAsset(asset *models.Asset) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"tutor_id": asset.TutorID, "asset_type": asset.AssetType}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.assetColl.ReplaceOne(ctx, filter, asset, opts); err != nil {
		return fmt.Errorf("failed to save asset %s for tutor %s: %w", asset.AssetType, asset.TutorID, err)
	}
	return nil
}

func (r *MongoContentRepo) GetAsset(tutorID, assetType string) (*models.Asset, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var asset models.Asset
	filter := bson.M{"tutor_id": tutorID, "asset_type": assetType}
	if err := r.assetColl.FindOne(ctx, filter).Decode(&asset); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching asset %s for tutor %s: %w", assetType, tutorID, err)
	}
	return &asset, nil
}

func (r *MongoContentRepo) ListAssets(tutorID string) ([]models.Asset, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.assetColl.Find(ctx, bson.M{"tutor_id": tutorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching assets: %w", err)
	}
	defer cursor.Close(ctx)

	var assets []models.Asset
	for cursor.Next(ctx) {
		var a models.Asset
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("error decoding asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return assets, nil
}
