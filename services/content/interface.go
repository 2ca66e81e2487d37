package content

import (
	"context"

	contentRepo "tutorhq/database/repository/content"
	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/models"
)

// ContentService generates and stores AI marketing content from the
// tutor's onboarding answers.
type ContentService interface {
	// GenerateGrowthPlan runs the model and replaces any stored plan.
	GenerateGrowthPlan(ctx context.Context, tutorID string) (*models.GrowthPlan, error)
	GetGrowthPlan(tutorID string) (*models.GrowthPlan, error)

	// GenerateAsset runs the model for one asset type and replaces the
	// stored asset of that type.
	GenerateAsset(ctx context.Context, tutorID, assetType string) (*models.Asset, error)
	GetAsset(tutorID, assetType string) (*models.Asset, error)
	ListAssets(tutorID string) ([]models.Asset, error)
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Repo      contentRepo.ContentRepository
	TutorRepo tutorRepo.TutorRepository
	Generator Generator
}
