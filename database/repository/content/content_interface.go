package contentRepo

import "tutorhq/models"

// ContentRepository defines data access for generated marketing content.
// Growth plans and per-type assets are replaced on regeneration.
type ContentRepository interface {
	SaveGrowthPlan(plan *models.GrowthPlan) error
	GetGrowthPlan(tutorID string) (*models.GrowthPlan, error)

	SaveAsset(asset *models.Asset) error
	GetAsset(tutorID, assetType string) (*models.Asset, error)
	ListAssets(tutorID string) ([]models.Asset, error)
}
