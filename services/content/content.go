package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	contentRepo "tutorhq/database/repository/content"
	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/models"
	"tutorhq/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Errors surfaced to handlers.
var (
	ErrOnboardingIncomplete = errors.New("complete onboarding before generating content")
	ErrUnknownAssetType     = errors.New("unknown asset type")
	ErrContentNotFound      = errors.New("content not found")
)

// GenerateGrowthPlan runs the model against the onboarding answers and
// replaces the stored plan.
func (s *DefaultContentService) GenerateGrowthPlan(ctx context.Context, tutorID string) (*models.GrowthPlan, error) {
	name, ob, err := s.loadContext(tutorID)
	if err != nil {
		return nil, err
	}

	raw, err := s.Generator.GenerateContent(ctx, growthPlanPrompt(name, ob))
	if err != nil {
		utils.GetLogger().Error("GenerateGrowthPlan: model call failed",
			zap.String("tutorID", tutorID), zap.Error(err))
		return nil, fmt.Errorf("content generation failed: %w", err)
	}

	var body models.GrowthPlanBody
	if err := json.Unmarshal(stripCodeFences(raw), &body); err != nil {
		return nil, fmt.Errorf("model returned malformed plan: %w", err)
	}

	plan := &models.GrowthPlan{
		ID:        uuid.New().String(),
		TutorID:   tutorID,
		Plan:      body,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.SaveGrowthPlan(plan); err != nil {
		return nil, fmt.Errorf("failed to save growth plan: %w", err)
	}
	return plan, nil
}

// GetGrowthPlan returns the stored plan.
func (s *DefaultContentService) GetGrowthPlan(tutorID string) (*models.GrowthPlan, error) {
	plan, err := s.Repo.GetGrowthPlan(tutorID)
	if err != nil {
		if errors.Is(err, contentRepo.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to fetch growth plan: %w", err)
	}
	return plan, nil
}

// GenerateAsset runs the model for one asset type. The stored asset of
// that type, if any, is replaced.
func (s *DefaultContentService) GenerateAsset(ctx context.Context, tutorID, assetType string) (*models.Asset, error) {
	if !models.ValidAssetType(assetType) {
		return nil, ErrUnknownAssetType
	}

	name, ob, err := s.loadContext(tutorID)
	if err != nil {
		return nil, err
	}

	raw, err := s.Generator.GenerateContent(ctx, assetPrompt(assetType, name, ob))
	if err != nil {
		utils.GetLogger().Error("GenerateAsset: model call failed",
			zap.String("tutorID", tutorID), zap.String("assetType", assetType), zap.Error(err))
		return nil, fmt.Errorf("content generation failed: %w", err)
	}

	content := stripCodeFences(raw)
	if !json.Valid(content) {
		return nil, fmt.Errorf("model returned malformed %s content", assetType)
	}

	asset := &models.Asset{
		ID:        uuid.New().String(),
		TutorID:   tutorID,
		AssetType: assetType,
		Content:   json.RawMessage(content),
		CreatedAt: time.Now(),
	}
	if err := s.Repo.SaveAsset(asset); err != nil {
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}
	return asset, nil
}

// GetAsset returns one stored asset by type.
func (s *DefaultContentService) GetAsset(tutorID, assetType string) (*models.Asset, error) {
	if !models.ValidAssetType(assetType) {
		return nil, ErrUnknownAssetType
	}
	asset, err := s.Repo.GetAsset(tutorID, assetType)
	if err != nil {
		if errors.Is(err, contentRepo.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return asset, nil
}

// ListAssets returns everything generated so far.
func (s *DefaultContentService) ListAssets(tutorID string) ([]models.Asset, error) {
	assets, err := s.Repo.ListAssets(tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// loadContext fetches the tutor name and completed onboarding answers
// that every prompt is built from.
func (s *DefaultContentService) loadContext(tutorID string) (string, *models.Onboarding, error) {
	rec, err := s.TutorRepo.GetByID(tutorID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load tutor: %w", err)
	}
	ob, err := s.TutorRepo.GetOnboarding(tutorID)
	if err != nil {
		if errors.Is(err, tutorRepo.ErrNotFound) {
			return "", nil, ErrOnboardingIncomplete
		}
		return "", nil, fmt.Errorf("failed to load onboarding: %w", err)
	}
	if len(ob.Subjects) == 0 {
		return "", nil, ErrOnboardingIncomplete
	}
	return rec.Name, ob, nil
}

// stripCodeFences peels a ```json ... ``` wrapper off model output.
// Models add fences even when told not to.
func stripCodeFences(raw string) []byte {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}
	return []byte(trimmed)
}
