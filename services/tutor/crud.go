package tutor

import (
	"errors"
	"fmt"
	"time"

	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/models"
	"tutorhq/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetByID fetches a tutor account.
func (s *DefaultTutorService) GetByID(tutorID string) (*models.Tutor, error) {
	rec, err := s.Repo.GetByID(tutorID)
	if err != nil {
		if errors.Is(err, tutorRepo.ErrNotFound) {
			return nil, ErrTutorNotFound
		}
		return nil, fmt.Errorf("failed to fetch tutor: %w", err)
	}
	return rec, nil
}

// UpdateProfile applies a partial update. Empty fields are skipped.
func (s *DefaultTutorService) UpdateProfile(tutorID string, req ProfileUpdateRequest) (*models.Tutor, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.AvatarURL != "" {
		fields["avatar_url"] = req.AvatarURL
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, fmt.Errorf("unknown timezone %q", req.Timezone)
		}
		fields["timezone"] = req.Timezone
	}
	if len(fields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.Update(tutorID, fields); err != nil {
		if errors.Is(err, tutorRepo.ErrNotFound) {
			return nil, ErrTutorNotFound
		}
		utils.GetLogger().Error("UpdateProfile: update failed", zap.String("tutorID", tutorID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetByID(tutorID)
}

// DeleteAccount removes the tutor record and drops any live session.
func (s *DefaultTutorService) DeleteAccount(tutorID string) error {
	if err := s.Repo.Delete(tutorID); err != nil {
		if errors.Is(err, tutorRepo.ErrNotFound) {
			return ErrTutorNotFound
		}
		return fmt.Errorf("failed to delete tutor: %w", err)
	}
	utils.DropCachedAuthToken(tutorID)
	return nil
}

// SaveOnboarding upserts the intake answers. A tutor has at most one
// onboarding document.
func (s *DefaultTutorService) SaveOnboarding(tutorID string, ob models.Onboarding) (*models.Onboarding, error) {
	if len(ob.Subjects) == 0 {
		return nil, fmt.Errorf("at least one subject is required")
	}

	existing, err := s.Repo.GetOnboarding(tutorID)
	if err != nil && !errors.Is(err, tutorRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to load onboarding: %w", err)
	}

	now := time.Now()
	ob.TutorID = tutorID
	ob.UpdatedAt = now
	if existing != nil {
		ob.ID = existing.ID
		ob.CreatedAt = existing.CreatedAt
	} else {
		ob.ID = uuid.New().String()
		ob.CreatedAt = now
	}

	if err := s.Repo.UpsertOnboarding(&ob); err != nil {
		return nil, fmt.Errorf("failed to save onboarding: %w", err)
	}
	return &ob, nil
}

// GetOnboarding returns the tutor's intake answers.
func (s *DefaultTutorService) GetOnboarding(tutorID string) (*models.Onboarding, error) {
	ob, err := s.Repo.GetOnboarding(tutorID)
	if err != nil {
		if errors.Is(err, tutorRepo.ErrNotFound) {
			return nil, ErrTutorNotFound
		}
		return nil, fmt.Errorf("failed to fetch onboarding: %w", err)
	}
	return ob, nil
}
