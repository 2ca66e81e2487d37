package site

import (
	"errors"
	"fmt"
	"time"

	siteRepo "tutorhq/database/repository/site"
	"tutorhq/models"
	"tutorhq/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSiteNotFound is returned when no site exists for the lookup.
var ErrSiteNotFound = errors.New("site not found")

// Save creates or updates the tutor's mini-site. The slug is derived from
// the tutor's name on first save and never changes afterwards, so shared
// booking links stay valid.
func (s *DefaultSiteService) Save(tutorID string, req SiteRequest) (*models.TutorSite, error) {
	existing, err := s.Repo.GetByTutorID(tutorID)
	if err != nil && !errors.Is(err, siteRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to load site: %w", err)
	}

	now := time.Now()
	site := &models.TutorSite{
		TutorID:      tutorID,
		Headline:     req.Headline,
		Bio:          req.Bio,
		Packages:     req.Packages,
		Testimonials: req.Testimonials,
		UpdatedAt:    now,
	}

	if existing != nil {
		site.ID = existing.ID
		site.Slug = existing.Slug
		site.Published = existing.Published
		site.CreatedAt = existing.CreatedAt
	} else {
		rec, err := s.TutorRepo.GetByID(tutorID)
		if err != nil {
			return nil, fmt.Errorf("failed to load tutor: %w", err)
		}
		slug, err := s.uniqueSlug(slugify(rec.Name))
		if err != nil {
			return nil, err
		}
		site.ID = uuid.New().String()
		site.Slug = slug
		site.CreatedAt = now
	}
	site.BookingLink = "/book/" + site.Slug

	if err := s.Repo.Upsert(site); err != nil {
		utils.GetLogger().Error("Save: site upsert failed", zap.String("tutorID", tutorID), zap.Error(err))
		return nil, fmt.Errorf("failed to save site: %w", err)
	}
	return site, nil
}

// Get returns the tutor's own site, published or not.
func (s *DefaultSiteService) Get(tutorID string) (*models.TutorSite, error) {
	site, err := s.Repo.GetByTutorID(tutorID)
	if err != nil {
		if errors.Is(err, siteRepo.ErrNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to fetch site: %w", err)
	}
	return site, nil
}

// SetPublished toggles public visibility.
func (s *DefaultSiteService) SetPublished(tutorID string, published bool) error {
	if err := s.Repo.SetPublished(tutorID, published); err != nil {
		if errors.Is(err, siteRepo.ErrNotFound) {
			return ErrSiteNotFound
		}
		return fmt.Errorf("failed to update publish state: %w", err)
	}
	return nil
}

// GetPublic resolves a published site by its slug.
func (s *DefaultSiteService) GetPublic(slug string) (*models.TutorSite, error) {
	site, err := s.Repo.GetPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, siteRepo.ErrNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to fetch site: %w", err)
	}
	return site, nil
}
