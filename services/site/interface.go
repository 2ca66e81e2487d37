package site

import (
	siteRepo "tutorhq/database/repository/site"
	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/models"
)

// SiteService manages the tutor's public mini-site.
type SiteService interface {
	// Save creates or updates the tutor's site. A slug is generated from
	// the tutor's name on first save and kept stable afterwards.
	Save(tutorID string, req SiteRequest) (*models.TutorSite, error)
	Get(tutorID string) (*models.TutorSite, error)
	SetPublished(tutorID string, published bool) error
	// GetPublic resolves a published site by slug for the public booking
	// page. Unpublished sites are invisible here.
	GetPublic(slug string) (*models.TutorSite, error)
}

// DefaultSiteService is the production implementation.
type DefaultSiteService struct {
	Repo      siteRepo.SiteRepository
	TutorRepo tutorRepo.TutorRepository
}

// SiteRequest carries the editable site content.
type SiteRequest struct {
	Headline     string               `json:"headline"`
	Bio          string               `json:"bio"`
	Packages     []models.SitePackage `json:"packages"`
	Testimonials []models.Testimonial `json:"testimonials"`
}
