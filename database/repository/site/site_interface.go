package siteRepo

import "tutorhq/models"

// SiteRepository defines data access for tutor mini-sites.
type SiteRepository interface {
	Upsert(site *models.TutorSite) error
	GetByTutorID(tutorID string) (*models.TutorSite, error)
	// GetPublishedBySlug resolves a public slug to its site. Unpublished
	// sites are invisible through this path.
	GetPublishedBySlug(slug string) (*models.TutorSite, error)
	SlugExists(slug string) (bool, error)
	SetPublished(tutorID string, published bool) error
	Delete(tutorID string) error
}
