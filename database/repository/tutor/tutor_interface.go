package tutorRepo

import "tutorhq/models"

// TutorRepository defines data access for tutor accounts and their
// onboarding documents.
type TutorRepository interface {
	Create(tutor *models.Tutor) error
	GetByID(id string) (*models.Tutor, error)
	GetByEmail(email string) (*models.Tutor, error)
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
	SetTokenHash(id, tokenHash string) error

	UpsertOnboarding(ob *models.Onboarding) error
	GetOnboarding(tutorID string) (*models.Onboarding, error)
}
