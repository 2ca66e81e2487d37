package availabilityRepo

import "tutorhq/models"

// AvailabilityRepository defines data access for weekly availability rules.
// No pagination: the rule set for one tutor is small.
type AvailabilityRepository interface {
	Create(rule *models.AvailabilityRule) error
	ListByTutor(tutorID string) ([]models.AvailabilityRule, error)
	Delete(id, tutorID string) error
}
