package leadRepo

import "tutorhq/models"

// LeadRepository defines data access for CRM leads.
type LeadRepository interface {
	Create(lead *models.Lead) error
	GetByID(id, tutorID string) (*models.Lead, error)
	ListByTutor(tutorID string) ([]models.Lead, error)
	Update(id, tutorID string, fields map[string]interface{}) error
	Delete(id, tutorID string) error
	// MarkFollowUpDue is set by the reminder worker when a scheduled
	// follow-up fires.
	MarkFollowUpDue(id string) error
}
