package crm

import (
	"time"

	leadRepo "tutorhq/database/repository/lead"
	"tutorhq/models"

	"github.com/hibiken/asynq"
)

// CRMService manages the lead pipeline and scheduled follow-ups.
type CRMService interface {
	CreateLead(tutorID string, req LeadRequest) (*models.Lead, error)
	GetLead(tutorID, leadID string) (*models.Lead, error)
	ListLeads(tutorID string) ([]models.Lead, error)
	UpdateLead(tutorID, leadID string, req LeadUpdateRequest) (*models.Lead, error)
	DeleteLead(tutorID, leadID string) error
	// ScheduleFollowUp sets the lead's follow-up date and enqueues a
	// delayed reminder task for it.
	ScheduleFollowUp(tutorID, leadID string, at time.Time) (*models.Lead, error)
}

// DefaultCRMService is the production implementation.
type DefaultCRMService struct {
	Repo        leadRepo.LeadRepository
	AsynqClient *asynq.Client
}

// LeadRequest carries a manually created lead.
type LeadRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Source string `json:"source"`
	Notes  string `json:"notes"`
}

// LeadUpdateRequest carries a partial lead update. Empty fields are skipped.
type LeadUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Stage string `json:"stage"`
	Notes string `json:"notes"`
}
