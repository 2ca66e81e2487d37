package crm

import (
	"errors"
	"fmt"
	"time"

	leadRepo "tutorhq/database/repository/lead"
	"tutorhq/models"
	"tutorhq/services/tasks"
	"tutorhq/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrLeadNotFound is returned when the lead does not exist for the tutor.
var ErrLeadNotFound = errors.New("lead not found")

// CreateLead adds a manually entered lead in stage "new".
func (s *DefaultCRMService) CreateLead(tutorID string, req LeadRequest) (*models.Lead, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("lead name is required")
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	now := time.Now()
	lead := &models.Lead{
		ID:        uuid.New().String(),
		TutorID:   tutorID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Source:    source,
		Stage:     models.LeadStageNew,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(lead); err != nil {
		utils.GetLogger().Error("CreateLead: insert failed", zap.String("tutorID", tutorID), zap.Error(err))
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

// GetLead fetches one lead scoped to the tutor.
func (s *DefaultCRMService) GetLead(tutorID, leadID string) (*models.Lead, error) {
	lead, err := s.Repo.GetByID(leadID, tutorID)
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	return lead, nil
}

// ListLeads returns the tutor's full pipeline.
func (s *DefaultCRMService) ListLeads(tutorID string) ([]models.Lead, error) {
	leads, err := s.Repo.ListByTutor(tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// UpdateLead applies a partial update. A stage change is validated against
// the known pipeline stages.
func (s *DefaultCRMService) UpdateLead(tutorID, leadID string, req LeadUpdateRequest) (*models.Lead, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Notes != "" {
		fields["notes"] = req.Notes
	}
	if req.Stage != "" {
		if !models.ValidLeadStage(req.Stage) {
			return nil, fmt.Errorf("unknown pipeline stage %q", req.Stage)
		}
		fields["stage"] = req.Stage
	}
	if len(fields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.Update(leadID, tutorID, fields); err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return s.GetLead(tutorID, leadID)
}

// DeleteLead removes the lead.
func (s *DefaultCRMService) DeleteLead(tutorID, leadID string) error {
	if err := s.Repo.Delete(leadID, tutorID); err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return ErrLeadNotFound
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}

// ScheduleFollowUp stores the follow-up date on the lead and enqueues a
// delayed task that flips the lead to follow-up-due when it fires.
func (s *DefaultCRMService) ScheduleFollowUp(tutorID, leadID string, at time.Time) (*models.Lead, error) {
	if at.Before(time.Now()) {
		return nil, fmt.Errorf("follow-up date must be in the future")
	}

	lead, err := s.GetLead(tutorID, leadID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"next_follow_up_date": at,
		"follow_up_due":       false,
		"updated_at":          time.Now(),
	}
	if err := s.Repo.Update(leadID, tutorID, fields); err != nil {
		return nil, fmt.Errorf("failed to set follow-up date: %w", err)
	}

	if s.AsynqClient == nil {
		return nil, fmt.Errorf("task queue unavailable, follow-up not scheduled")
	}

	payload := models.FollowUpPayload{
		TutorID:  tutorID,
		LeadID:   leadID,
		LeadName: lead.Name,
		FireDate: at.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewFollowUpTask(payload, at)
	if err != nil {
		return nil, fmt.Errorf("failed to build follow-up task: %w", err)
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("ScheduleFollowUp: enqueue failed",
			zap.String("leadID", leadID), zap.Error(err))
		return nil, fmt.Errorf("failed to enqueue follow-up: %w", err)
	}

	lead.NextFollowUpAt = &at
	lead.FollowUpDue = false
	return lead, nil
}
