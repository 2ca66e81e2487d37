package scheduling

import (
	"errors"
	"fmt"
	"time"

	availabilityRepo "tutorhq/database/repository/availability"
	"tutorhq/models"

	"github.com/google/uuid"
)

// ListRules returns the tutor's weekly availability rules.
func (s *DefaultSchedulingService) ListRules(tutorID string) ([]models.AvailabilityRule, error) {
	rules, err := s.AvailabilityRepo.ListByTutor(tutorID)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return rules, nil
}

// AddRule validates and stores one weekly availability rule.
func (s *DefaultSchedulingService) AddRule(tutorID string, rule models.AvailabilityRule) (*models.AvailabilityRule, error) {
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	rule.ID = uuid.New().String()
	rule.TutorID = tutorID
	rule.CreatedAt = time.Now().UTC()

	if err := s.AvailabilityRepo.Create(&rule); err != nil {
		if errors.Is(err, availabilityRepo.ErrDuplicateRule) {
			return nil, &ValidationError{Reason: "availability already set for this time slot"}
		}
		return nil, &PersistenceError{Err: err}
	}
	return &rule, nil
}

// DeleteRule removes one rule owned by the tutor.
func (s *DefaultSchedulingService) DeleteRule(tutorID, ruleID string) error {
	if err := s.AvailabilityRepo.Delete(ruleID, tutorID); err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			return &NotFoundError{Ref: ruleID}
		}
		return &PersistenceError{Err: err}
	}
	return nil
}

func validateRule(rule models.AvailabilityRule) error {
	if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
		return &ValidationError{Reason: "day_of_week must be 0-6"}
	}
	start, err := parseClock(rule.StartTime)
	if err != nil {
		return &ValidationError{Reason: "start_time must be HH:MM"}
	}
	end, err := parseClock(rule.EndTime)
	if err != nil {
		return &ValidationError{Reason: "end_time must be HH:MM"}
	}
	if start >= end {
		return &ValidationError{Reason: "start_time must precede end_time"}
	}
	if rule.SessionLength < models.MinSessionLength || rule.SessionLength > models.MaxSessionLength {
		return &ValidationError{Reason: fmt.Sprintf("session_length must be %d-%d minutes", models.MinSessionLength, models.MaxSessionLength)}
	}
	if rule.BufferTime < models.MinBufferTime || rule.BufferTime > models.MaxBufferTime {
		return &ValidationError{Reason: fmt.Sprintf("buffer_time must be %d-%d minutes", models.MinBufferTime, models.MaxBufferTime)}
	}
	return nil
}
