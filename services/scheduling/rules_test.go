package scheduling

import (
	"errors"
	"testing"
	"time"

	"tutorhq/models"
)

func baseRule() models.AvailabilityRule {
	return models.AvailabilityRule{
		DayOfWeek:     int(time.Monday),
		StartTime:     "09:00",
		EndTime:       "17:00",
		SessionLength: 60,
		BufferTime:    15,
	}
}

func TestAddRule_AssignsIdentity(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := newTestService(&fakeBookingRepo{}, &fakeLeadRepo{})
	svc.AvailabilityRepo = repo

	created, err := svc.AddRule("tutor-1", baseRule())
	if err != nil {
		t.Fatalf("AddRule failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated rule ID")
	}
	if created.TutorID != "tutor-1" {
		t.Errorf("expected tutor-1 ownership, got %q", created.TutorID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if len(repo.rules) != 1 {
		t.Fatalf("expected one persisted rule, got %d", len(repo.rules))
	}
}

func TestAddRule_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.AvailabilityRule)
	}{
		{"day below range", func(r *models.AvailabilityRule) { r.DayOfWeek = -1 }},
		{"day above range", func(r *models.AvailabilityRule) { r.DayOfWeek = 7 }},
		{"malformed start", func(r *models.AvailabilityRule) { r.StartTime = "9am" }},
		{"malformed end", func(r *models.AvailabilityRule) { r.EndTime = "25:00" }},
		{"start equals end", func(r *models.AvailabilityRule) { r.EndTime = r.StartTime }},
		{"start after end", func(r *models.AvailabilityRule) { r.StartTime, r.EndTime = r.EndTime, r.StartTime }},
		{"session too short", func(r *models.AvailabilityRule) { r.SessionLength = models.MinSessionLength - 1 }},
		{"session too long", func(r *models.AvailabilityRule) { r.SessionLength = models.MaxSessionLength + 1 }},
		{"negative buffer", func(r *models.AvailabilityRule) { r.BufferTime = -1 }},
		{"buffer too long", func(r *models.AvailabilityRule) { r.BufferTime = models.MaxBufferTime + 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeAvailabilityRepo{}
			svc := newTestService(&fakeBookingRepo{}, &fakeLeadRepo{})
			svc.AvailabilityRepo = repo

			rule := baseRule()
			tc.mutate(&rule)

			_, err := svc.AddRule("tutor-1", rule)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(repo.rules) != 0 {
				t.Errorf("invalid rule must not be persisted, got %d", len(repo.rules))
			}
		})
	}
}

func TestAddRule_BoundaryValuesAccepted(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.AvailabilityRule)
	}{
		{"min session", func(r *models.AvailabilityRule) { r.SessionLength = models.MinSessionLength }},
		{"max session", func(r *models.AvailabilityRule) { r.SessionLength = models.MaxSessionLength }},
		{"zero buffer", func(r *models.AvailabilityRule) { r.BufferTime = 0 }},
		{"max buffer", func(r *models.AvailabilityRule) { r.BufferTime = models.MaxBufferTime }},
		{"sunday", func(r *models.AvailabilityRule) { r.DayOfWeek = 0 }},
		{"saturday", func(r *models.AvailabilityRule) { r.DayOfWeek = 6 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(&fakeBookingRepo{}, &fakeLeadRepo{})
			svc.AvailabilityRepo = &fakeAvailabilityRepo{}

			rule := baseRule()
			tc.mutate(&rule)

			if _, err := svc.AddRule("tutor-1", rule); err != nil {
				t.Fatalf("expected boundary value to pass, got %v", err)
			}
		})
	}
}

func TestDeleteRule_Unknown(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeLeadRepo{})
	svc.AvailabilityRepo = &fakeAvailabilityRepo{}

	err := svc.DeleteRule("tutor-1", "missing")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
