package scheduling

import (
	"errors"
	"fmt"
	"time"

	siteRepo "tutorhq/database/repository/site"
)

// ListSlotsForDate resolves a public slug and a calendar date to the
// offerable slots on that date. The date is anchored in the tutor's
// configured timezone before the pure resolution runs.
func (s *DefaultSchedulingService) ListSlotsForDate(slug, date string) ([]Slot, error) {
	site, err := s.SiteRepo.GetPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, siteRepo.ErrNotFound) {
			return nil, &NotFoundError{Ref: slug}
		}
		return nil, &PersistenceError{Err: err}
	}

	loc := s.tutorLocation(site.TutorID)
	targetDate, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid date %q", date)}
	}

	rules, err := s.AvailabilityRepo.ListByTutor(site.TutorID)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}

	now := s.now()
	confirmed, err := s.BookingRepo.ListConfirmedInWindow(site.TutorID, now, now.Add(s.lookahead()))
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}

	return ListAvailableSlots(rules, confirmed, targetDate, now), nil
}

// tutorLocation falls back to UTC when the tutor has no usable timezone.
func (s *DefaultSchedulingService) tutorLocation(tutorID string) *time.Location {
	tutor, err := s.TutorRepo.GetByID(tutorID)
	if err != nil || tutor.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tutor.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
