package scheduling

import (
	"context"
	"time"

	availabilityRepo "tutorhq/database/repository/availability"
	bookingRepo "tutorhq/database/repository/booking"
	leadRepo "tutorhq/database/repository/lead"
	siteRepo "tutorhq/database/repository/site"
	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/models"
)

// DefaultLookaheadDays bounds the confirmed-booking read behind the public
// booking page.
const DefaultLookaheadDays = 14

// BookingRequest is the intake payload for the public booking page.
type BookingRequest struct {
	TutorSlug     string    `json:"-"`
	StartTS       time.Time `json:"startTs" binding:"required"`
	EndTS         time.Time `json:"endTs" binding:"required"`
	ProspectName  string    `json:"name" binding:"required"`
	ProspectEmail string    `json:"email" binding:"required"`
	Reason        string    `json:"reason"`
}

// SchedulingService owns availability rules, slot resolution for the public
// booking page, and booking intake.
type SchedulingService interface {
	ListRules(tutorID string) ([]models.AvailabilityRule, error)
	AddRule(tutorID string, rule models.AvailabilityRule) (*models.AvailabilityRule, error)
	DeleteRule(tutorID, ruleID string) error

	// ListSlotsForDate resolves a public slug and a calendar date
	// ("2006-01-02") to the offerable slots on that date.
	ListSlotsForDate(slug, date string) ([]Slot, error)

	CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error)

	ListBookings(tutorID string) ([]models.Booking, error)
	CancelBooking(tutorID, bookingID string) error
}

// DefaultSchedulingService is the production scheduling service.
type DefaultSchedulingService struct {
	TutorRepo        tutorRepo.TutorRepository
	SiteRepo         siteRepo.SiteRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	BookingRepo      bookingRepo.BookingRepository
	LeadRepo         leadRepo.LeadRepository

	// LookaheadDays overrides DefaultLookaheadDays when positive.
	LookaheadDays int

	// Now allows tests to pin the clock. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSchedulingService) lookahead() time.Duration {
	days := s.LookaheadDays
	if days <= 0 {
		days = DefaultLookaheadDays
	}
	return time.Duration(days) * 24 * time.Hour
}
