package scheduling

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	bookingRepo "tutorhq/database/repository/booking"
	siteRepo "tutorhq/database/repository/site"
	"tutorhq/models"
	"tutorhq/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxReasonLength bounds the free-text reason a prospect may attach.
const MaxReasonLength = 500

// CreateBooking records a reservation for a slot previously offered by
// ListSlotsForDate. The repository's exclusive insert is the sole arbiter of
// the reservation: the slot list handed to the prospect may be stale by the
// time this runs, so no availability re-check happens here. A rejected insert
// surfaces as SlotUnavailableError and the caller must re-fetch slots.
// On success a CRM lead is created best-effort: its failure is logged and
// never affects the booking result.
func (s *DefaultSchedulingService) CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	site, err := s.SiteRepo.GetPublishedBySlug(req.TutorSlug)
	if err != nil {
		if errors.Is(err, siteRepo.ErrNotFound) {
			return nil, &NotFoundError{Ref: req.TutorSlug}
		}
		return nil, &PersistenceError{Err: err}
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		TutorID:       site.TutorID,
		StartTS:       req.StartTS.UTC(),
		EndTS:         req.EndTS.UTC(),
		ProspectName:  req.ProspectName,
		ProspectEmail: req.ProspectEmail,
		Reason:        req.Reason,
		Status:        models.BookingConfirmed,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.BookingRepo.InsertExclusive(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrIntervalTaken) {
			return nil, &SlotUnavailableError{}
		}
		return nil, &PersistenceError{Err: err}
	}

	s.createLeadForBooking(site.TutorID, booking)

	return booking, nil
}

// createLeadForBooking is the advisory side effect of a successful booking.
func (s *DefaultSchedulingService) createLeadForBooking(tutorID string, booking *models.Booking) {
	now := time.Now().UTC()
	lead := &models.Lead{
		ID:        uuid.New().String(),
		TutorID:   tutorID,
		Name:      booking.ProspectName,
		Email:     booking.ProspectEmail,
		Source:    "booking",
		Stage:     models.LeadStageBooked,
		Notes:     booking.Reason,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.LeadRepo.Create(lead); err != nil {
		utils.GetLogger().Warn("booking intake: failed to create CRM lead",
			zap.String("tutorID", tutorID),
			zap.String("bookingID", booking.ID),
			zap.Error(err))
	}
}

func validateRequest(req BookingRequest) error {
	if strings.TrimSpace(req.ProspectName) == "" {
		return &ValidationError{Reason: "name is required"}
	}
	if _, err := mail.ParseAddress(req.ProspectEmail); err != nil {
		return &ValidationError{Reason: "invalid email address"}
	}
	if len(req.Reason) > MaxReasonLength {
		return &ValidationError{Reason: "reason exceeds 500 characters"}
	}
	if req.StartTS.IsZero() || req.EndTS.IsZero() || !req.StartTS.Before(req.EndTS) {
		return &ValidationError{Reason: "slot start must precede slot end"}
	}
	return nil
}

// ListBookings returns all bookings for the tutor dashboard.
func (s *DefaultSchedulingService) ListBookings(tutorID string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.ListByTutor(tutorID)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return bookings, nil
}

// CancelBooking flips a confirmed booking to cancelled.
func (s *DefaultSchedulingService) CancelBooking(tutorID, bookingID string) error {
	if err := s.BookingRepo.Cancel(bookingID, tutorID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return &NotFoundError{Ref: bookingID}
		}
		return &PersistenceError{Err: err}
	}
	return nil
}
