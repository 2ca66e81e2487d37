package bookingRepo

import (
	"context"
	"time"

	"tutorhq/models"
)

// BookingRepository defines data access for bookings. InsertExclusive is the
// single point of truth for conflict prevention: it must reject, atomically,
// any insert whose [start_ts, end_ts) interval overlaps an existing confirmed
// booking for the same tutor. Callers never re-check availability at write
// time; a stale slot list surfaces here as ErrIntervalTaken.
type BookingRepository interface {
	InsertExclusive(ctx context.Context, booking *models.Booking) error
	ListConfirmedInWindow(tutorID string, from, to time.Time) ([]models.Booking, error)
	ListByTutor(tutorID string) ([]models.Booking, error)
	Cancel(id, tutorID string) error
}
