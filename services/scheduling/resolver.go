package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tutorhq/models"
)

// Slot is a concrete bookable interval derived from a rule. Slots are
// ephemeral: recomputed on every request, never stored.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ListAvailableSlots derives the offerable slots for one calendar date from
// the tutor's weekly rules and the confirmed bookings in the lookahead
// window. Pure: no I/O, deterministic for identical inputs.
//
// For each rule matching targetDate's weekday, a cursor walks from the
// rule's start to end time in steps of session_length+buffer_time minutes;
// the walk continues while the cursor start is before the rule end, so the
// final session may run past it. Candidates starting at or before now are
// dropped, as are candidates overlapping any confirmed booking under
// half-open interval semantics. Rules are taken as tutor-authored and may
// overlap each other; candidates are only ever deduplicated against
// bookings, never against other rules.
func ListAvailableSlots(rules []models.AvailabilityRule, confirmed []models.Booking, targetDate, now time.Time) []Slot {
	weekday := int(targetDate.Weekday())
	midnight := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())

	var slots []Slot
	for _, rule := range rules {
		if rule.DayOfWeek != weekday {
			continue
		}
		startMin, err := parseClock(rule.StartTime)
		if err != nil {
			continue
		}
		endMin, err := parseClock(rule.EndTime)
		if err != nil || startMin >= endMin || rule.SessionLength <= 0 {
			continue
		}

		step := rule.SessionLength + rule.BufferTime
		for cursor := startMin; cursor < endMin; cursor += step {
			start := midnight.Add(time.Duration(cursor) * time.Minute)
			end := start.Add(time.Duration(rule.SessionLength) * time.Minute)

			if !start.After(now) {
				continue
			}
			if overlapsAny(start, end, confirmed) {
				continue
			}
			slots = append(slots, Slot{Start: start, End: end})
		}
	}
	return slots
}

// overlapsAny reports whether [start, end) overlaps any confirmed booking.
// Half-open semantics: a slot that merely touches a booking boundary does
// not conflict.
func overlapsAny(start, end time.Time, confirmed []models.Booking) bool {
	for _, b := range confirmed {
		if b.Status != "" && b.Status != models.BookingConfirmed {
			continue
		}
		if start.Before(b.EndTS) && end.After(b.StartTS) {
			return true
		}
	}
	return false
}

// parseClock converts an "HH:MM" wall-clock string to minutes since
// midnight. Working in whole minutes sidesteps hour-carry arithmetic.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}
