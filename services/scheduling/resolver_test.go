package scheduling

import (
	"reflect"
	"testing"
	"time"

	"tutorhq/models"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func mondayAt(hour, min int) time.Time {
	return time.Date(2026, 9, 7, hour, min, 0, 0, time.UTC)
}

func workdayRule(start, end string, session, buffer int) models.AvailabilityRule {
	return models.AvailabilityRule{
		ID:            "rule-1",
		TutorID:       "tutor-1",
		DayOfWeek:     int(time.Monday),
		StartTime:     start,
		EndTime:       end,
		SessionLength: session,
		BufferTime:    buffer,
	}
}

func confirmed(start, end time.Time) models.Booking {
	return models.Booking{
		TutorID: "tutor-1",
		StartTS: start,
		EndTS:   end,
		Status:  models.BookingConfirmed,
	}
}

func TestListAvailableSlots_WalksRuleWithBuffer(t *testing.T) {
	rules := []models.AvailabilityRule{workdayRule("09:00", "17:00", 60, 15)}
	now := monday // midnight, all slots in the future

	slots := ListAvailableSlots(rules, nil, monday, now)

	want := []time.Time{
		mondayAt(9, 0), mondayAt(10, 15), mondayAt(11, 30), mondayAt(12, 45),
		mondayAt(14, 0), mondayAt(15, 15), mondayAt(16, 30),
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i, w := range want {
		if !slots[i].Start.Equal(w) {
			t.Errorf("slot %d: expected start %v, got %v", i, w, slots[i].Start)
		}
		if !slots[i].End.Equal(w.Add(60 * time.Minute)) {
			t.Errorf("slot %d: expected end %v, got %v", i, w.Add(60*time.Minute), slots[i].End)
		}
	}
}

func TestListAvailableSlots_MinuteCarryAcrossHours(t *testing.T) {
	// 45-minute step starting at 09:30 crosses hour boundaries.
	rules := []models.AvailabilityRule{workdayRule("09:30", "12:00", 45, 0)}

	slots := ListAvailableSlots(rules, nil, monday, monday)

	want := []time.Time{mondayAt(9, 30), mondayAt(10, 15), mondayAt(11, 0), mondayAt(11, 45)}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i, w := range want {
		if !slots[i].Start.Equal(w) {
			t.Errorf("slot %d: expected start %v, got %v", i, w, slots[i].Start)
		}
	}
}

func TestListAvailableSlots_HalfOpenOverlap(t *testing.T) {
	rules := []models.AvailabilityRule{workdayRule("09:00", "14:00", 60, 0)}

	tests := []struct {
		name    string
		booking models.Booking
		blocked []time.Time
	}{
		{
			name:    "touching boundary does not conflict",
			booking: confirmed(mondayAt(10, 0), mondayAt(11, 0)),
			blocked: []time.Time{mondayAt(10, 0)},
		},
		{
			name:    "straddling booking blocks both neighbours",
			booking: confirmed(mondayAt(10, 59), mondayAt(11, 59)),
			blocked: []time.Time{mondayAt(10, 0), mondayAt(11, 0)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slots := ListAvailableSlots(rules, []models.Booking{tc.booking}, monday, monday)

			got := map[time.Time]bool{}
			for _, s := range slots {
				got[s.Start] = true
			}
			for _, b := range tc.blocked {
				if got[b] {
					t.Errorf("slot %v should be excluded by booking %v-%v", b, tc.booking.StartTS, tc.booking.EndTS)
				}
			}
			// All other walk positions stay offerable.
			for h := 9; h < 14; h++ {
				start := mondayAt(h, 0)
				excluded := false
				for _, b := range tc.blocked {
					if start.Equal(b) {
						excluded = true
					}
				}
				if !excluded && !got[start] {
					t.Errorf("slot %v should remain available", start)
				}
			}
		})
	}
}

func TestListAvailableSlots_PastAndPresentExcluded(t *testing.T) {
	rules := []models.AvailabilityRule{workdayRule("09:00", "12:00", 60, 0)}

	// now exactly at the 10:00 candidate: 09:00 and 10:00 are gone, 11:00 stays.
	now := mondayAt(10, 0)
	slots := ListAvailableSlots(rules, nil, monday, now)

	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d: %v", len(slots), slots)
	}
	if !slots[0].Start.Equal(mondayAt(11, 0)) {
		t.Errorf("expected slot at 11:00, got %v", slots[0].Start)
	}
}

func TestListAvailableSlots_WeekdayFilter(t *testing.T) {
	rules := []models.AvailabilityRule{
		workdayRule("09:00", "10:00", 60, 0),
		{
			DayOfWeek: int(time.Tuesday), StartTime: "09:00", EndTime: "10:00",
			SessionLength: 60,
		},
	}

	slots := ListAvailableSlots(rules, nil, monday, monday)

	if len(slots) != 1 {
		t.Fatalf("expected only the Monday rule to produce a slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(mondayAt(9, 0)) {
		t.Errorf("expected slot at 09:00, got %v", slots[0].Start)
	}
}

func TestListAvailableSlots_OverlappingRulesBothProduce(t *testing.T) {
	// Tutor-authored rules may overlap; candidates are never deduplicated
	// against each other.
	rules := []models.AvailabilityRule{
		workdayRule("09:00", "11:00", 60, 0),
		workdayRule("09:30", "10:30", 60, 0),
	}

	slots := ListAvailableSlots(rules, nil, monday, monday)

	want := []time.Time{mondayAt(9, 0), mondayAt(10, 0), mondayAt(9, 30)}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i, w := range want {
		if !slots[i].Start.Equal(w) {
			t.Errorf("slot %d: expected start %v (rule order preserved), got %v", i, w, slots[i].Start)
		}
	}
}

func TestListAvailableSlots_Deterministic(t *testing.T) {
	rules := []models.AvailabilityRule{workdayRule("09:00", "17:00", 60, 15)}
	bookings := []models.Booking{confirmed(mondayAt(11, 30), mondayAt(12, 30))}
	now := mondayAt(8, 0)

	first := ListAvailableSlots(rules, bookings, monday, now)
	second := ListAvailableSlots(rules, bookings, monday, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different outputs:\n%v\n%v", first, second)
	}
}

func TestListAvailableSlots_SkipsMalformedRules(t *testing.T) {
	rules := []models.AvailabilityRule{
		{DayOfWeek: int(time.Monday), StartTime: "bogus", EndTime: "10:00", SessionLength: 60},
		{DayOfWeek: int(time.Monday), StartTime: "10:00", EndTime: "09:00", SessionLength: 60},
		{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "10:00", SessionLength: 0},
		workdayRule("12:00", "13:00", 60, 0),
	}

	slots := ListAvailableSlots(rules, nil, monday, monday)

	if len(slots) != 1 {
		t.Fatalf("expected only the well-formed rule to produce a slot, got %d: %v", len(slots), slots)
	}
	if !slots[0].Start.Equal(mondayAt(12, 0)) {
		t.Errorf("expected slot at 12:00, got %v", slots[0].Start)
	}
}

func TestListAvailableSlots_CancelledBookingsIgnored(t *testing.T) {
	rules := []models.AvailabilityRule{workdayRule("09:00", "10:00", 60, 0)}
	cancelled := models.Booking{
		StartTS: mondayAt(9, 0),
		EndTS:   mondayAt(10, 0),
		Status:  models.BookingCancelled,
	}

	slots := ListAvailableSlots(rules, []models.Booking{cancelled}, monday, monday)

	if len(slots) != 1 {
		t.Fatalf("cancelled booking should not block the slot, got %d slots", len(slots))
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 545, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tc := range tests {
		got, err := parseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseClock(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseClock(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
