package models

import "time"

// Bounds enforced on availability rules.
const (
	MinSessionLength = 15
	MaxSessionLength = 180
	MinBufferTime    = 0
	MaxBufferTime    = 60
)

// AvailabilityRule is a recurring weekly availability template. Times are
// wall-clock "HH:MM" strings interpreted in the tutor's configured timezone,
// with day_of_week 0-6 Sunday-first. A tutor may hold several rules for the
// same day; overlap between rules is tolerated and never deduplicated.
type AvailabilityRule struct {
	ID            string    `bson:"id" json:"id"`
	TutorID       string    `bson:"tutor_id" json:"tutorId"`
	DayOfWeek     int       `bson:"day_of_week" json:"dayOfWeek"`
	StartTime     string    `bson:"start_time" json:"startTime"`
	EndTime       string    `bson:"end_time" json:"endTime"`
	SessionLength int       `bson:"session_length" json:"sessionLength"`
	BufferTime    int       `bson:"buffer_time" json:"bufferTime"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
