package models

import "time"

// Booking status values. A booking is created confirmed and may only ever
// transition to cancelled.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is a confirmed reservation of one session interval. Created only
// through the booking intake path; immutable afterwards except cancellation.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	TutorID       string    `bson:"tutor_id" json:"tutorId"`
	StartTS       time.Time `bson:"start_ts" json:"startTs"`
	EndTS         time.Time `bson:"end_ts" json:"endTs"`
	ProspectName  string    `bson:"prospect_name" json:"prospectName"`
	ProspectEmail string    `bson:"prospect_email" json:"prospectEmail"`
	Reason        string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
