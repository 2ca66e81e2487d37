package models

import "time"

// Lead pipeline stages.
const (
	LeadStageNew       = "new"
	LeadStageContacted = "contacted"
	LeadStageBooked    = "booked"
	LeadStageWon       = "won"
	LeadStageLost      = "lost"
)

// ValidLeadStage reports whether s is one of the known pipeline stages.
func ValidLeadStage(s string) bool {
	switch s {
	case LeadStageNew, LeadStageContacted, LeadStageBooked, LeadStageWon, LeadStageLost:
		return true
	}
	return false
}

// Lead is a CRM pipeline entry. Leads created by the booking intake carry
// source "booking" and stage "booked".
type Lead struct {
	ID             string     `bson:"id" json:"id"`
	TutorID        string     `bson:"tutor_id" json:"tutorId"`
	Name           string     `bson:"name" json:"name"`
	Email          string     `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Source         string     `bson:"source,omitempty" json:"source,omitempty"`
	Stage          string     `bson:"stage" json:"stage"`
	Notes          string     `bson:"notes,omitempty" json:"notes,omitempty"`
	NextFollowUpAt *time.Time `bson:"next_follow_up_date,omitempty" json:"nextFollowUpDate,omitempty"`
	FollowUpDue    bool       `bson:"follow_up_due" json:"followUpDue"`
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updatedAt"`
}

// FollowUpPayload is the asynq task payload for a scheduled lead follow-up.
type FollowUpPayload struct {
	TutorID  string `json:"tutorId"`
	LeadID   string `json:"leadId"`
	LeadName string `json:"leadName"`
	FireDate string `json:"fireDate"`
}
