package models

import "time"

// Tutor is a tutor account. One tutor owns one mini-site, one onboarding
// document, and all of the availability rules, bookings, leads and students
// created under it.
type Tutor struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	AvatarURL    string    `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	Timezone     string    `bson:"timezone" json:"timezone"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// OnboardingTarget describes who the tutor wants to teach.
type OnboardingTarget struct {
	AgeRange string   `bson:"age_range,omitempty" json:"ageRange,omitempty"`
	Level    string   `bson:"level,omitempty" json:"level,omitempty"`
	Exams    []string `bson:"exams,omitempty" json:"exams,omitempty"`
}

// PricingPackage is a bundled-sessions offer.
type PricingPackage struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Sessions int     `bson:"sessions" json:"sessions"`
}

// OnboardingPricing captures the tutor's rates.
type OnboardingPricing struct {
	HourlyRate float64          `bson:"hourly_rate,omitempty" json:"hourlyRate,omitempty"`
	Packages   []PricingPackage `bson:"packages,omitempty" json:"packages,omitempty"`
}

// HighPayingDefinition is the tutor's own definition of a high-value client.
type HighPayingDefinition struct {
	MinBudget  float64  `bson:"min_budget,omitempty" json:"minBudget,omitempty"`
	Goals      []string `bson:"goals,omitempty" json:"goals,omitempty"`
	ClientType string   `bson:"client_type,omitempty" json:"clientType,omitempty"`
}

// Onboarding holds the intake answers that feed content generation.
type Onboarding struct {
	ID        string               `bson:"id" json:"id"`
	TutorID   string               `bson:"tutor_id" json:"tutorId"`
	Subjects  []string             `bson:"subjects" json:"subjects"`
	Target    OnboardingTarget     `bson:"target" json:"target"`
	Location  string               `bson:"location,omitempty" json:"location,omitempty"`
	Timezone  string               `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Pricing   OnboardingPricing    `bson:"pricing" json:"pricing"`
	HighValue HighPayingDefinition `bson:"high_paying_definition" json:"highPayingDefinition"`
	Completed bool                 `bson:"completed" json:"completed"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updatedAt"`
}
