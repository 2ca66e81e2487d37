package models

import (
	"encoding/json"
	"time"
)

// Marketing asset types the content service can generate.
const (
	AssetLandingPage      = "landing_page"
	AssetAdAngles         = "ad_angles"
	AssetLinkedInOutreach = "linkedin_outreach"
	AssetEmailSequence    = "email_sequence"
	AssetDMSequence       = "dm_sequence"
)

// ValidAssetType reports whether t names a generatable asset.
func ValidAssetType(t string) bool {
	switch t {
	case AssetLandingPage, AssetAdAngles, AssetLinkedInOutreach, AssetEmailSequence, AssetDMSequence:
		return true
	}
	return false
}

// GrowthPlanBody is the structured plan produced by the model.
type GrowthPlanBody struct {
	Positioning     string   `bson:"positioning" json:"positioning"`
	Channels        []string `bson:"channels" json:"channels"`
	Offers          []Offer  `bson:"offers" json:"offers"`
	FunnelSteps     []string `bson:"funnel_steps" json:"funnel_steps"`
	WeeklyChecklist []string `bson:"weekly_checklist" json:"weekly_checklist"`
	KPIs            []KPI    `bson:"kpis" json:"kpis"`
}

type Offer struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

type KPI struct {
	Metric string `bson:"metric" json:"metric"`
	Target string `bson:"target" json:"target"`
}

// GrowthPlan is the stored marketing plan for a tutor. Regeneration replaces it.
type GrowthPlan struct {
	ID        string         `bson:"id" json:"id"`
	TutorID   string         `bson:"tutor_id" json:"tutorId"`
	Plan      GrowthPlanBody `bson:"plan" json:"plan"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
}

// Asset is a generated piece of marketing collateral. Content keeps the raw
// JSON shape the prompt requested, which differs per asset type.
type Asset struct {
	ID        string          `bson:"id" json:"id"`
	TutorID   string          `bson:"tutor_id" json:"tutorId"`
	AssetType string          `bson:"asset_type" json:"assetType"`
	Content   json.RawMessage `bson:"content" json:"content"`
	CreatedAt time.Time       `bson:"created_at" json:"createdAt"`
}
