package content

import (
	"fmt"
	"strings"

	"tutorhq/models"
)

// promptContext flattens onboarding answers into the shared header every
// prompt starts with.
func promptContext(name string, ob *models.Onboarding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Subjects: %s\n", strings.Join(ob.Subjects, ", "))

	ageRange := ob.Target.AgeRange
	if ageRange == "" {
		ageRange = "All ages"
	}
	level := ob.Target.Level
	if level == "" {
		level = "All levels"
	}
	fmt.Fprintf(&b, "Target students: %s, %s\n", ageRange, level)
	if len(ob.Target.Exams) > 0 {
		fmt.Fprintf(&b, "Exam prep: %s\n", strings.Join(ob.Target.Exams, ", "))
	}

	location := ob.Location
	if location == "" {
		location = "Online"
	}
	fmt.Fprintf(&b, "Location: %s\n", location)
	if ob.Pricing.HourlyRate > 0 {
		fmt.Fprintf(&b, "Hourly rate: $%.0f\n", ob.Pricing.HourlyRate)
	}
	return b.String()
}

func growthPlanPrompt(name string, ob *models.Onboarding) string {
	minBudget := ob.HighValue.MinBudget
	if minBudget == 0 {
		minBudget = 500
	}
	clientType := ob.HighValue.ClientType
	if clientType == "" {
		clientType = "Any"
	}
	goals := strings.Join(ob.HighValue.Goals, ", ")
	if goals == "" {
		goals = "Academic improvement"
	}

	return fmt.Sprintf(`You are a marketing expert for tutors. Create a comprehensive growth plan for this tutor:

%s
High-value client definition: Min budget $%.0f, Client type: %s, Goals: %s

Generate a detailed growth plan in JSON format with these exact fields:
{
  "positioning": "A clear 2-3 sentence positioning statement",
  "channels": ["Array of 5 best marketing channels for this tutor"],
  "offers": [
    {"name": "Offer name", "description": "Brief description"},
    {"name": "Offer name 2", "description": "Brief description"}
  ],
  "funnel_steps": ["Step 1", "Step 2", "Step 3", "Step 4", "Step 5"],
  "weekly_checklist": ["10 specific weekly action items"],
  "kpis": [
    {"metric": "KPI name", "target": "Specific target"},
    {"metric": "KPI 2", "target": "Target 2"}
  ]
}

Respond with JSON only, no markdown fences. Be specific and actionable. Tailor everything to this tutor's niche and target market.`,
		promptContext(name, ob), minBudget, clientType, goals)
}

// assetPrompt returns the generation prompt for one asset type, or "" for
// an unknown type.
func assetPrompt(assetType, name string, ob *models.Onboarding) string {
	header := promptContext(name, ob)

	var body string
	switch assetType {
	case models.AssetLandingPage:
		body = `Create landing page copy for this tutor.

Return JSON:
{
  "headline": "Compelling headline",
  "subheadline": "Supporting subheadline",
  "bullets": ["Benefit 1", "Benefit 2", "Benefit 3", "Benefit 4"],
  "cta": "Call to action text",
  "social_proof": "A line about results/experience"
}`
	case models.AssetAdAngles:
		body = `Create 3 ad angles for this tutor.

Return JSON:
{
  "angles": [
    {"hook": "Hook 1", "headline": "Headline 1", "body": "Short ad body"},
    {"hook": "Hook 2", "headline": "Headline 2", "body": "Short ad body"},
    {"hook": "Hook 3", "headline": "Headline 3", "body": "Short ad body"}
  ]
}`
	case models.AssetLinkedInOutreach:
		body = `Create LinkedIn outreach for this tutor reaching out to potential clients (parents/students).

Return JSON:
{
  "connection_request": "Short connection request message",
  "initial_message": "First message after connecting",
  "follow_ups": ["Follow up 1", "Follow up 2", "Follow up 3", "Follow up 4", "Follow up 5"]
}`
	case models.AssetEmailSequence:
		body = `Create a 5-email nurture sequence for this tutor's leads.

Return JSON:
{
  "emails": [
    {"subject": "Subject 1", "body": "Email body 1"},
    {"subject": "Subject 2", "body": "Email body 2"},
    {"subject": "Subject 3", "body": "Email body 3"},
    {"subject": "Subject 4", "body": "Email body 4"},
    {"subject": "Subject 5", "body": "Email body 5"}
  ]
}`
	case models.AssetDMSequence:
		body = `Create a 5-message DM sequence for Instagram/Twitter outreach for this tutor.

Return JSON:
{
  "messages": [
    {"timing": "Day 1", "message": "First DM"},
    {"timing": "Day 3", "message": "Second DM"},
    {"timing": "Day 5", "message": "Third DM"},
    {"timing": "Day 8", "message": "Fourth DM"},
    {"timing": "Day 12", "message": "Fifth DM"}
  ]
}`
	default:
		return ""
	}

	return header + "\n" + body + "\n\nRespond with JSON only, no markdown fences."
}
