package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	contentRepo "tutorhq/database/repository/content"
	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/models"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeContentRepo struct {
	plans  map[string]*models.GrowthPlan
	assets map[string]*models.Asset
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		plans:  map[string]*models.GrowthPlan{},
		assets: map[string]*models.Asset{},
	}
}

func (f *fakeContentRepo) SaveGrowthPlan(plan *models.GrowthPlan) error {
	f.plans[plan.TutorID] = plan
	return nil
}
func (f *fakeContentRepo) GetGrowthPlan(tutorID string) (*models.GrowthPlan, error) {
	if p, ok := f.plans[tutorID]; ok {
		return p, nil
	}
	return nil, contentRepo.ErrNotFound
}
func (f *fakeContentRepo) SaveAsset(asset *models.Asset) error {
	f.assets[asset.TutorID+":"+asset.AssetType] = asset
	return nil
}
func (f *fakeContentRepo) GetAsset(tutorID, assetType string) (*models.Asset, error) {
	if a, ok := f.assets[tutorID+":"+assetType]; ok {
		return a, nil
	}
	return nil, contentRepo.ErrNotFound
}
func (f *fakeContentRepo) ListAssets(tutorID string) ([]models.Asset, error) {
	var out []models.Asset
	for _, a := range f.assets {
		if a.TutorID == tutorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeTutorStore struct {
	tutor      *models.Tutor
	onboarding *models.Onboarding
}

func (f *fakeTutorStore) Create(t *models.Tutor) error { return nil }
func (f *fakeTutorStore) GetByID(id string) (*models.Tutor, error) {
	if f.tutor != nil && f.tutor.ID == id {
		return f.tutor, nil
	}
	return nil, tutorRepo.ErrNotFound
}
func (f *fakeTutorStore) GetByEmail(email string) (*models.Tutor, error) {
	return nil, tutorRepo.ErrNotFound
}
func (f *fakeTutorStore) Update(id string, fields map[string]interface{}) error { return nil }
func (f *fakeTutorStore) Delete(id string) error                                { return nil }
func (f *fakeTutorStore) SetTokenHash(id, tokenHash string) error               { return nil }
func (f *fakeTutorStore) UpsertOnboarding(ob *models.Onboarding) error          { return nil }
func (f *fakeTutorStore) GetOnboarding(tutorID string) (*models.Onboarding, error) {
	if f.onboarding != nil && f.onboarding.TutorID == tutorID {
		return f.onboarding, nil
	}
	return nil, tutorRepo.ErrNotFound
}

func testOnboarding() *models.Onboarding {
	return &models.Onboarding{
		ID:      "ob-1",
		TutorID: "tutor-1",
		Subjects: []string{
			"Calculus", "Linear Algebra",
		},
		Target:  models.OnboardingTarget{AgeRange: "14-18", Level: "High school", Exams: []string{"SAT"}},
		Pricing: models.OnboardingPricing{HourlyRate: 80},
		HighValue: models.HighPayingDefinition{
			MinBudget: 1000, ClientType: "Parents", Goals: []string{"Ivy admission"},
		},
	}
}

func newContentService(gen *fakeGenerator) (*DefaultContentService, *fakeContentRepo) {
	repo := newFakeContentRepo()
	svc := &DefaultContentService{
		Repo:      repo,
		TutorRepo: &fakeTutorStore{tutor: &models.Tutor{ID: "tutor-1", Name: "Ada"}, onboarding: testOnboarding()},
		Generator: gen,
	}
	return svc, repo
}

func TestGenerateGrowthPlan(t *testing.T) {
	gen := &fakeGenerator{response: `{
		"positioning": "SAT calculus specialist for ambitious students.",
		"channels": ["SEO"],
		"offers": [{"name": "Intensive", "description": "8 week program"}],
		"funnel_steps": ["Discover", "Book"],
		"weekly_checklist": ["Post twice"],
		"kpis": [{"metric": "Leads", "target": "10/month"}]
	}`}
	svc, repo := newContentService(gen)

	plan, err := svc.GenerateGrowthPlan(context.Background(), "tutor-1")
	if err != nil {
		t.Fatalf("GenerateGrowthPlan failed: %v", err)
	}
	if plan.Plan.Positioning == "" || len(plan.Plan.Channels) != 1 {
		t.Errorf("plan body not parsed: %+v", plan.Plan)
	}
	if _, ok := repo.plans["tutor-1"]; !ok {
		t.Error("plan was not persisted")
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("expected one model call, got %d", len(gen.prompts))
	}
	prompt := gen.prompts[0]
	for _, want := range []string{"Ada", "Calculus", "14-18", "SAT", "$80", "$1000", "Parents"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateGrowthPlan_StripsCodeFences(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n{\"positioning\": \"p\", \"channels\": [], \"offers\": [], \"funnel_steps\": [], \"weekly_checklist\": [], \"kpis\": []}\n```"}
	svc, _ := newContentService(gen)

	plan, err := svc.GenerateGrowthPlan(context.Background(), "tutor-1")
	if err != nil {
		t.Fatalf("fenced output should still parse, got %v", err)
	}
	if plan.Plan.Positioning != "p" {
		t.Errorf("unexpected positioning %q", plan.Plan.Positioning)
	}
}

func TestGenerateGrowthPlan_OnboardingRequired(t *testing.T) {
	svc, _ := newContentService(&fakeGenerator{response: "{}"})
	svc.TutorRepo = &fakeTutorStore{tutor: &models.Tutor{ID: "tutor-1", Name: "Ada"}}

	_, err := svc.GenerateGrowthPlan(context.Background(), "tutor-1")
	if !errors.Is(err, ErrOnboardingIncomplete) {
		t.Fatalf("expected ErrOnboardingIncomplete, got %v", err)
	}
}

func TestGenerateAsset(t *testing.T) {
	for _, assetType := range []string{
		models.AssetLandingPage, models.AssetAdAngles, models.AssetLinkedInOutreach,
		models.AssetEmailSequence, models.AssetDMSequence,
	} {
		t.Run(assetType, func(t *testing.T) {
			gen := &fakeGenerator{response: `{"headline": "x"}`}
			svc, repo := newContentService(gen)

			asset, err := svc.GenerateAsset(context.Background(), "tutor-1", assetType)
			if err != nil {
				t.Fatalf("GenerateAsset(%s) failed: %v", assetType, err)
			}
			if asset.AssetType != assetType {
				t.Errorf("expected type %q, got %q", assetType, asset.AssetType)
			}
			if !json.Valid(asset.Content) {
				t.Error("stored content is not valid JSON")
			}
			if _, ok := repo.assets["tutor-1:"+assetType]; !ok {
				t.Error("asset was not persisted")
			}
		})
	}
}

func TestGenerateAsset_UnknownType(t *testing.T) {
	svc, _ := newContentService(&fakeGenerator{response: "{}"})

	_, err := svc.GenerateAsset(context.Background(), "tutor-1", "tiktok_script")
	if !errors.Is(err, ErrUnknownAssetType) {
		t.Fatalf("expected ErrUnknownAssetType, got %v", err)
	}
}

func TestGenerateAsset_MalformedModelOutput(t *testing.T) {
	gen := &fakeGenerator{response: "sure! here is your landing page copy"}
	svc, repo := newContentService(gen)

	_, err := svc.GenerateAsset(context.Background(), "tutor-1", models.AssetLandingPage)
	if err == nil {
		t.Fatal("expected error for non-JSON model output")
	}
	if len(repo.assets) != 0 {
		t.Error("malformed output must not be persisted")
	}
}
