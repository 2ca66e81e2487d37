package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	availabilityRepo "tutorhq/database/repository/availability"
	bookingRepo "tutorhq/database/repository/booking"
	siteRepo "tutorhq/database/repository/site"
	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/models"
)

type fakeSiteRepo struct {
	sites map[string]*models.TutorSite
}

func (f *fakeSiteRepo) Upsert(site *models.TutorSite) error { return nil }
func (f *fakeSiteRepo) GetByTutorID(tutorID string) (*models.TutorSite, error) {
	return nil, siteRepo.ErrNotFound
}
func (f *fakeSiteRepo) GetPublishedBySlug(slug string) (*models.TutorSite, error) {
	if site, ok := f.sites[slug]; ok && site.Published {
		return site, nil
	}
	return nil, siteRepo.ErrNotFound
}
func (f *fakeSiteRepo) SlugExists(slug string) (bool, error)             { _, ok := f.sites[slug]; return ok, nil }
func (f *fakeSiteRepo) SetPublished(tutorID string, published bool) error { return nil }
func (f *fakeSiteRepo) Delete(tutorID string) error                       { return nil }

type fakeTutorRepo struct {
	tutors map[string]*models.Tutor
}

func (f *fakeTutorRepo) Create(t *models.Tutor) error { return nil }
func (f *fakeTutorRepo) GetByID(id string) (*models.Tutor, error) {
	if t, ok := f.tutors[id]; ok {
		return t, nil
	}
	return nil, tutorRepo.ErrNotFound
}
func (f *fakeTutorRepo) GetByEmail(email string) (*models.Tutor, error) {
	return nil, tutorRepo.ErrNotFound
}
func (f *fakeTutorRepo) Update(id string, fields map[string]interface{}) error { return nil }
func (f *fakeTutorRepo) Delete(id string) error                                { return nil }
func (f *fakeTutorRepo) SetTokenHash(id, tokenHash string) error               { return nil }
func (f *fakeTutorRepo) UpsertOnboarding(ob *models.Onboarding) error          { return nil }
func (f *fakeTutorRepo) GetOnboarding(tutorID string) (*models.Onboarding, error) {
	return nil, tutorRepo.ErrNotFound
}

type fakeAvailabilityRepo struct {
	rules []models.AvailabilityRule
}

func (f *fakeAvailabilityRepo) Create(rule *models.AvailabilityRule) error {
	f.rules = append(f.rules, *rule)
	return nil
}
func (f *fakeAvailabilityRepo) ListByTutor(tutorID string) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, r := range f.rules {
		if r.TutorID == tutorID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeAvailabilityRepo) Delete(id, tutorID string) error {
	return availabilityRepo.ErrNotFound
}

// fakeBookingRepo enforces the overlap exclusion under a mutex, standing in
// for the storage-layer transaction.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	inserts  int
	failWith error
}

func (f *fakeBookingRepo) InsertExclusive(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.bookings {
		if existing.TutorID == b.TutorID && existing.Status == models.BookingConfirmed &&
			b.StartTS.Before(existing.EndTS) && b.EndTS.After(existing.StartTS) {
			return bookingRepo.ErrIntervalTaken
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) ListConfirmedInWindow(tutorID string, from, to time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.TutorID == tutorID && b.Status == models.BookingConfirmed &&
			!b.StartTS.Before(from) && b.StartTS.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByTutor(tutorID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Booking(nil), f.bookings...), nil
}

func (f *fakeBookingRepo) Cancel(id, tutorID string) error {
	return bookingRepo.ErrNotFound
}

type fakeLeadRepo struct {
	mu       sync.Mutex
	leads    []models.Lead
	failWith error
}

func (f *fakeLeadRepo) Create(lead *models.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.leads = append(f.leads, *lead)
	return nil
}
func (f *fakeLeadRepo) GetByID(id, tutorID string) (*models.Lead, error) { return nil, nil }
func (f *fakeLeadRepo) ListByTutor(tutorID string) ([]models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Lead(nil), f.leads...), nil
}
func (f *fakeLeadRepo) Update(id, tutorID string, fields map[string]interface{}) error { return nil }
func (f *fakeLeadRepo) Delete(id, tutorID string) error                                { return nil }
func (f *fakeLeadRepo) MarkFollowUpDue(id string) error                                { return nil }

func newTestService(bookings *fakeBookingRepo, leads *fakeLeadRepo) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		TutorRepo: &fakeTutorRepo{tutors: map[string]*models.Tutor{
			"tutor-1": {ID: "tutor-1", Name: "Ada", Timezone: "UTC"},
		}},
		SiteRepo: &fakeSiteRepo{sites: map[string]*models.TutorSite{
			"ada-math": {ID: "site-1", TutorID: "tutor-1", Slug: "ada-math", Published: true},
		}},
		AvailabilityRepo: &fakeAvailabilityRepo{},
		BookingRepo:      bookings,
		LeadRepo:         leads,
		Now:              func() time.Time { return monday },
	}
}

func validRequest() BookingRequest {
	return BookingRequest{
		TutorSlug:     "ada-math",
		StartTS:       mondayAt(9, 0),
		EndTS:         mondayAt(10, 0),
		ProspectName:  "Grace",
		ProspectEmail: "grace@example.com",
		Reason:        "calculus help",
	}
}

func TestCreateBooking_Succeeds(t *testing.T) {
	bookings := &fakeBookingRepo{}
	leads := &fakeLeadRepo{}
	svc := newTestService(bookings, leads)

	booking, err := svc.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if booking.Status != models.BookingConfirmed {
		t.Errorf("expected status confirmed, got %q", booking.Status)
	}
	if booking.TutorID != "tutor-1" {
		t.Errorf("expected booking owned by tutor-1, got %q", booking.TutorID)
	}
	if len(leads.leads) != 1 {
		t.Fatalf("expected one CRM lead, got %d", len(leads.leads))
	}
	lead := leads.leads[0]
	if lead.Stage != models.LeadStageBooked || lead.Source != "booking" {
		t.Errorf("expected lead stage booked / source booking, got %q / %q", lead.Stage, lead.Source)
	}
}

func TestCreateBooking_UnknownSlugNoWrites(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := newTestService(bookings, &fakeLeadRepo{})

	req := validRequest()
	req.TutorSlug = "nobody"

	_, err := svc.CreateBooking(context.Background(), req)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if bookings.inserts != 0 {
		t.Errorf("expected no insert attempts, got %d", bookings.inserts)
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"empty name", func(r *BookingRequest) { r.ProspectName = "  " }},
		{"bad email", func(r *BookingRequest) { r.ProspectEmail = "not-an-email" }},
		{"reason too long", func(r *BookingRequest) {
			long := make([]byte, MaxReasonLength+1)
			for i := range long {
				long[i] = 'x'
			}
			r.Reason = string(long)
		}},
		{"start after end", func(r *BookingRequest) { r.StartTS, r.EndTS = r.EndTS, r.StartTS }},
		{"zero start", func(r *BookingRequest) { r.StartTS = time.Time{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{}
			svc := newTestService(bookings, &fakeLeadRepo{})

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.CreateBooking(context.Background(), req)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if bookings.inserts != 0 {
				t.Errorf("expected no insert attempts, got %d", bookings.inserts)
			}
		})
	}
}

func TestCreateBooking_ConcurrentSameSlot(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := newTestService(bookings, &fakeLeadRepo{})

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.CreateBooking(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var successes, unavailable int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		default:
			var su *SlotUnavailableError
			if errors.As(err, &su) {
				unavailable++
			}
		}
	}
	if successes != 1 || unavailable != 1 {
		t.Fatalf("expected exactly one success and one SlotUnavailable, got %d successes, %d unavailable (%v)",
			successes, unavailable, results)
	}
	if len(bookings.bookings) != 1 {
		t.Errorf("expected exactly one persisted booking, got %d", len(bookings.bookings))
	}
}

func TestCreateBooking_PersistenceErrorNotRetried(t *testing.T) {
	bookings := &fakeBookingRepo{failWith: errors.New("connection reset")}
	svc := newTestService(bookings, &fakeLeadRepo{})

	_, err := svc.CreateBooking(context.Background(), validRequest())
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if bookings.inserts != 1 {
		t.Errorf("insert must not be retried, got %d attempts", bookings.inserts)
	}
}

func TestCreateBooking_LeadFailureDoesNotFailBooking(t *testing.T) {
	bookings := &fakeBookingRepo{}
	leads := &fakeLeadRepo{failWith: errors.New("leads collection offline")}
	svc := newTestService(bookings, leads)

	booking, err := svc.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("lead failure must not surface, got %v", err)
	}
	if booking == nil || booking.Status != models.BookingConfirmed {
		t.Fatalf("expected confirmed booking despite lead failure, got %+v", booking)
	}
}

func TestEndToEnd_SingleMondaySlot(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := newTestService(bookings, &fakeLeadRepo{})
	svc.AvailabilityRepo = &fakeAvailabilityRepo{rules: []models.AvailabilityRule{{
		ID: "rule-1", TutorID: "tutor-1",
		DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "10:00",
		SessionLength: 60, BufferTime: 0,
	}}}

	// now = that Monday at 00:00
	slots, err := svc.ListSlotsForDate("ada-math", "2026-09-07")
	if err != nil {
		t.Fatalf("ListSlotsForDate failed: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected exactly one slot, got %d: %v", len(slots), slots)
	}
	if !slots[0].Start.Equal(mondayAt(9, 0)) {
		t.Fatalf("expected slot at 09:00, got %v", slots[0].Start)
	}

	req := validRequest()
	req.StartTS = slots[0].Start
	req.EndTS = slots[0].End
	if _, err := svc.CreateBooking(context.Background(), req); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Same slot again: storage rejects, listing goes empty.
	_, err = svc.CreateBooking(context.Background(), req)
	var su *SlotUnavailableError
	if !errors.As(err, &su) {
		t.Fatalf("expected SlotUnavailable on second attempt, got %v", err)
	}

	slots, err = svc.ListSlotsForDate("ada-math", "2026-09-07")
	if err != nil {
		t.Fatalf("ListSlotsForDate after booking failed: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots after booking, got %v", slots)
	}
}

func TestCancelBooking_UnknownBooking(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeLeadRepo{})

	err := svc.CancelBooking("tutor-1", "missing")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
