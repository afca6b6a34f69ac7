package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"kucukaslan/interactions/domain"
)

type fakeContent struct {
	pages     map[string]domain.Page
	profiles  map[string]domain.BusinessProfile
	widgets   map[string]domain.Widget
	locations map[string]domain.Coordinates

	pageErr     error
	widgetErr   error
	locationErr error
	widgetCalls int
}

func newFakeContent() *fakeContent {
	return &fakeContent{
		pages:     map[string]domain.Page{},
		profiles:  map[string]domain.BusinessProfile{},
		widgets:   map[string]domain.Widget{},
		locations: map[string]domain.Coordinates{},
	}
}

func (f *fakeContent) GetPage(_ context.Context, id string) (*domain.Page, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	if p, ok := f.pages[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeContent) GetBusinessProfile(_ context.Context, id string) (*domain.BusinessProfile, error) {
	if b, ok := f.profiles[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (f *fakeContent) GetWidget(_ context.Context, id string) (*domain.Widget, error) {
	f.widgetCalls++
	if f.widgetErr != nil {
		return nil, f.widgetErr
	}
	if w, ok := f.widgets[id]; ok {
		return &w, nil
	}
	return nil, nil
}

func (f *fakeContent) WidgetsByIDs(_ context.Context, ids []string) (map[string]domain.Widget, error) {
	if f.widgetErr != nil {
		return nil, f.widgetErr
	}
	out := make(map[string]domain.Widget)
	for _, id := range ids {
		if w, ok := f.widgets[id]; ok {
			out[id] = w
		}
	}
	return out, nil
}

func (f *fakeContent) LastKnownLocation(_ context.Context, actorID string) (domain.Coordinates, bool, error) {
	if f.locationErr != nil {
		return domain.Coordinates{}, false, f.locationErr
	}
	c, ok := f.locations[actorID]
	return c, ok, nil
}

type fakeEventStore struct {
	mu     sync.Mutex
	events []domain.InteractionEvent

	saveErr     error
	listErrs    map[domain.InteractionType]error
	distinctErr error
}

func newFakeEventStore(events ...domain.InteractionEvent) *fakeEventStore {
	return &fakeEventStore{events: events, listErrs: map[domain.InteractionType]error{}}
}

func (f *fakeEventStore) SaveInteraction(_ context.Context, e domain.InteractionEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventStore) find(t domain.InteractionType, actorID, targetID, dedupKey string) *domain.InteractionEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.Type == t && e.ActorID == actorID && e.TargetID == targetID && e.DedupKey() == dedupKey {
			found := e
			return &found
		}
	}
	return nil
}

func (f *fakeEventStore) FindClick(_ context.Context, actorID, targetID string) (*domain.InteractionEvent, error) {
	return f.find(domain.InteractionClick, actorID, targetID, ""), nil
}

func (f *fakeEventStore) FindView(_ context.Context, actorID, targetID, day string) (*domain.InteractionEvent, error) {
	return f.find(domain.InteractionView, actorID, targetID, day), nil
}

func (f *fakeEventStore) ListInteractions(_ context.Context, q domain.EventQuery) ([]domain.InteractionEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.listErrs[q.Type]; err != nil {
		return nil, err
	}

	var out []domain.InteractionEvent
	for _, e := range f.events {
		switch {
		case q.OwnerID != "" && e.OwnerID != q.OwnerID,
			q.Type != "" && e.Type != q.Type,
			q.TargetKind != "" && e.TargetKind != q.TargetKind,
			q.TargetID != "" && e.TargetID != q.TargetID,
			!q.From.IsZero() && e.Timestamp.Before(q.From),
			!q.To.IsZero() && e.Timestamp.After(q.To):
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventStore) DistinctActors(_ context.Context, ownerID string, t domain.InteractionType, before time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.distinctErr != nil {
		return nil, f.distinctErr
	}
	var actors []string
	for _, e := range f.events {
		if e.OwnerID == ownerID && e.Type == t && e.Timestamp.Before(before) && !slices.Contains(actors, e.ActorID) {
			actors = append(actors, e.ActorID)
		}
	}
	return actors, nil
}

func (f *fakeEventStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type fakeDedup struct {
	mu       sync.Mutex
	claims   map[string]bool
	err      error
	released []string
}

func newFakeDedup() *fakeDedup {
	return &fakeDedup{claims: map[string]bool{}}
}

func (f *fakeDedup) claim(key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if f.claims[key] {
		return false, nil
	}
	f.claims[key] = true
	return true, nil
}

func (f *fakeDedup) release(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.claims, key)
	f.released = append(f.released, key)
	return nil
}

func (f *fakeDedup) ClaimClick(_ context.Context, actorID, targetID string) (bool, error) {
	return f.claim("click:" + actorID + ":" + targetID)
}

func (f *fakeDedup) ClaimView(_ context.Context, actorID, targetID string, at time.Time) (bool, error) {
	return f.claim("view:" + actorID + ":" + targetID + ":" + at.UTC().Format(time.DateOnly))
}

func (f *fakeDedup) ReleaseClick(_ context.Context, actorID, targetID string) error {
	return f.release("click:" + actorID + ":" + targetID)
}

func (f *fakeDedup) ReleaseView(_ context.Context, actorID, targetID string, at time.Time) error {
	return f.release("view:" + actorID + ":" + targetID + ":" + at.UTC().Format(time.DateOnly))
}

type fakeCounters struct {
	mu     sync.Mutex
	deltas []domain.CounterDelta
	err    error
}

func (f *fakeCounters) Enqueue(deltas ...domain.CounterDelta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deltas = append(f.deltas, deltas...)
	return f.err
}

type fakeCounterStore struct {
	mu      sync.Mutex
	batches [][]domain.CounterDelta
	err     error
}

func (f *fakeCounterStore) ApplyCounterDeltas(_ context.Context, deltas []domain.CounterDelta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, slices.Clone(deltas))
	return f.err
}

func (f *fakeCounterStore) applied() []domain.CounterDelta {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []domain.CounterDelta
	for _, b := range f.batches {
		all = append(all, b...)
	}
	return all
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
