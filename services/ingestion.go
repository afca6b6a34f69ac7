package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/logger"
	"kucukaslan/interactions/metrics"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

var _ domain.IngestionService = &ingestionService{}

type ingestionService struct {
	events    EventStore
	dedup     DedupClaims
	locations LocationLookup
	resolver  *TargetResolver
	counters  CounterQueue
	now       func() time.Time
	log       zerolog.Logger
}

// IngestionOption customizes an ingestion service.
type IngestionOption func(*ingestionService)

// WithIngestionClock replaces the wall clock used to timestamp events.
func WithIngestionClock(now func() time.Time) IngestionOption {
	return func(s *ingestionService) { s.now = now }
}

// NewIngestionService returns a domain.IngestionService that de-duplicates
// interactions against the event store, with Redis claims closing the window
// between the store check and the insert.
func NewIngestionService(
	events EventStore,
	dedup DedupClaims,
	locations LocationLookup,
	resolver *TargetResolver,
	counters CounterQueue,
	opts ...IngestionOption,
) (domain.IngestionService, error) {
	if events == nil {
		return nil, fmt.Errorf("event store cannot be nil")
	}
	if resolver == nil {
		return nil, fmt.Errorf("target resolver cannot be nil")
	}
	if counters == nil {
		return nil, fmt.Errorf("counter queue cannot be nil")
	}

	srv := &ingestionService{
		events:    events,
		dedup:     dedup,
		locations: locations,
		resolver:  resolver,
		counters:  counters,
		now:       time.Now,
		log:       logger.Component("ingestion"),
	}
	for _, opt := range opts {
		opt(srv)
	}
	return srv, nil
}

func validateInput(input domain.InteractionInput) (domain.InteractionInput, error) {
	input.ActorID = strings.TrimSpace(input.ActorID)
	input.TargetID = strings.TrimSpace(input.TargetID)
	if input.ActorID == "" {
		return input, domain.ErrUnauthorized("an authenticated actor is required")
	}
	if input.TargetID == "" {
		return input, domain.NewValidationError("target_id", "is required")
	}
	return input, nil
}

func (s *ingestionService) RecordClick(ctx context.Context, input domain.InteractionInput) (*domain.ClickResult, error) {
	input, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	target, err := s.resolver.Resolve(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}

	existing, err := s.events.FindClick(ctx, input.ActorID, target.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.RecordInteraction(string(domain.InteractionClick), metrics.OutcomeDuplicate)
		return &domain.ClickResult{Created: false, Event: existing}, nil
	}

	if !s.claim(ctx, "click", func() (bool, error) {
		return s.dedup.ClaimClick(ctx, input.ActorID, target.ID)
	}) {
		// Another request holds the claim; its event may already be stored.
		metrics.RecordInteraction(string(domain.InteractionClick), metrics.OutcomeDuplicate)
		existing, err = s.events.FindClick(ctx, input.ActorID, target.ID)
		if err != nil {
			return nil, err
		}
		return &domain.ClickResult{Created: false, Event: existing}, nil
	}

	event := s.newEvent(ctx, domain.InteractionClick, target, input)
	if err := s.events.SaveInteraction(ctx, event); err != nil {
		s.release(ctx, "click", func() error {
			return s.dedup.ReleaseClick(ctx, input.ActorID, target.ID)
		})
		metrics.RecordInteraction(string(domain.InteractionClick), metrics.OutcomeFailed)
		return nil, fmt.Errorf("record click: %w", err)
	}

	s.enqueue(ctx, domain.CounterDelta{Kind: target.Kind, ID: target.ID, Field: domain.CounterClicks, Delta: 1})
	metrics.RecordInteraction(string(domain.InteractionClick), metrics.OutcomeCreated)
	return &domain.ClickResult{Created: true, Event: &event}, nil
}

func (s *ingestionService) RecordView(ctx context.Context, input domain.InteractionInput) (*domain.ViewResult, error) {
	input, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	target, err := s.resolver.Resolve(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	day := now.Format(time.DateOnly)

	existing, err := s.events.FindView(ctx, input.ActorID, target.ID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.RecordInteraction(string(domain.InteractionView), metrics.OutcomeDuplicate)
		return &domain.ViewResult{AlreadyToday: true, Event: existing}, nil
	}

	if !s.claim(ctx, "view", func() (bool, error) {
		return s.dedup.ClaimView(ctx, input.ActorID, target.ID, now)
	}) {
		metrics.RecordInteraction(string(domain.InteractionView), metrics.OutcomeDuplicate)
		return &domain.ViewResult{AlreadyToday: true}, nil
	}

	event := s.newEventAt(ctx, now, domain.InteractionView, target, input)
	if err := s.events.SaveInteraction(ctx, event); err != nil {
		s.release(ctx, "view", func() error {
			return s.dedup.ReleaseView(ctx, input.ActorID, target.ID, now)
		})
		metrics.RecordInteraction(string(domain.InteractionView), metrics.OutcomeFailed)
		return nil, fmt.Errorf("record view: %w", err)
	}

	deltas := []domain.CounterDelta{{Kind: target.Kind, ID: target.ID, Field: domain.CounterViews, Delta: 1}}
	if target.Kind == domain.TargetPage && target.BusinessID != "" {
		deltas = append(deltas, domain.CounterDelta{
			Kind: domain.TargetBusinessProfile, ID: target.BusinessID, Field: domain.CounterViews, Delta: 1,
		})
	}
	s.enqueue(ctx, deltas...)
	metrics.RecordInteraction(string(domain.InteractionView), metrics.OutcomeCreated)
	return &domain.ViewResult{Created: true, Event: &event}, nil
}

// claim reports whether the caller may insert. A Redis failure is logged and
// the store check already performed stands on its own.
func (s *ingestionService) claim(ctx context.Context, kind string, take func() (bool, error)) bool {
	if s.dedup == nil {
		return true
	}
	won, err := take()
	if err != nil {
		metrics.RecordDedupFallback()
		logger.Ctx(ctx).Warn().Err(err).Str("type", kind).Msg("dedup claim failed, continuing without it")
		return true
	}
	return won
}

func (s *ingestionService) release(ctx context.Context, kind string, release func() error) {
	if s.dedup == nil {
		return
	}
	if err := release(); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("type", kind).Msg("failed to release dedup claim")
	}
}

func (s *ingestionService) enqueue(ctx context.Context, deltas ...domain.CounterDelta) {
	if err := s.counters.Enqueue(deltas...); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Int("deltas", len(deltas)).Msg("counter update skipped")
	}
}

func (s *ingestionService) newEvent(ctx context.Context, t domain.InteractionType, target *domain.ResolvedTarget, input domain.InteractionInput) domain.InteractionEvent {
	return s.newEventAt(ctx, s.now().UTC(), t, target, input)
}

func (s *ingestionService) newEventAt(ctx context.Context, at time.Time, t domain.InteractionType, target *domain.ResolvedTarget, input domain.InteractionInput) domain.InteractionEvent {
	coords := s.locate(ctx, input.ActorID)
	return domain.InteractionEvent{
		ID:              ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()).String(),
		Type:            t,
		TargetKind:      target.Kind,
		TargetID:        target.ID,
		OwnerID:         target.OwnerID,
		ActorID:         input.ActorID,
		BusinessID:      target.BusinessID,
		Coordinates:     coords,
		LocationLabel:   coords.Label(),
		SessionID:       input.SessionID,
		UserAgent:       input.UserAgent,
		Referrer:        input.Referrer,
		TargetURL:       target.URL,
		TargetTitle:     target.Title,
		TargetThumbnail: target.Thumbnail,
		Timestamp:       at,
	}
}

// locate returns the actor's last known coordinates, or (0,0) when unknown.
func (s *ingestionService) locate(ctx context.Context, actorID string) domain.Coordinates {
	if s.locations == nil {
		return domain.Coordinates{}
	}
	coords, ok, err := s.locations.LastKnownLocation(ctx, actorID)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("actor_id", actorID).Msg("actor location unavailable")
		return domain.Coordinates{}
	}
	if !ok {
		return domain.Coordinates{}
	}
	return coords
}
