package services

import (
	"context"
	"time"

	"kucukaslan/interactions/domain"
)

// EventStore persists and queries interaction events.
type EventStore interface {
	SaveInteraction(ctx context.Context, event domain.InteractionEvent) error
	FindClick(ctx context.Context, actorID, targetID string) (*domain.InteractionEvent, error)
	FindView(ctx context.Context, actorID, targetID, day string) (*domain.InteractionEvent, error)
	ListInteractions(ctx context.Context, q domain.EventQuery) ([]domain.InteractionEvent, error)
	DistinctActors(ctx context.Context, ownerID string, t domain.InteractionType, before time.Time) ([]string, error)
}

// DedupClaims holds exclusive short-lived claims on an interaction's identity.
type DedupClaims interface {
	ClaimClick(ctx context.Context, actorID, targetID string) (bool, error)
	ClaimView(ctx context.Context, actorID, targetID string, at time.Time) (bool, error)
	ReleaseClick(ctx context.Context, actorID, targetID string) error
	ReleaseView(ctx context.Context, actorID, targetID string, at time.Time) error
}

// ContentReader looks up owner-published content. Lookups return nil, nil
// when the row does not exist.
type ContentReader interface {
	GetPage(ctx context.Context, id string) (*domain.Page, error)
	GetBusinessProfile(ctx context.Context, id string) (*domain.BusinessProfile, error)
	GetWidget(ctx context.Context, id string) (*domain.Widget, error)
	WidgetsByIDs(ctx context.Context, ids []string) (map[string]domain.Widget, error)
}

type LocationLookup interface {
	LastKnownLocation(ctx context.Context, actorID string) (domain.Coordinates, bool, error)
}

type CounterStore interface {
	ApplyCounterDeltas(ctx context.Context, deltas []domain.CounterDelta) error
}

// CounterQueue accepts counter deltas without blocking the caller.
type CounterQueue interface {
	Enqueue(deltas ...domain.CounterDelta) error
}
