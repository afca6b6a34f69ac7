package domain

import (
	"fmt"
	"time"
)

// InteractionType distinguishes clicks from once-per-day view markers.
type InteractionType string

const (
	InteractionClick InteractionType = "click"
	InteractionView  InteractionType = "view"
)

// TargetKind is the content collection a target id was resolved from.
type TargetKind string

const (
	TargetPage            TargetKind = "page"
	TargetBusinessProfile TargetKind = "business_profile"
	TargetCustomLink      TargetKind = "custom_link"
)

// UnknownLocationLabel is stored for actors without a last-known location.
const UnknownLocationLabel = "Unknown location"

// Coordinates is a raw (longitude, latitude) pair. No geocoding is applied.
type Coordinates struct {
	Longitude float64 `json:"longitude" example:"28.9784"`
	Latitude  float64 `json:"latitude" example:"41.0082"`
}

// IsZero reports whether the pair is the (0,0) default.
func (c Coordinates) IsZero() bool {
	return c.Longitude == 0 && c.Latitude == 0
}

// Normalized folds negative zero into zero on both axes.
func (c Coordinates) Normalized() Coordinates {
	return Coordinates{Longitude: unsignedZero(c.Longitude), Latitude: unsignedZero(c.Latitude)}
}

func unsignedZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// Key identifies the exact coordinate pair; near-identical pairs get different keys.
func (c Coordinates) Key() string {
	c = c.Normalized()
	return fmt.Sprintf("%g,%g", c.Longitude, c.Latitude)
}

// Label is the placeholder display label for a coordinate pair.
func (c Coordinates) Label() string {
	if c.IsZero() {
		return UnknownLocationLabel
	}
	c = c.Normalized()
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// InteractionEvent is one recorded click or view. Display fields are captured at
// write time so reports never need to resolve the target again.
type InteractionEvent struct {
	ID              string          `json:"id" example:"01JA2Z6T8D3F4G5H6J7K8M9N0P"`
	Type            InteractionType `json:"type" example:"click"`
	TargetKind      TargetKind      `json:"target_kind" example:"custom_link"`
	TargetID        string          `json:"target_id" example:"wdg_123"`
	OwnerID         string          `json:"owner_id" example:"user_42"`
	ActorID         string          `json:"actor_id" example:"user_7"`
	BusinessID      string          `json:"business_id,omitempty"`
	Coordinates     Coordinates     `json:"coordinates"`
	LocationLabel   string          `json:"location_label" example:"41.0082, 28.9784"`
	SessionID       string          `json:"session_id,omitempty"`
	UserAgent       string          `json:"user_agent,omitempty"`
	Referrer        string          `json:"referrer,omitempty"`
	TargetURL       string          `json:"target_url"`
	TargetTitle     string          `json:"target_title"`
	TargetThumbnail string          `json:"target_thumbnail,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

// DedupKey is the per-type uniqueness discriminator: clicks are unique forever,
// views are unique per UTC calendar day.
func (e InteractionEvent) DedupKey() string {
	if e.Type == InteractionView {
		return e.Timestamp.UTC().Format(time.DateOnly)
	}
	return ""
}

// ResolvedTarget is the normalized owner/title/URL metadata of a target id.
// It lives for a single request and is never cached.
type ResolvedTarget struct {
	ID         string     `json:"id"`
	Kind       TargetKind `json:"kind"`
	OwnerID    string     `json:"owner_id"`
	Title      string     `json:"title"`
	Thumbnail  string     `json:"thumbnail,omitempty"`
	URL        string     `json:"url"`
	BusinessID string     `json:"business_id,omitempty"`
}

// Window is an inclusive [Start, End] reporting interval in UTC.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window, both ends inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
