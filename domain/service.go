package domain

import (
	"context"
	"time"
)

// IngestionService records de-duplicated interaction events.
type IngestionService interface {
	RecordClick(ctx context.Context, input InteractionInput) (*ClickResult, error)
	RecordView(ctx context.Context, input InteractionInput) (*ViewResult, error)
}

// ReportService computes owner-scoped analytics over a reporting window.
type ReportService interface {
	LocationReport(ctx context.Context, ownerID string, window Window, limit int, targetID string) (*LocationReport, error)
	LinkReport(ctx context.Context, ownerID string, window Window) (*LinkReport, error)
	PeakHourReport(ctx context.Context, ownerID string, window Window, groupBy string) (*PeakReport, error)
	TimeSeriesReport(ctx context.Context, ownerID string, window Window, granularity string) (*TimeSeriesReport, error)
	TopLinksReport(ctx context.Context, ownerID string, window Window, limit int) (*TopLinksReport, error)
	DeviceReport(ctx context.Context, ownerID string, window Window) (*DeviceReport, error)
	ReferrerReport(ctx context.Context, ownerID string, window Window, limit int) (*ReferrerReport, error)
	CollectiveReport(ctx context.Context, ownerID string, window Window) (*CollectiveReport, error)
	DashboardReport(ctx context.Context, ownerID string, window Window, opts DashboardOptions) (*DashboardReport, error)
	RealtimeReport(ctx context.Context, ownerID string, minutes int) (*RealtimeReport, error)
}

// InteractionInput carries the actor, the target and request provenance.
type InteractionInput struct {
	ActorID   string
	TargetID  string
	SessionID string
	UserAgent string
	Referrer  string
}

// ClickResult reports whether a click was newly stored. Event is the stored
// event, or the earlier one when the click was a duplicate.
type ClickResult struct {
	Created bool
	Event   *InteractionEvent
}

// ViewResult reports whether a view was stored or already recorded today.
type ViewResult struct {
	Created      bool
	AlreadyToday bool
	Event        *InteractionEvent
}

// EventQuery filters the event store. Zero values mean "no filter".
type EventQuery struct {
	OwnerID    string
	Type       InteractionType
	TargetKind TargetKind
	TargetID   string
	From       time.Time
	To         time.Time
	// Limit caps the result to the newest matching events.
	Limit      int
}

// Dashboard section names.
const (
	SectionTimeSeries   = "timeseries"
	SectionLocations    = "locations"
	SectionLinks        = "links"
	SectionPeakHours    = "peak_hours"
	SectionDevices      = "devices"
	SectionReferrers    = "referrers"
	SectionSegmentation = "segmentation"
)

// OptionalSections lists the dashboard sections that may fail independently.
var OptionalSections = []string{
	SectionLocations,
	SectionLinks,
	SectionPeakHours,
	SectionDevices,
	SectionReferrers,
	SectionSegmentation,
}

type DashboardOptions struct {
	Include       map[string]bool
	Granularity   string
	LocationLimit int
}

// Includes reports whether a section was requested. An empty set includes all.
func (o DashboardOptions) Includes(section string) bool {
	if len(o.Include) == 0 {
		return true
	}
	return o.Include[section]
}
