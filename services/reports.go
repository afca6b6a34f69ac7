package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kucukaslan/interactions/analytics"
	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/logger"
	"kucukaslan/interactions/metrics"
	"kucukaslan/interactions/timerange"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var _ domain.ReportService = &reportService{}

// ReportSettings bounds report sizes and dashboard latency.
type ReportSettings struct {
	DefaultLocationLimit int
	MaxLocationLimit     int
	DefaultTopLinksLimit int
	RealtimeMinutes      int
	DashboardTimeout     time.Duration
}

type reportService struct {
	events   EventStore
	content  ContentReader
	resolver *TargetResolver
	settings ReportSettings
	now      func() time.Time
	log      zerolog.Logger
}

type ReportOption func(*reportService)

// WithReportClock replaces the wall clock used for rolling windows.
func WithReportClock(now func() time.Time) ReportOption {
	return func(s *reportService) { s.now = now }
}

// NewReportService returns a domain.ReportService that reads raw events for an
// owner and window and aggregates them in memory.
func NewReportService(events EventStore, content ContentReader, resolver *TargetResolver, settings ReportSettings, opts ...ReportOption) (domain.ReportService, error) {
	if events == nil {
		return nil, fmt.Errorf("event store cannot be nil")
	}
	if content == nil {
		return nil, fmt.Errorf("content reader cannot be nil")
	}
	if settings.DefaultLocationLimit <= 0 {
		settings.DefaultLocationLimit = analytics.DefaultLocationLimit
	}
	if settings.DefaultTopLinksLimit <= 0 {
		settings.DefaultTopLinksLimit = analytics.DefaultTopLinksLimit
	}
	if settings.RealtimeMinutes <= 0 {
		settings.RealtimeMinutes = 30
	}

	srv := &reportService{
		events:   events,
		content:  content,
		resolver: resolver,
		settings: settings,
		now:      time.Now,
		log:      logger.Component("reports"),
	}
	for _, opt := range opts {
		opt(srv)
	}
	return srv, nil
}

func requireOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return domain.ErrUnauthorized("an authenticated owner is required")
	}
	return nil
}

func (s *reportService) list(ctx context.Context, ownerID string, t domain.InteractionType, window domain.Window, targetID string) ([]domain.InteractionEvent, error) {
	return s.events.ListInteractions(ctx, domain.EventQuery{
		OwnerID:  ownerID,
		Type:     t,
		TargetID: targetID,
		From:     window.Start,
		To:       window.End,
	})
}

func (s *reportService) clicks(ctx context.Context, ownerID string, window domain.Window) ([]domain.InteractionEvent, error) {
	return s.list(ctx, ownerID, domain.InteractionClick, window, "")
}

func (s *reportService) LocationReport(ctx context.Context, ownerID string, window domain.Window, limit int, targetID string) (*domain.LocationReport, error) {
	defer metrics.ObserveReport("locations", time.Now())
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.settings.DefaultLocationLimit
	}
	if s.settings.MaxLocationLimit > 0 && limit > s.settings.MaxLocationLimit {
		limit = s.settings.MaxLocationLimit
	}

	if targetID != "" {
		if err := s.checkOwnership(ctx, ownerID, targetID); err != nil {
			return nil, err
		}
	}

	events, err := s.list(ctx, ownerID, domain.InteractionClick, window, targetID)
	if err != nil {
		return nil, err
	}
	report := analytics.Locations(events, limit)
	report.Window = window
	return &report, nil
}

// checkOwnership hides targets of other owners behind the same not-found
// error as targets that do not exist.
func (s *reportService) checkOwnership(ctx context.Context, ownerID, targetID string) error {
	if s.resolver == nil {
		return nil
	}
	target, err := s.resolver.Resolve(ctx, targetID)
	if err != nil {
		return err
	}
	if target.OwnerID != ownerID {
		return domain.ErrNotFound(fmt.Sprintf("target %q not found", targetID))
	}
	return nil
}

func (s *reportService) LinkReport(ctx context.Context, ownerID string, window domain.Window) (*domain.LinkReport, error) {
	defer metrics.ObserveReport("links", time.Now())
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	events, err := s.clicks(ctx, ownerID, window)
	if err != nil {
		return nil, err
	}
	report := analytics.Links(events)
	report.Window = window
	return &report, nil
}

// PeakHourReport buckets clicks by hour and weekday. Engagement is measured
// against the owner's view markers; without any views in the window every
// active slot counts as fully engaged.
func (s *reportService) PeakHourReport(ctx context.Context, ownerID string, window domain.Window, groupBy string) (*domain.PeakReport, error) {
	defer metrics.ObserveReport("peak_hours", time.Now())
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	var clicks, views []domain.InteractionEvent
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clicks, err = s.clicks(gctx, ownerID, window)
		return err
	})
	g.Go(func() (err error) {
		views, err = s.list(gctx, ownerID, domain.InteractionView, window, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(views) == 0 {
		views = nil
	}

	report := analytics.PeakHours(clicks, views, groupBy)
	report.Window = window
	return &report, nil
}

func (s *reportService) TimeSeriesReport(ctx context.Context, ownerID string, window domain.Window, granularity string) (*domain.TimeSeriesReport, error) {
	defer metrics.ObserveReport("timeseries", time.Now())
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	events, err := s.clicks(ctx, ownerID, window)
	if err != nil {
		return nil, err
	}
	report := analytics.TimeSeries(events, granularity)
	report.Window = window
	return &report, nil
}

func (s *reportService) TopLinksReport(ctx context.Context, ownerID string, window domain.Window, limit int) (*domain.TopLinksReport, error) {
	defer metrics.ObserveReport("top_links", time.Now())
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.settings.DefaultTopLinksLimit
	}

	events, err := s.events.ListInteractions(ctx, domain.EventQuery{
		OwnerID:    ownerID,
		Type:       domain.InteractionClick,
		TargetKind: domain.TargetCustomLink,
		From:       window.Start,
		To:         window.End,
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, e := range events {
		if _, ok := seen[e.TargetID]; !ok {
			seen[e.TargetID] = struct{}{}
			ids = append(ids, e.TargetID)
		}
	}
	widgets, err := s.content.WidgetsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for id, w := range widgets {
		if w.Kind != domain.CustomLinkWidgetKind || w.OwnerID != ownerID {
			delete(widgets, id)
		}
	}

	entries, total := analytics.TopLinks(events, widgets, limit)
	return &domain.TopLinksReport{Window: window, Links: entries, TotalClicks: total}, nil
}

func (s *reportService) DeviceReport(ctx context.Context, ownerID string, window domain.Window) (*domain.DeviceReport, error) {
	defer metrics.ObserveReport("devices", time.Now())
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	events, err := s.clicks(ctx, ownerID, window)
	if err != nil {
		return nil, err
	}
	report := analytics.Devices(events)
	report.Window = window
	return &report, nil
}

func (s *reportService) ReferrerReport(ctx context.Context, ownerID string, window domain.Window, limit int) (*domain.ReferrerReport, error) {
	defer metrics.ObserveReport("referrers", time.Now())
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = analytics.DefaultReferrerLimit
	}

	events, err := s.clicks(ctx, ownerID, window)
	if err != nil {
		return nil, err
	}
	report := analytics.Referrers(events, limit)
	report.Window = window
	return &report, nil
}

// segmentation compares the window's click actors with every actor that
// clicked the owner's content before the window started.
func (s *reportService) segmentation(ctx context.Context, ownerID string, window domain.Window, period []domain.InteractionEvent) (domain.Segmentation, error) {
	history, err := s.events.DistinctActors(ctx, ownerID, domain.InteractionClick, window.Start)
	if err != nil {
		return domain.Segmentation{}, err
	}
	return analytics.Segment(history, period), nil
}

func (s *reportService) CollectiveReport(ctx context.Context, ownerID string, window domain.Window) (*domain.CollectiveReport, error) {
	defer metrics.ObserveReport("collective", time.Now())
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	var (
		clicks, views []domain.InteractionEvent
		history       []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clicks, err = s.clicks(gctx, ownerID, window)
		return err
	})
	g.Go(func() (err error) {
		views, err = s.list(gctx, ownerID, domain.InteractionView, window, "")
		return err
	})
	g.Go(func() (err error) {
		history, err = s.events.DistinctActors(gctx, ownerID, domain.InteractionClick, window.Start)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.CollectiveReport{
		Window:       window,
		Summary:      analytics.Summarize(clicks, views),
		Segmentation: analytics.Segment(history, clicks),
	}, nil
}

func (s *reportService) RealtimeReport(ctx context.Context, ownerID string, minutes int) (*domain.RealtimeReport, error) {
	defer metrics.ObserveReport("realtime", time.Now())
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if minutes <= 0 {
		minutes = s.settings.RealtimeMinutes
	}

	window := timerange.Rolling(s.now(), minutes)
	events, err := s.list(ctx, ownerID, "", window, "")
	if err != nil {
		return nil, err
	}

	report := analytics.Realtime(events, analytics.DefaultRecentLimit)
	report.Window = window
	report.Minutes = minutes
	return &report, nil
}
