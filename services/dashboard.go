package services

import (
	"context"
	"sync"
	"time"

	"kucukaslan/interactions/analytics"
	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/logger"
	"kucukaslan/interactions/metrics"

	"golang.org/x/sync/errgroup"
)

// DashboardReport runs the requested sections concurrently. The time series is
// required and its failure fails the dashboard; any other section that fails
// is left out and its error is reported under Errors.
func (s *reportService) DashboardReport(ctx context.Context, ownerID string, window domain.Window, opts domain.DashboardOptions) (*domain.DashboardReport, error) {
	defer metrics.ObserveReport("dashboard", time.Now())
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	if s.settings.DashboardTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.DashboardTimeout)
		defer cancel()
	}

	granularity := opts.Granularity
	if granularity == "" {
		granularity = analytics.GranularityDay
	}

	dashboard := &domain.DashboardReport{Window: window}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ts, err := s.TimeSeriesReport(gctx, ownerID, window, granularity)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.TimeSeries = *ts
		mu.Unlock()
		return nil
	})

	optional := func(section string, run func(ctx context.Context) error) {
		if !opts.Includes(section) {
			return
		}
		g.Go(func() error {
			if err := run(gctx); err != nil {
				metrics.RecordDashboardSectionFailure(section)
				logger.Ctx(ctx).Warn().Err(err).Str("section", section).Msg("dashboard section failed")

				mu.Lock()
				if dashboard.Errors == nil {
					dashboard.Errors = make(map[string]string)
				}
				dashboard.Errors[section] = err.Error()
				mu.Unlock()
			}
			return nil
		})
	}

	optional(domain.SectionLocations, func(ctx context.Context) error {
		r, err := s.LocationReport(ctx, ownerID, window, opts.LocationLimit, "")
		if err == nil {
			mu.Lock()
			dashboard.Locations = r
			mu.Unlock()
		}
		return err
	})
	optional(domain.SectionLinks, func(ctx context.Context) error {
		r, err := s.LinkReport(ctx, ownerID, window)
		if err == nil {
			mu.Lock()
			dashboard.Links = r
			mu.Unlock()
		}
		return err
	})
	optional(domain.SectionPeakHours, func(ctx context.Context) error {
		r, err := s.PeakHourReport(ctx, ownerID, window, analytics.GroupByHour)
		if err == nil {
			mu.Lock()
			dashboard.PeakHours = r
			mu.Unlock()
		}
		return err
	})
	optional(domain.SectionDevices, func(ctx context.Context) error {
		r, err := s.DeviceReport(ctx, ownerID, window)
		if err == nil {
			mu.Lock()
			dashboard.Devices = r
			mu.Unlock()
		}
		return err
	})
	optional(domain.SectionReferrers, func(ctx context.Context) error {
		r, err := s.ReferrerReport(ctx, ownerID, window, 0)
		if err == nil {
			mu.Lock()
			dashboard.Referrers = r
			mu.Unlock()
		}
		return err
	})
	optional(domain.SectionSegmentation, func(ctx context.Context) error {
		clicks, err := s.clicks(ctx, ownerID, window)
		if err != nil {
			return err
		}
		seg, err := s.segmentation(ctx, ownerID, window, clicks)
		if err == nil {
			mu.Lock()
			dashboard.Segmentation = &seg
			mu.Unlock()
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}
