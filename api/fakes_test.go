package api

import (
	"context"
	"time"

	"kucukaslan/interactions/domain"
)

type fakeIngestion struct {
	inputs []domain.InteractionInput
	click  *domain.ClickResult
	view   *domain.ViewResult
	err    error
}

func (f *fakeIngestion) RecordClick(_ context.Context, input domain.InteractionInput) (*domain.ClickResult, error) {
	f.inputs = append(f.inputs, input)
	return f.click, f.err
}

func (f *fakeIngestion) RecordView(_ context.Context, input domain.InteractionInput) (*domain.ViewResult, error) {
	f.inputs = append(f.inputs, input)
	return f.view, f.err
}

// reportCall captures the arguments of the last report request.
type reportCall struct {
	op       string
	ownerID  string
	window   domain.Window
	limit    int
	targetID string
	groupBy  string
	gran     string
	minutes  int
	opts     domain.DashboardOptions
}

type fakeReports struct {
	last reportCall
	err  error
}

func (f *fakeReports) LocationReport(_ context.Context, ownerID string, window domain.Window, limit int, targetID string) (*domain.LocationReport, error) {
	f.last = reportCall{op: "locations", ownerID: ownerID, window: window, limit: limit, targetID: targetID}
	return &domain.LocationReport{Window: window, Locations: []domain.LocationBucket{}}, f.err
}

func (f *fakeReports) LinkReport(_ context.Context, ownerID string, window domain.Window) (*domain.LinkReport, error) {
	f.last = reportCall{op: "links", ownerID: ownerID, window: window}
	return &domain.LinkReport{Window: window}, f.err
}

func (f *fakeReports) PeakHourReport(_ context.Context, ownerID string, window domain.Window, groupBy string) (*domain.PeakReport, error) {
	f.last = reportCall{op: "peak_hours", ownerID: ownerID, window: window, groupBy: groupBy}
	return &domain.PeakReport{Window: window, GroupBy: groupBy}, f.err
}

func (f *fakeReports) TimeSeriesReport(_ context.Context, ownerID string, window domain.Window, granularity string) (*domain.TimeSeriesReport, error) {
	f.last = reportCall{op: "timeseries", ownerID: ownerID, window: window, gran: granularity}
	return &domain.TimeSeriesReport{Window: window, Granularity: granularity}, f.err
}

func (f *fakeReports) TopLinksReport(_ context.Context, ownerID string, window domain.Window, limit int) (*domain.TopLinksReport, error) {
	f.last = reportCall{op: "top_links", ownerID: ownerID, window: window, limit: limit}
	return &domain.TopLinksReport{Window: window}, f.err
}

func (f *fakeReports) DeviceReport(_ context.Context, ownerID string, window domain.Window) (*domain.DeviceReport, error) {
	f.last = reportCall{op: "devices", ownerID: ownerID, window: window}
	return &domain.DeviceReport{Window: window}, f.err
}

func (f *fakeReports) ReferrerReport(_ context.Context, ownerID string, window domain.Window, limit int) (*domain.ReferrerReport, error) {
	f.last = reportCall{op: "referrers", ownerID: ownerID, window: window, limit: limit}
	return &domain.ReferrerReport{Window: window}, f.err
}

func (f *fakeReports) CollectiveReport(_ context.Context, ownerID string, window domain.Window) (*domain.CollectiveReport, error) {
	f.last = reportCall{op: "collective", ownerID: ownerID, window: window}
	return &domain.CollectiveReport{Window: window}, f.err
}

func (f *fakeReports) DashboardReport(_ context.Context, ownerID string, window domain.Window, opts domain.DashboardOptions) (*domain.DashboardReport, error) {
	f.last = reportCall{op: "dashboard", ownerID: ownerID, window: window, opts: opts}
	return &domain.DashboardReport{Window: window}, f.err
}

func (f *fakeReports) RealtimeReport(_ context.Context, ownerID string, minutes int) (*domain.RealtimeReport, error) {
	f.last = reportCall{op: "realtime", ownerID: ownerID, minutes: minutes}
	return &domain.RealtimeReport{Minutes: minutes, Window: domain.Window{End: time.Now()}}, f.err
}
