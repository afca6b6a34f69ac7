package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/timerange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

var eventSeq int

func ev(t domain.InteractionType, kind domain.TargetKind, owner, actor, target string, at time.Time) domain.InteractionEvent {
	eventSeq++
	return domain.InteractionEvent{
		ID:         fmt.Sprintf("evt-%04d", eventSeq),
		Type:       t,
		TargetKind: kind,
		TargetID:   target,
		OwnerID:    owner,
		ActorID:    actor,
		Timestamp:  at,
	}
}

func linkClick(actor, target string, at time.Time) domain.InteractionEvent {
	return ev(domain.InteractionClick, domain.TargetCustomLink, "owner-1", actor, target, at)
}

func pageView(actor string, at time.Time) domain.InteractionEvent {
	return ev(domain.InteractionView, domain.TargetPage, "owner-1", actor, "page-1", at)
}

func weekly(t *testing.T) domain.Window {
	t.Helper()
	w, err := timerange.Resolve("weekly", reportNow)
	require.NoError(t, err)
	return w
}

func newReportFixture(t *testing.T, events ...domain.InteractionEvent) (*fakeEventStore, *fakeContent, domain.ReportService) {
	t.Helper()
	store := newFakeEventStore(events...)
	content := newFakeContent()
	content.pages["page-1"] = domain.Page{ID: "page-1", OwnerID: "owner-1"}
	content.pages["page-x"] = domain.Page{ID: "page-x", OwnerID: "owner-2"}
	content.widgets["link-1"] = domain.Widget{ID: "link-1", OwnerID: "owner-1", Kind: domain.CustomLinkWidgetKind, Title: "One"}
	content.widgets["link-2"] = domain.Widget{ID: "link-2", OwnerID: "owner-1", Kind: domain.CustomLinkWidgetKind, Title: "Two"}

	svc, err := NewReportService(store, content, NewDefaultTargetResolver(content, baseURL), ReportSettings{
		DefaultLocationLimit: 50,
		MaxLocationLimit:     100,
		DefaultTopLinksLimit: 10,
		RealtimeMinutes:      30,
		DashboardTimeout:     5 * time.Second,
	}, WithReportClock(func() time.Time { return reportNow }))
	require.NoError(t, err)
	return store, content, svc
}

func TestReports_RequireOwner(t *testing.T) {
	_, _, svc := newReportFixture(t)

	_, err := svc.LinkReport(context.Background(), "", weekly(t))

	assert.True(t, domain.IsUnauthorized(err))
}

func TestLocationReport_ScopesToOwnedTarget(t *testing.T) {
	_, _, svc := newReportFixture(t,
		ev(domain.InteractionClick, domain.TargetPage, "owner-1", "a", "page-1", reportNow.Add(-time.Hour)),
		linkClick("b", "link-1", reportNow.Add(-time.Hour)),
	)
	ctx := context.Background()

	report, err := svc.LocationReport(ctx, "owner-1", weekly(t), 0, "page-1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.TotalClicks)

	_, err = svc.LocationReport(ctx, "owner-1", weekly(t), 0, "page-x")
	assert.True(t, domain.IsNotFound(err), "target of another owner")

	_, err = svc.LocationReport(ctx, "owner-1", weekly(t), 0, "nope")
	assert.True(t, domain.IsNotFound(err))

	all, err := svc.LocationReport(ctx, "owner-1", weekly(t), 0, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Summary.TotalClicks)
	assert.Equal(t, weekly(t), all.Window)
}

func TestLocationReport_ClampsLimit(t *testing.T) {
	var events []domain.InteractionEvent
	for i := range 120 {
		e := linkClick(fmt.Sprintf("actor-%d", i), "link-1", reportNow.Add(-time.Minute))
		e.Coordinates = domain.Coordinates{Longitude: float64(i), Latitude: 1}
		events = append(events, e)
	}
	_, _, svc := newReportFixture(t, events...)

	report, err := svc.LocationReport(context.Background(), "owner-1", weekly(t), 1000, "")

	require.NoError(t, err)
	assert.Len(t, report.Locations, 100)
	assert.Equal(t, 120, report.Summary.UniqueLocations)
}

func TestTimeSeriesReport_EmptyWeekly(t *testing.T) {
	_, _, svc := newReportFixture(t)

	report, err := svc.TimeSeriesReport(context.Background(), "owner-1", weekly(t), "day")

	require.NoError(t, err)
	assert.Empty(t, report.Buckets)
	assert.Zero(t, report.Trend.Percentage)
}

func TestPeakHourReport_UsesViewsWhenPresent(t *testing.T) {
	at := time.Date(2026, 10, 15, 14, 10, 0, 0, time.UTC)
	_, _, svc := newReportFixture(t,
		linkClick("a", "link-1", at),
		pageView("a", at),
		pageView("b", at),
	)

	report, err := svc.PeakHourReport(context.Background(), "owner-1", weekly(t), "hour")

	require.NoError(t, err)
	assert.Equal(t, 1, report.Hours[14].Interactions)
	assert.Equal(t, 2, report.Hours[14].Views)
	assert.InDelta(t, 50.0, report.Hours[14].EngagementRate, 1e-9)
}

func TestPeakHourReport_WithoutViews(t *testing.T) {
	at := time.Date(2026, 10, 15, 14, 10, 0, 0, time.UTC)
	_, _, svc := newReportFixture(t, linkClick("a", "link-1", at))

	report, err := svc.PeakHourReport(context.Background(), "owner-1", weekly(t), "hour")

	require.NoError(t, err)
	assert.Equal(t, 100.0, report.Hours[14].EngagementRate)
}

func TestTopLinksReport_SkipsDeletedAndForeignWidgets(t *testing.T) {
	at := reportNow.Add(-time.Hour)
	_, content, svc := newReportFixture(t,
		linkClick("a", "link-1", at),
		linkClick("b", "link-2", at),
		linkClick("c", "link-2", at),
		linkClick("d", "deleted", at),
		linkClick("e", "foreign", at),
	)
	content.widgets["foreign"] = domain.Widget{ID: "foreign", OwnerID: "owner-2", Kind: domain.CustomLinkWidgetKind}

	report, err := svc.TopLinksReport(context.Background(), "owner-1", weekly(t), 0)

	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalClicks)
	require.Len(t, report.Links, 2)
	assert.Equal(t, "link-2", report.Links[0].Link.TargetID)
	assert.Equal(t, "Two", report.Links[0].Widget.Title)
	assert.Equal(t, 2, report.Links[1].Rank)
}

func TestCollectiveReport_Segmentation(t *testing.T) {
	window := weekly(t)
	day1 := window.Start.Add(10 * time.Hour)
	day5 := window.Start.AddDate(0, 0, 4).Add(10 * time.Hour)

	inWindow := []domain.InteractionEvent{
		linkClick("A", "link-1", day1),
		linkClick("A", "link-1", day5),
		linkClick("B", "link-1", day5),
		pageView("C", day5),
	}

	t.Run("no history", func(t *testing.T) {
		_, _, svc := newReportFixture(t, inWindow...)

		report, err := svc.CollectiveReport(context.Background(), "owner-1", window)

		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, report.Segmentation.NewActorIDs)
		assert.Empty(t, report.Segmentation.ReturningActorIDs)
		assert.Equal(t, domain.Summary{TotalClicks: 3, TotalViews: 1, UniqueActors: 3, UniqueTargets: 2}, report.Summary)
	})

	t.Run("A clicked before the window", func(t *testing.T) {
		prior := linkClick("A", "link-2", window.Start.Add(-24*time.Hour))
		_, _, svc := newReportFixture(t, append([]domain.InteractionEvent{prior}, inWindow...)...)

		report, err := svc.CollectiveReport(context.Background(), "owner-1", window)

		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, report.Segmentation.ReturningActorIDs)
		assert.Equal(t, []string{"B"}, report.Segmentation.NewActorIDs)
		assert.Equal(t, 2, report.Segmentation.ReturningClicks)
		assert.Equal(t, 1, report.Segmentation.NewClicks)
	})
}

func TestRealtimeReport_RollingWindow(t *testing.T) {
	_, _, svc := newReportFixture(t,
		linkClick("a", "link-1", reportNow.Add(-5*time.Minute)),
		pageView("b", reportNow.Add(-10*time.Minute)),
		linkClick("c", "link-1", reportNow.Add(-45*time.Minute)),
	)

	report, err := svc.RealtimeReport(context.Background(), "owner-1", 0)

	require.NoError(t, err)
	assert.Equal(t, 30, report.Minutes)
	assert.Equal(t, reportNow, report.Window.End)
	assert.Equal(t, 1, report.Clicks)
	assert.Equal(t, 1, report.Views)
	assert.Equal(t, 2, report.ActiveActors)
	require.Len(t, report.Recent, 2)
	assert.Equal(t, "a", report.Recent[0].ActorID)
}

func TestDashboardReport_AllSections(t *testing.T) {
	at := reportNow.Add(-time.Hour)
	_, _, svc := newReportFixture(t, linkClick("a", "link-1", at), pageView("a", at))

	report, err := svc.DashboardReport(context.Background(), "owner-1", weekly(t), domain.DashboardOptions{})

	require.NoError(t, err)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 1, report.TimeSeries.TotalClicks)
	assert.NotNil(t, report.Locations)
	assert.NotNil(t, report.Links)
	assert.NotNil(t, report.PeakHours)
	assert.NotNil(t, report.Devices)
	assert.NotNil(t, report.Referrers)
	assert.NotNil(t, report.Segmentation)
}

func TestDashboardReport_OptionalSectionFailuresArePartial(t *testing.T) {
	at := reportNow.Add(-time.Hour)
	store, _, svc := newReportFixture(t, linkClick("a", "link-1", at))
	store.distinctErr = errors.New("clickhouse: too many simultaneous queries")
	store.listErrs[domain.InteractionView] = errors.New("clickhouse: timeout")

	report, err := svc.DashboardReport(context.Background(), "owner-1", weekly(t), domain.DashboardOptions{})

	require.NoError(t, err)
	assert.Equal(t, 1, report.TimeSeries.TotalClicks)
	assert.Nil(t, report.Segmentation)
	assert.Nil(t, report.PeakHours)
	assert.Contains(t, report.Errors, domain.SectionSegmentation)
	assert.Contains(t, report.Errors, domain.SectionPeakHours)
	assert.NotNil(t, report.Locations)
	assert.NotNil(t, report.Links)
}

func TestDashboardReport_TimeSeriesFailureIsFatal(t *testing.T) {
	store, _, svc := newReportFixture(t)
	store.listErrs[domain.InteractionClick] = errors.New("clickhouse: connection refused")

	report, err := svc.DashboardReport(context.Background(), "owner-1", weekly(t), domain.DashboardOptions{})

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestDashboardReport_IncludeSubset(t *testing.T) {
	_, _, svc := newReportFixture(t)

	report, err := svc.DashboardReport(context.Background(), "owner-1", weekly(t), domain.DashboardOptions{
		Include: map[string]bool{domain.SectionLinks: true},
	})

	require.NoError(t, err)
	assert.NotNil(t, report.Links)
	assert.Nil(t, report.Locations)
	assert.Nil(t, report.Segmentation)
}
