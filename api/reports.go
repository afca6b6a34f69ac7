package api

import (
	"time"

	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/timerange"
	"kucukaslan/interactions/validations"

	"github.com/gofiber/fiber/v2"
)

var _ ReportHandler = &reportHandler{}

type reportHandler struct {
	reports domain.ReportService
	now     func() time.Time
}

func NewReportHandler(reports domain.ReportService, now func() time.Time) ReportHandler {
	if now == nil {
		now = time.Now
	}
	return &reportHandler{reports: reports, now: now}
}

// query parses and validates the shared report parameters and resolves the
// range token to a window.
func (h reportHandler) query(ctx *fiber.Ctx) (domain.ReportQuery, domain.Window, error) {
	var q domain.ReportQuery
	if err := ctx.QueryParser(&q); err != nil {
		return q, domain.Window{}, domain.NewValidationError("query", "invalid query parameters: "+err.Error())
	}
	if err := validations.ValidateReportQuery(&q); err != nil {
		return q, domain.Window{}, err
	}
	window, err := timerange.Resolve(q.Range, h.now())
	if err != nil {
		return q, domain.Window{}, err
	}
	return q, window, nil
}

func respond[T any](ctx *fiber.Ctx, data *T, err error) error {
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(domain.ReportResponse[*T]{
		Success: true,
		Message: "Report generated successfully",
		Data:    data,
	})
}

// GetLocations returns the geographic distribution of clicks
// @Summary Location report
// @Description Clicks on the caller's content grouped by exact coordinates, busiest first. Optionally scoped to one owned target.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today (default), weekly, monthly, yearly or YYYY-MM-DD"
// @Param limit query int false "Maximum number of locations"
// @Param target_id query string false "Restrict to one target"
// @Success 200 {object} domain.ReportResponse[domain.LocationReport]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /v1/reports/locations [get]
func (h reportHandler) GetLocations(ctx *fiber.Ctx) error {
	q, window, err := h.query(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := h.reports.LocationReport(ctx.UserContext(), ActorID(ctx), window, q.Limit, q.TargetID)
	return respond(ctx, report, err)
}

// GetLinks returns click counts per target
// @Summary Link report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today (default), weekly, monthly, yearly or YYYY-MM-DD"
// @Success 200 {object} domain.ReportResponse[domain.LinkReport]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /v1/reports/links [get]
func (h reportHandler) GetLinks(ctx *fiber.Ctx) error {
	_, window, err := h.query(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := h.reports.LinkReport(ctx.UserContext(), ActorID(ctx), window)
	return respond(ctx, report, err)
}

// GetPeakHours returns activity per hour of day and weekday
// @Summary Peak hours report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today (default), weekly, monthly, yearly or YYYY-MM-DD"
// @Param group_by query string false "hour (default), day or all"
// @Success 200 {object} domain.ReportResponse[domain.PeakReport]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /v1/reports/peak-hours [get]
func (h reportHandler) GetPeakHours(ctx *fiber.Ctx) error {
	q, window, err := h.query(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := h.reports.PeakHourReport(ctx.UserContext(), ActorID(ctx), window, q.GroupBy)
	return respond(ctx, report, err)
}

// GetTimeSeries returns clicks bucketed by period with a trend
// @Summary Time series report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today (default), weekly, monthly, yearly or YYYY-MM-DD"
// @Param granularity query string false "hour, day (default), week or month"
// @Success 200 {object} domain.ReportResponse[domain.TimeSeriesReport]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /v1/reports/timeseries [get]
func (h reportHandler) GetTimeSeries(ctx *fiber.Ctx) error {
	q, window, err := h.query(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := h.reports.TimeSeriesReport(ctx.UserContext(), ActorID(ctx), window, q.Granularity)
	return respond(ctx, report, err)
}

// GetTopLinks ranks custom links that still exist
// @Summary Top links report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today (default), weekly, monthly, yearly or YYYY-MM-DD"
// @Param limit query int false "Maximum number of links"
// @Success 200 {object} domain.ReportResponse[domain.TopLinksReport]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /v1/reports/top-links [get]
func (h reportHandler) GetTopLinks(ctx *fiber.Ctx) error {
	q, window, err := h.query(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := h.reports.TopLinksReport(ctx.UserContext(), ActorID(ctx), window, q.Limit)
	return respond(ctx, report, err)
}

// GetDevices breaks clicks down by device class
// @Summary Device report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today (default), weekly, monthly, yearly or YYYY-MM-DD"
// @Success 200 {object} domain.ReportResponse[domain.DeviceReport]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /v1/reports/devices [get]
func (h reportHandler) GetDevices(ctx *fiber.Ctx) error {
	_, window, err := h.query(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := h.reports.DeviceReport(ctx.UserContext(), ActorID(ctx), window)
	return respond(ctx, report, err)
}

// GetReferrers breaks clicks down by referring host
// @Summary Referrer report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today (default), weekly, monthly, yearly or YYYY-MM-DD"
// @Param limit query int false "Maximum number of sources"
// @Success 200 {object} domain.ReportResponse[domain.ReferrerReport]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /v1/reports/referrers [get]
func (h reportHandler) GetReferrers(ctx *fiber.Ctx) error {
	q, window, err := h.query(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := h.reports.ReferrerReport(ctx.UserContext(), ActorID(ctx), window, q.Limit)
	return respond(ctx, report, err)
}

// GetDashboard combines several reports in one response
// @Summary Dashboard
// @Description Runs the requested sections concurrently. The time series is always included; a failing optional section is omitted and listed under errors.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today (default), weekly, monthly, yearly or YYYY-MM-DD"
// @Param include query string false "Comma separated sections: locations, links, peak_hours, devices, referrers, segmentation"
// @Param granularity query string false "Time series granularity"
// @Param limit query int false "Maximum number of locations"
// @Success 200 {object} domain.ReportResponse[domain.DashboardReport]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /v1/reports/dashboard [get]
func (h reportHandler) GetDashboard(ctx *fiber.Ctx) error {
	q, window, err := h.query(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	include, err := validations.ParseInclude(q.Include)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := h.reports.DashboardReport(ctx.UserContext(), ActorID(ctx), window, domain.DashboardOptions{
		Include:       include,
		Granularity:   q.Granularity,
		LocationLimit: q.Limit,
	})
	return respond(ctx, report, err)
}

// GetCollective returns totals with new and returning customers
// @Summary Collective report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today (default), weekly, monthly, yearly or YYYY-MM-DD"
// @Success 200 {object} domain.ReportResponse[domain.CollectiveReport]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /v1/reports/collective [get]
func (h reportHandler) GetCollective(ctx *fiber.Ctx) error {
	_, window, err := h.query(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := h.reports.CollectiveReport(ctx.UserContext(), ActorID(ctx), window)
	return respond(ctx, report, err)
}

// GetRealtime summarizes the last minutes of activity
// @Summary Realtime report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param minutes query int false "Rolling window length in minutes"
// @Success 200 {object} domain.ReportResponse[domain.RealtimeReport]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /v1/reports/realtime [get]
func (h reportHandler) GetRealtime(ctx *fiber.Ctx) error {
	q, _, err := h.query(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := h.reports.RealtimeReport(ctx.UserContext(), ActorID(ctx), q.Minutes)
	return respond(ctx, report, err)
}
