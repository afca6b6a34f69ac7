package api

import (
	"github.com/gofiber/fiber/v2"
)

type InteractionHandler interface {
	PostClick(ctx *fiber.Ctx) error
	PostView(ctx *fiber.Ctx) error
}

type ReportHandler interface {
	GetLocations(ctx *fiber.Ctx) error
	GetLinks(ctx *fiber.Ctx) error
	GetPeakHours(ctx *fiber.Ctx) error
	GetTimeSeries(ctx *fiber.Ctx) error
	GetTopLinks(ctx *fiber.Ctx) error
	GetDevices(ctx *fiber.Ctx) error
	GetReferrers(ctx *fiber.Ctx) error
	GetDashboard(ctx *fiber.Ctx) error
	GetCollective(ctx *fiber.Ctx) error
	GetRealtime(ctx *fiber.Ctx) error
}

// RegisterRoutes mounts the authenticated v1 API on router.
func RegisterRoutes(router fiber.Router, requireActor fiber.Handler, interactions InteractionHandler, reports ReportHandler) {
	v1 := router.Group("/v1", requireActor)

	v1.Post("/interactions/clicks", interactions.PostClick)
	v1.Post("/interactions/views", interactions.PostView)

	r := v1.Group("/reports")
	r.Get("/locations", reports.GetLocations)
	r.Get("/links", reports.GetLinks)
	r.Get("/peak-hours", reports.GetPeakHours)
	r.Get("/timeseries", reports.GetTimeSeries)
	r.Get("/top-links", reports.GetTopLinks)
	r.Get("/devices", reports.GetDevices)
	r.Get("/referrers", reports.GetReferrers)
	r.Get("/dashboard", reports.GetDashboard)
	r.Get("/collective", reports.GetCollective)
	r.Get("/realtime", reports.GetRealtime)
}
