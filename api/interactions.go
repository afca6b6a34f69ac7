package api

import (
	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/validations"

	"github.com/gofiber/fiber/v2"
)

var _ InteractionHandler = &interactionHandler{nil}

type interactionHandler struct {
	ingestion domain.IngestionService
}

func NewInteractionHandler(ingestion domain.IngestionService) InteractionHandler {
	return &interactionHandler{ingestion: ingestion}
}

func (h interactionHandler) input(ctx *fiber.Ctx) (domain.InteractionInput, error) {
	var req domain.InteractionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return domain.InteractionInput{}, domain.NewValidationError("body", "invalid request body: "+err.Error())
	}
	if err := validations.ValidateInteractionRequest(&req); err != nil {
		return domain.InteractionInput{}, err
	}

	referrer := req.Referrer
	if referrer == "" {
		referrer = ctx.Get(fiber.HeaderReferer)
	}
	return domain.InteractionInput{
		ActorID:   ActorID(ctx),
		TargetID:  req.TargetID,
		SessionID: req.SessionID,
		UserAgent: ctx.Get(fiber.HeaderUserAgent),
		Referrer:  referrer,
	}, nil
}

// PostClick records a click
// @Summary Record a click
// @Description Record a click of the authenticated actor on a page, business profile or custom link. A repeated click is not stored again and returns the earlier click id.
// @Tags Interactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param click body domain.InteractionRequest true "Clicked target"
// @Success 201 {object} domain.ClickResponse "Click recorded"
// @Success 200 {object} domain.ClickResponse "Click already recorded"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 401 {object} domain.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} domain.ErrorResponse "Target not found"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /v1/interactions/clicks [post]
func (h interactionHandler) PostClick(ctx *fiber.Ctx) error {
	input, err := h.input(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := h.ingestion.RecordClick(ctx.UserContext(), input)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := domain.ClickResponse{
		Success:  true,
		Message:  "Click already recorded",
		IsUnique: result.Created,
	}
	// a concurrent request may hold the claim before its event is stored
	if result.Event != nil {
		resp.ClickID = result.Event.ID
	}
	status := fiber.StatusOK
	if result.Created {
		resp.Message = "Click recorded"
		status = fiber.StatusCreated
	}
	return ctx.Status(status).JSON(resp)
}

// PostView records a view
// @Summary Record a view
// @Description Record that the authenticated actor viewed a target. At most one view per actor, target and UTC day is stored.
// @Tags Interactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param view body domain.InteractionRequest true "Viewed target"
// @Success 201 {object} domain.ViewResponse "View recorded"
// @Success 200 {object} domain.ViewResponse "Already viewed today"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 401 {object} domain.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} domain.ErrorResponse "Target not found"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /v1/interactions/views [post]
func (h interactionHandler) PostView(ctx *fiber.Ctx) error {
	input, err := h.input(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := h.ingestion.RecordView(ctx.UserContext(), input)
	if err != nil {
		return writeError(ctx, err)
	}

	if result.AlreadyToday {
		resp := domain.ViewResponse{Success: true, Message: "Already viewed today", AlreadyViewed: true}
		if result.Event != nil {
			resp.ViewID = result.Event.ID
		}
		return ctx.Status(fiber.StatusOK).JSON(resp)
	}
	return ctx.Status(fiber.StatusCreated).JSON(domain.ViewResponse{
		Success: true,
		Message: "View recorded",
		ViewID:  result.Event.ID,
	})
}
