package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/dharunkumar-sh/career-lens/api/http/presenter"
	"github.com/dharunkumar-sh/career-lens/pkg/coach"
)

type CoachHandler struct {
	svc coach.UseCase
	log *zap.Logger
}

func NewCoachHandler(svc coach.UseCase, log *zap.Logger) *CoachHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CoachHandler{svc: svc, log: log}
}

// Generate writes a cover letter or an interview preparation guide.
// @Summary AI coach
// @Tags    coach
// @Accept  json
// @Produce json
// @Param   input body coach.Request true "type is cover-letter or interview-prep"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /ai-coach [post]
func (h *CoachHandler) Generate(c *fiber.Ctx) error {
	var req coach.Request
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	content, err := h.svc.Generate(c.Context(), req)
	if err != nil {
		return coachError(c, h.log, err, "Failed to generate content")
	}
	return presenter.OK(c, fiber.Map{"content": content})
}

func coachError(c *fiber.Ctx, log *zap.Logger, err error, fallback string) error {
	var verr *coach.ValidationError
	switch {
	case errors.Is(err, coach.ErrInvalidType):
		return presenter.Error(c, http.StatusBadRequest, "Invalid type")
	case errors.Is(err, coach.ErrResumeTextRequired):
		return presenter.Error(c, http.StatusBadRequest, "Resume text is required")
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, coach.ErrCoachNotConfigured), errors.Is(err, coach.ErrRefineNotConfigured):
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	default:
		log.Error("coach request failed", zap.String("path", c.Path()), zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, fallback)
	}
}
