package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dharunkumar-sh/career-lens/api/http/presenter"
	"github.com/dharunkumar-sh/career-lens/pkg/analysis"
)

type AnalysesHandler struct {
	svc analysis.UseCase
}

func NewAnalysesHandler(svc analysis.UseCase) *AnalysesHandler {
	return &AnalysesHandler{svc: svc}
}

// List returns saved analyses of the caller.
// @Summary List analyses
// @Tags    analyses
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "offset"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /analyses [get]
func (h *AnalysesHandler) List(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	limit, offset := parseLimitOffset(c, 20)
	items, err := h.svc.List(c.Context(), uid, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list analyses")
	}
	return presenter.OK(c, fiber.Map{"analyses": items})
}

// Latest returns the most recent analysis, as the dashboard shows it.
// @Summary Latest analysis
// @Tags    analyses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /analyses/latest [get]
func (h *AnalysesHandler) Latest(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	rec, err := h.svc.Latest(c.Context(), uid)
	if err != nil {
		return analysisLookupError(c, err)
	}
	return presenter.OK(c, fiber.Map{"analysis": rec})
}

// Get returns one analysis.
// @Summary Get analysis
// @Tags    analyses
// @Produce json
// @Param   id path string true "analysis id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /analyses/{id} [get]
func (h *AnalysesHandler) Get(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := paramID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.Get(c.Context(), uid, id)
	if err != nil {
		return analysisLookupError(c, err)
	}
	return presenter.OK(c, fiber.Map{"analysis": rec})
}

// Delete removes one analysis.
// @Summary Delete analysis
// @Tags    analyses
// @Param   id path string true "analysis id (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /analyses/{id} [delete]
func (h *AnalysesHandler) Delete(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := paramID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Context(), uid, id); err != nil {
		return analysisLookupError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func analysisLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, analysis.ErrNotFound) {
		return presenter.Error(c, http.StatusNotFound, "analysis not found")
	}
	return presenter.Error(c, http.StatusInternalServerError, "failed to load analysis")
}
