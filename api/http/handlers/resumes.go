package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dharunkumar-sh/career-lens/api/http/presenter"
	"github.com/dharunkumar-sh/career-lens/pkg/resume"
)

type ResumesHandler struct {
	svc resume.UseCase
}

func NewResumesHandler(svc resume.UseCase) *ResumesHandler {
	return &ResumesHandler{svc: svc}
}

// List returns the caller's stored resumes, newest first.
// @Summary List resumes
// @Tags    resumes
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "offset"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	limit, offset := parseLimitOffset(c, 20)
	items, err := h.svc.List(c.Context(), uid, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list resumes")
	}
	return presenter.OK(c, fiber.Map{"resumes": items})
}

// Get returns resume metadata and the extracted text.
// @Summary Get resume
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := paramID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	meta, parsed, err := h.svc.Get(c.Context(), uid, id)
	if err != nil {
		return resumeLookupError(c, err)
	}
	return presenter.OK(c, fiber.Map{
		"resume": meta,
		"text":   parsed.Text,
	})
}

// Download streams the original uploaded file.
// @Summary Download resume file
// @Tags    resumes
// @Produce application/octet-stream
// @Param   id path string true "resume id (UUID)"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/file [get]
func (h *ResumesHandler) Download(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := paramID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	meta, data, err := h.svc.Download(c.Context(), uid, id)
	if err != nil {
		return resumeLookupError(c, err)
	}
	c.Set(fiber.HeaderContentType, meta.MimeType)
	c.Attachment(meta.Filename)
	return c.Status(http.StatusOK).Send(data)
}

// Delete removes a resume, its text and the stored file.
// @Summary Delete resume
// @Tags    resumes
// @Param   id path string true "resume id (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [delete]
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := paramID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Context(), uid, id); err != nil {
		return resumeLookupError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func resumeLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, resume.ErrNotFound) {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
}
