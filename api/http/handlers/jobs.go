package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dharunkumar-sh/career-lens/api/http/presenter"
	"github.com/dharunkumar-sh/career-lens/pkg/jobs"
	"github.com/dharunkumar-sh/career-lens/pkg/savedjob"
)

type JobsHandler struct {
	svc   jobs.UseCase
	saved savedjob.UseCase
}

func NewJobsHandler(svc jobs.UseCase, saved savedjob.UseCase) *JobsHandler {
	return &JobsHandler{svc: svc, saved: saved}
}

type jobsResponse struct {
	Success bool `json:"success"`
	jobs.SearchResult
}

// Search lists jobs, or autocompletes titles and locations when
// autocomplete=job|location is given.
// @Summary Search jobs
// @Tags    jobs
// @Produce json
// @Param   query        query string false "keywords" default(software developer)
// @Param   location     query string false "location"
// @Param   page         query int    false "page" default(1)
// @Param   remote       query bool   false "remote only"
// @Param   type         query string false "FULLTIME, PARTTIME, CONTRACTOR or INTERN"
// @Param   autocomplete query string false "job or location"
// @Success 200 {object} jobsResponse
// @Router  /jobs [get]
func (h *JobsHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	location := c.Query("location")

	switch c.Query("autocomplete") {
	case "job":
		return presenter.OK(c, fiber.Map{"suggestions": jobs.JobSuggestions(query)})
	case "location":
		q := location
		if q == "" {
			q = query
		}
		return presenter.OK(c, fiber.Map{"suggestions": jobs.LocationSuggestions(q)})
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	res, err := h.svc.Search(c.Context(), jobs.Query{
		Query:          query,
		Location:       location,
		Page:           page,
		Remote:         c.Query("remote") == "true",
		EmploymentType: strings.ToUpper(strings.TrimSpace(c.Query("type"))),
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to search jobs")
	}
	return presenter.JSON(c, http.StatusOK, jobsResponse{Success: true, SearchResult: res})
}

// Suggest ranks jobs against the caller's skills.
// @Summary Suggest jobs for skills
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body jobs.SuggestRequest true "skills and optional job title"
// @Success 200 {object} jobsResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs/suggest [post]
func (h *JobsHandler) Suggest(c *fiber.Ctx) error {
	var req jobs.SuggestRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	}
	res, err := h.svc.Suggest(c.Context(), req)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to suggest jobs")
	}
	return presenter.JSON(c, http.StatusOK, jobsResponse{Success: true, SearchResult: res})
}

// ListSaved returns the caller's bookmarked jobs.
// @Summary Saved jobs
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /jobs/saved [get]
func (h *JobsHandler) ListSaved(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.saved.List(c.Context(), uid, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list saved jobs")
	}
	return presenter.OK(c, fiber.Map{"savedJobs": items})
}

// Save bookmarks a job. Saving the same job id again refreshes the snapshot.
// @Summary Save job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body jobs.Job true "job as returned by search"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs/saved [post]
func (h *JobsHandler) Save(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	var job jobs.Job
	if err := c.BodyParser(&job); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	saved, err := h.saved.Save(c.Context(), uid, job)
	if err != nil {
		if errors.Is(err, savedjob.ErrInvalid) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to save job")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{"success": true, "savedJob": saved})
}

// RemoveSaved deletes a bookmark.
// @Summary Remove saved job
// @Tags    jobs
// @Param   id path string true "saved job id (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/saved/{id} [delete]
func (h *JobsHandler) RemoveSaved(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := paramID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.saved.Remove(c.Context(), uid, id); err != nil {
		if errors.Is(err, savedjob.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "saved job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to remove saved job")
	}
	return c.SendStatus(http.StatusNoContent)
}
