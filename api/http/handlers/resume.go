package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dharunkumar-sh/career-lens/api/http/presenter"
	"github.com/dharunkumar-sh/career-lens/pkg/analysis"
	"github.com/dharunkumar-sh/career-lens/pkg/coach"
	"github.com/dharunkumar-sh/career-lens/pkg/resume"
)

type ResumeHandler struct {
	svc   resume.AnalysisService
	coach coach.UseCase
	log   *zap.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc resume.AnalysisService, coach coach.UseCase, log *zap.Logger, maxBytes int64) *ResumeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	if maxBytes <= 0 {
		maxBytes = resume.DefaultMaxBytes
	}
	return &ResumeHandler{svc: svc, coach: coach, log: log, maxBytes: maxBytes}
}

type analyzeResponse struct {
	Success bool `json:"success"`
	analysis.Result
	ResumeID   *uuid.UUID `json:"resumeId,omitempty"`
	AnalysisID *uuid.UUID `json:"analysisId,omitempty"`
}

// Analyze extracts text from an uploaded resume and scores it. Signed-in
// users also get the file and the result stored.
// @Summary Analyze a resume
// @Description Accepts a PDF or DOCX file, extracts its text and returns score, skills and feedback.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Resume file (PDF or DOCX)"
// @Security BearerAuth
// @Success 200 {object} analyzeResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 413 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/analyze [post]
func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "No file uploaded")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	owner, _ := currentUser(c)
	out, err := h.svc.Analyze(c.Context(), resume.Upload{
		OwnerID:  owner,
		Filename: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		status, msg := analyzeError(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("resume analysis failed", zap.String("filename", fh.Filename), zap.Error(err))
		}
		return presenter.Error(c, status, msg)
	}
	return presenter.JSON(c, http.StatusOK, analyzeResponse{
		Success:    true,
		Result:     out.Result,
		ResumeID:   out.ResumeID,
		AnalysisID: out.AnalysisID,
	})
}

func analyzeError(err error) (int, string) {
	switch {
	case errors.Is(err, resume.ErrEmptyFile):
		return http.StatusBadRequest, "No file uploaded"
	case errors.Is(err, resume.ErrUnsupportedFormat):
		return http.StatusBadRequest, "Please upload a PDF or DOCX file"
	case errors.Is(err, resume.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, resume.ErrExtraction):
		return http.StatusBadRequest, "Could not extract text from this file. It may be scanned, image-based, or corrupted."
	case errors.Is(err, resume.ErrNoText):
		return http.StatusBadRequest, "Could not extract meaningful text from this file. It may be a scanned document or image-based PDF."
	default:
		return http.StatusInternalServerError, "Failed to parse resume"
	}
}

type refineRequest struct {
	CurrentResumeText string `json:"currentResumeText"`
	AnalysisResults   *struct {
		Skills *struct {
			Missing []string `json:"missing"`
		} `json:"skills"`
		Improvements []string `json:"improvements"`
	} `json:"analysisResults"`
	TargetRole string `json:"targetRole"`
}

func (r refineRequest) toDomain() coach.RefineRequest {
	out := coach.RefineRequest{ResumeText: r.CurrentResumeText, TargetRole: r.TargetRole}
	if a := r.AnalysisResults; a != nil {
		out.Improvements = a.Improvements
		if a.Skills != nil {
			out.Missing = a.Skills.Missing
		}
	}
	return out
}

// Refine rewrites a resume for applicant tracking systems.
// @Summary ATS resume rewrite
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body refineRequest true "resume text and previous analysis"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/refine [post]
func (h *ResumeHandler) Refine(c *fiber.Ctx) error {
	var req refineRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	text, err := h.coach.Refine(c.Context(), req.toDomain())
	if err != nil {
		return coachError(c, h.log, err, "Failed to refine resume")
	}
	return presenter.OK(c, fiber.Map{"refinedResume": text})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	// one extra byte lets the service report the limit
	b, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return b, nil
}
