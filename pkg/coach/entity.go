package coach

import "errors"

const (
	TypeCoverLetter   = "cover-letter"
	TypeInterviewPrep = "interview-prep"
)

// Request asks the coach for a cover letter or an interview guide.
type Request struct {
	Type       string `json:"type" validate:"required"`
	JobRole    string `json:"jobRole" validate:"required,max=200"`
	ResumeText string `json:"resumeText" validate:"max=60000"`
	Context    string `json:"coverLetterContext" validate:"max=2000"`
}

// RefineRequest asks for an ATS-friendly rewrite of a resume. Missing and
// Improvements come from a previous analysis.
type RefineRequest struct {
	ResumeText   string   `validate:"required,max=60000"`
	Missing      []string `validate:"max=50"`
	Improvements []string `validate:"max=50"`
	TargetRole   string   `validate:"max=200"`
}

var (
	ErrInvalidType        = errors.New("invalid type")
	ErrResumeTextRequired = errors.New("resume text is required")

	ErrCoachNotConfigured  = errors.New("OPENROUTER_API_KEY is not configured")
	ErrRefineNotConfigured = errors.New("GEMINI_API_KEY is not configured")
)

// ValidationError reports the first failing field.
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + " - " + e.Tag
}
