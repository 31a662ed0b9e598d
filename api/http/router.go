package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dharunkumar-sh/career-lens/api/http/handlers"
	"github.com/dharunkumar-sh/career-lens/api/http/middleware"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	Resume   *handlers.ResumeHandler
	Resumes  *handlers.ResumesHandler
	Analyses *handlers.AnalysesHandler
	Jobs     *handlers.JobsHandler
	Coach    *handlers.CoachHandler
}

// Guards are the auth middlewares: Required rejects anonymous callers,
// Optional only identifies them.
type Guards struct {
	Required fiber.Handler
	Optional fiber.Handler
	// AIRequestsPerMinute caps per-IP calls to LLM-backed routes.
	AIRequestsPerMinute int
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, g Guards) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)
	a.Get("/me", g.Required, h.Auth.Me)

	ai := middleware.AILimiter(g.AIRequestsPerMinute, time.Minute)

	rg := v1.Group("/resume")
	rg.Post("/analyze", g.Optional, h.Resume.Analyze)
	rg.Post("/refine", ai, h.Resume.Refine)

	rs := v1.Group("/resumes", g.Required)
	rs.Get("/", h.Resumes.List)
	rs.Get("/:id", h.Resumes.Get)
	rs.Get("/:id/file", h.Resumes.Download)
	rs.Delete("/:id", h.Resumes.Delete)

	an := v1.Group("/analyses", g.Required)
	an.Get("/", h.Analyses.List)
	an.Get("/latest", h.Analyses.Latest)
	an.Get("/:id", h.Analyses.Get)
	an.Delete("/:id", h.Analyses.Delete)

	j := v1.Group("/jobs")
	j.Get("/", h.Jobs.Search)
	j.Post("/suggest", h.Jobs.Suggest)
	j.Get("/saved", g.Required, h.Jobs.ListSaved)
	j.Post("/saved", g.Required, h.Jobs.Save)
	j.Delete("/saved/:id", g.Required, h.Jobs.RemoveSaved)

	v1.Post("/ai-coach", ai, h.Coach.Generate)
}
