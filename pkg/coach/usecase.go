package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dharunkumar-sh/career-lens/pkg/llm"
	"github.com/dharunkumar-sh/career-lens/pkg/logger"
)

type UseCase interface {
	// Generate writes a cover letter or an interview preparation guide.
	Generate(ctx context.Context, req Request) (string, error)
	// Refine rewrites a resume for applicant tracking systems.
	Refine(ctx context.Context, req RefineRequest) (string, error)
}

type service struct {
	writer   llm.ChatModel
	refiner  llm.ChatModel
	validate *validator.Validate
	log      *zap.Logger
}

// NewService wires the coach. writer serves Generate and refiner serves
// Refine; either may be nil when its provider has no key.
func NewService(writer, refiner llm.ChatModel, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{writer: writer, refiner: refiner, validate: validator.New(), log: log}
}

func (s *service) Generate(ctx context.Context, req Request) (string, error) {
	if s.writer == nil {
		return "", ErrCoachNotConfigured
	}
	req.Type = strings.TrimSpace(req.Type)
	if req.Type != TypeCoverLetter && req.Type != TypeInterviewPrep {
		return "", ErrInvalidType
	}
	if err := s.check(req); err != nil {
		return "", err
	}

	system, user := coverLetterSystem, coverLetterPrompt(req)
	if req.Type == TypeInterviewPrep {
		system, user = interviewPrepSystem, interviewPrepPrompt(req)
	}
	return s.ask(ctx, s.writer, req.Type, system, user, ErrCoachNotConfigured)
}

func (s *service) Refine(ctx context.Context, req RefineRequest) (string, error) {
	if s.refiner == nil {
		return "", ErrRefineNotConfigured
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return "", ErrResumeTextRequired
	}
	if err := s.check(req); err != nil {
		return "", err
	}
	return s.ask(ctx, s.refiner, "refine", refineSystem, refinePrompt(req), ErrRefineNotConfigured)
}

func (s *service) ask(ctx context.Context, model llm.ChatModel, kind, system, user string, notConfigured error) (string, error) {
	out, err := model.Ask(ctx, system, user)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return "", notConfigured
		}
		s.log.Warn("coach generation failed",
			zap.String("kind", kind),
			zap.String("prompt", logger.Truncate(user, 120)),
			zap.Error(err),
		)
		return "", fmt.Errorf("generate %s: %w", kind, err)
	}
	s.log.Debug("coach generation done",
		zap.String("kind", kind),
		zap.Int("chars", len(out)),
		zap.String("preview", logger.Truncate(out, 80)),
	)
	return out, nil
}

func (s *service) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: verrs[0].Field(), Tag: verrs[0].Tag()}
	}
	return err
}
