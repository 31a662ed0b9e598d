package resume

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dharunkumar-sh/career-lens/pkg/analysis"
)

const (
	DefaultMaxBytes = 15 << 20
	minTextChars    = 20
)

// AnalysisService runs the upload pipeline: extract, analyze and, for signed-in
// users, store the file and the result.
type AnalysisService interface {
	Analyze(ctx context.Context, up Upload) (Outcome, error)
}

// UseCase manages an owner's stored resumes.
type UseCase interface {
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Resume, Parsed, error)
	Download(ctx context.Context, ownerID, id uuid.UUID) (Resume, []byte, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type analysisService struct {
	repo     Repository
	blobs    BlobStore
	analyses analysis.UseCase
	log      *zap.Logger
	maxBytes int64
}

// NewAnalysisService wires the pipeline. repo, blobs and analyses may be nil,
// in which case nothing is persisted.
func NewAnalysisService(repo Repository, blobs BlobStore, analyses analysis.UseCase, log *zap.Logger, maxBytes int64) AnalysisService {
	if log == nil {
		log = zap.NewNop()
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &analysisService{repo: repo, blobs: blobs, analyses: analyses, log: log, maxBytes: maxBytes}
}

func (s *analysisService) Analyze(ctx context.Context, up Upload) (Outcome, error) {
	if len(up.Data) == 0 {
		return Outcome{}, ErrEmptyFile
	}
	if int64(len(up.Data)) > s.maxBytes {
		return Outcome{}, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, s.maxBytes)
	}
	format, err := Format(up.Filename, up.MimeType)
	if err != nil {
		return Outcome{}, err
	}

	doc, err := parse(up.Filename, format, up.Data)
	if err != nil {
		s.log.Warn("resume extraction failed", zap.String("filename", up.Filename), zap.Error(err))
		return Outcome{}, err
	}
	if len(strings.TrimSpace(doc.Text)) < minTextChars {
		return Outcome{}, ErrNoText
	}

	result := analysis.Analyze(doc.Text, doc.PageCount)
	out := Outcome{Result: result}
	s.log.Debug("resume analyzed",
		zap.String("filename", up.Filename),
		zap.Int("pages", doc.PageCount),
		zap.Int("score", result.Score),
	)

	if up.OwnerID == uuid.Nil {
		return out, nil
	}

	meta, err := s.store(ctx, up, format, doc)
	if err != nil {
		return Outcome{}, err
	}
	if meta == nil {
		return out, nil
	}
	out.ResumeID = &meta.ID

	if s.analyses != nil {
		rec, err := s.analyses.Save(ctx, analysis.Record{
			OwnerID:  up.OwnerID,
			ResumeID: &meta.ID,
			Filename: up.Filename,
			Result:   result,
		})
		if err != nil {
			s.rollback(ctx, *meta, true)
			return Outcome{}, fmt.Errorf("save analysis: %w", err)
		}
		out.AnalysisID = &rec.ID
	}
	return out, nil
}

// store writes the blob, the metadata row and the parsed text. On failure
// whatever was already written is removed again.
func (s *analysisService) store(ctx context.Context, up Upload, format string, doc Document) (*Resume, error) {
	if s.repo == nil {
		return nil, nil
	}
	meta := Resume{
		ID:        uuid.New(),
		OwnerID:   up.OwnerID,
		Filename:  up.Filename,
		MimeType:  format,
		Size:      int64(len(up.Data)),
		PageCount: doc.PageCount,
		CreatedAt: time.Now().UTC(),
	}
	if s.blobs != nil {
		key := meta.ID.String() + strings.ToLower(filepath.Ext(up.Filename))
		uri, err := s.blobs.Put(ctx, key, format, up.Data)
		if err != nil {
			return nil, fmt.Errorf("store file: %w", err)
		}
		meta.StorageURI = uri
	}
	if err := s.repo.Create(ctx, meta); err != nil {
		s.rollback(ctx, meta, false)
		return nil, fmt.Errorf("save resume metadata: %w", err)
	}
	if err := s.repo.SaveParsed(ctx, Parsed{ResumeID: meta.ID, Text: doc.Text}); err != nil {
		s.rollback(ctx, meta, true)
		return nil, fmt.Errorf("save parsed text: %w", err)
	}
	return &meta, nil
}

// rollback removes a partially stored upload. Failures are logged only.
func (s *analysisService) rollback(ctx context.Context, meta Resume, row bool) {
	ctx = context.WithoutCancel(ctx)
	if row {
		if _, err := s.repo.DeleteForOwner(ctx, meta.OwnerID, meta.ID); err != nil && !errors.Is(err, ErrNotFound) {
			s.log.Warn("resume rollback failed", zap.String("resume_id", meta.ID.String()), zap.Error(err))
		}
	}
	if s.blobs != nil && meta.StorageURI != "" {
		if err := s.blobs.Delete(ctx, meta.StorageURI); err != nil {
			s.log.Warn("blob cleanup failed", zap.String("uri", meta.StorageURI), zap.Error(err))
		}
	}
}

type service struct {
	repo  Repository
	blobs BlobStore
	log   *zap.Logger
}

func NewService(repo Repository, blobs BlobStore, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{repo: repo, blobs: blobs, log: log}
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Resume{}
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Resume, Parsed, error) {
	meta, err := s.repo.GetMetaForOwner(ctx, ownerID, id)
	if err != nil {
		return Resume{}, Parsed{}, err
	}
	parsed, err := s.repo.GetParsed(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Resume{}, Parsed{}, err
	}
	return meta, parsed, nil
}

func (s *service) Download(ctx context.Context, ownerID, id uuid.UUID) (Resume, []byte, error) {
	meta, err := s.repo.GetMetaForOwner(ctx, ownerID, id)
	if err != nil {
		return Resume{}, nil, err
	}
	if s.blobs == nil || meta.StorageURI == "" {
		return Resume{}, nil, ErrNotFound
	}
	data, err := s.blobs.Get(ctx, meta.StorageURI)
	if err != nil {
		return Resume{}, nil, fmt.Errorf("read file: %w", err)
	}
	return meta, data, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	meta, err := s.repo.DeleteForOwner(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if s.blobs != nil && meta.StorageURI != "" {
		if err := s.blobs.Delete(ctx, meta.StorageURI); err != nil {
			s.log.Warn("blob cleanup failed", zap.String("uri", meta.StorageURI), zap.Error(err))
		}
	}
	return nil
}
