package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dharunkumar-sh/career-lens/pkg/analysis"
)

// Resume is the metadata of an uploaded file.
type Resume struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mimeType"`
	Size       int64     `json:"size"`
	PageCount  int       `json:"pageCount"`
	StorageURI string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Parsed is the text extracted from a stored resume.
type Parsed struct {
	ResumeID uuid.UUID `json:"resumeId"`
	Text     string    `json:"text"`
}

// Document is the result of text extraction.
type Document struct {
	Text      string
	PageCount int
}

// Upload is one file submitted for analysis. OwnerID is uuid.Nil for anonymous uploads.
type Upload struct {
	OwnerID  uuid.UUID
	Filename string
	MimeType string
	Data     []byte
}

// Outcome is what the pipeline returns to the caller.
type Outcome struct {
	Result     analysis.Result
	ResumeID   *uuid.UUID
	AnalysisID *uuid.UUID
}

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtraction        = errors.New("could not extract text from this file, it may be scanned, image-based, or corrupted")
	ErrNoText            = errors.New("could not extract meaningful text, it may be a scanned document or image-based file")
	ErrTooLarge          = errors.New("file too large")
	ErrEmptyFile         = errors.New("no file uploaded")
	ErrNotFound          = errors.New("resume not found")
)

// Repository is the storage port for resume metadata and parsed text.
type Repository interface {
	Create(ctx context.Context, r Resume) error
	SaveParsed(ctx context.Context, p Parsed) error
	GetParsed(ctx context.Context, resumeID uuid.UUID) (Parsed, error)
	GetMetaForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	// DeleteForOwner returns the deleted metadata so the caller can remove the blob.
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
}

// BlobStore keeps the original uploaded bytes.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Get(ctx context.Context, uri string) ([]byte, error)
	Delete(ctx context.Context, uri string) error
}
