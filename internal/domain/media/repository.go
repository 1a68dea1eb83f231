package media

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/domain/lifecycle"
)

var (
	ErrImageNotFound    = errors.New("image not found")
	ErrDocumentNotFound = errors.New("document not found")
)

// ImageRepository stores images of every listing kind. Lookups are scoped
// to the owning listing so an ID from another listing is never found.
type ImageRepository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, owner lifecycle.EntityRef, id uint) (*Image, error)
	Delete(ctx context.Context, owner lifecycle.EntityRef, id uint) error
	// ListByOwner orders by sort order, then upload time.
	ListByOwner(ctx context.Context, owner lifecycle.EntityRef) ([]*Image, error)
	CountByOwner(ctx context.Context, owner lifecycle.EntityRef) (int64, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, exhibitionID, id uint) (*Document, error)
	Delete(ctx context.Context, exhibitionID, id uint) error
	// ListByExhibition returns the newest first.
	ListByExhibition(ctx context.Context, exhibitionID uint) ([]*Document, error)
	CountByExhibition(ctx context.Context, exhibitionID uint) (int64, error)
	IncrementDownloads(ctx context.Context, id uint) error
}
