package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/media/dto"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/media"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type AddDocumentCommand struct {
	ExhibitionID uint
	Actor        user.Principal
	Title        string
	Ref          string
	FileSize     int64
}

type AddDocumentUseCase struct {
	listings  listings
	documents media.DocumentRepository
	assets    common.AssetURLResolver
	logger    logger.Interface
}

func NewAddDocumentUseCase(
	targets common.Targets,
	documents media.DocumentRepository,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *AddDocumentUseCase {
	return &AddDocumentUseCase{
		listings:  listings{targets: targets},
		documents: documents,
		assets:    assets,
		logger:    logger,
	}
}

func (uc *AddDocumentUseCase) Execute(ctx context.Context, cmd AddDocumentCommand) (*dto.DocumentDTO, error) {
	if _, err := uc.listings.forEdit(ctx, lifecycle.ExhibitionRef(cmd.ExhibitionID), cmd.Actor); err != nil {
		return nil, err
	}

	doc, err := media.NewDocument(cmd.ExhibitionID, cmd.Title, cmd.Ref, cmd.FileSize, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	count, err := uc.documents.CountByExhibition(ctx, cmd.ExhibitionID)
	if err != nil {
		return nil, err
	}
	if count >= media.MaxDocumentsPerExhibition {
		return nil, apperrors.NewConflictError("document limit reached")
	}

	if err := uc.documents.Create(ctx, doc); err != nil {
		uc.logger.Errorw("failed to add document", "exhibition_id", cmd.ExhibitionID, "error", err)
		return nil, err
	}

	uc.logger.Infow("document added", "exhibition_id", cmd.ExhibitionID, "document_id", doc.ID(), "actor_id", cmd.Actor.UserID)
	out := dto.ToDocumentDTO(doc, func(ref string) string { return common.ResolveURL(uc.assets, ref) })
	return &out, nil
}

type RemoveDocumentCommand struct {
	ExhibitionID uint
	DocumentID   uint
	Actor        user.Principal
}

type RemoveDocumentUseCase struct {
	listings  listings
	documents media.DocumentRepository
	objects   ObjectDeleter
	logger    logger.Interface
}

func NewRemoveDocumentUseCase(
	targets common.Targets,
	documents media.DocumentRepository,
	objects ObjectDeleter,
	logger logger.Interface,
) *RemoveDocumentUseCase {
	return &RemoveDocumentUseCase{
		listings:  listings{targets: targets},
		documents: documents,
		objects:   objects,
		logger:    logger,
	}
}

func (uc *RemoveDocumentUseCase) Execute(ctx context.Context, cmd RemoveDocumentCommand) error {
	if _, err := uc.listings.forRemove(ctx, lifecycle.ExhibitionRef(cmd.ExhibitionID), cmd.Actor); err != nil {
		return err
	}

	doc, err := uc.documents.GetByID(ctx, cmd.ExhibitionID, cmd.DocumentID)
	if err != nil {
		if errors.Is(err, media.ErrDocumentNotFound) {
			return apperrors.NewNotFoundError("document not found")
		}
		return err
	}
	if err := uc.documents.Delete(ctx, cmd.ExhibitionID, doc.ID()); err != nil {
		if errors.Is(err, media.ErrDocumentNotFound) {
			return apperrors.NewNotFoundError("document not found")
		}
		return err
	}

	if uc.objects != nil {
		if err := uc.objects.Delete(ctx, doc.Ref()); err != nil {
			uc.logger.Warnw("failed to delete document file", "ref", doc.Ref(), "error", err)
		}
	}
	uc.logger.Infow("document removed", "exhibition_id", cmd.ExhibitionID, "document_id", doc.ID(), "actor_id", cmd.Actor.UserID)
	return nil
}

type ListDocumentsQuery struct {
	ExhibitionID uint
	Viewer       user.Principal
}

type ListDocumentsUseCase struct {
	listings  listings
	documents media.DocumentRepository
	assets    common.AssetURLResolver
}

func NewListDocumentsUseCase(targets common.Targets, documents media.DocumentRepository, assets common.AssetURLResolver) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{listings: listings{targets: targets}, documents: documents, assets: assets}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, query ListDocumentsQuery) ([]dto.DocumentDTO, error) {
	if _, err := uc.listings.forRead(ctx, lifecycle.ExhibitionRef(query.ExhibitionID), query.Viewer); err != nil {
		return nil, err
	}
	list, err := uc.documents.ListByExhibition(ctx, query.ExhibitionID)
	if err != nil {
		return nil, err
	}
	resolve := func(ref string) string { return common.ResolveURL(uc.assets, ref) }
	out := make([]dto.DocumentDTO, 0, len(list))
	for _, doc := range list {
		out = append(out, dto.ToDocumentDTO(doc, resolve))
	}
	return out, nil
}

type DownloadDocumentQuery struct {
	ExhibitionID uint
	DocumentID   uint
	Viewer       user.Principal
}

// DownloadDocumentUseCase counts a download and returns the file URL. A
// failed count does not block the download.
type DownloadDocumentUseCase struct {
	listings  listings
	documents media.DocumentRepository
	assets    common.AssetURLResolver
	logger    logger.Interface
}

func NewDownloadDocumentUseCase(
	targets common.Targets,
	documents media.DocumentRepository,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *DownloadDocumentUseCase {
	return &DownloadDocumentUseCase{
		listings:  listings{targets: targets},
		documents: documents,
		assets:    assets,
		logger:    logger,
	}
}

func (uc *DownloadDocumentUseCase) Execute(ctx context.Context, query DownloadDocumentQuery) (string, error) {
	if _, err := uc.listings.forRead(ctx, lifecycle.ExhibitionRef(query.ExhibitionID), query.Viewer); err != nil {
		return "", err
	}
	doc, err := uc.documents.GetByID(ctx, query.ExhibitionID, query.DocumentID)
	if err != nil {
		if errors.Is(err, media.ErrDocumentNotFound) {
			return "", apperrors.NewNotFoundError("document not found")
		}
		return "", err
	}
	if err := uc.documents.IncrementDownloads(ctx, doc.ID()); err != nil {
		uc.logger.Warnw("failed to count document download", "document_id", doc.ID(), "error", err)
	}
	return common.ResolveURL(uc.assets, doc.Ref()), nil
}
