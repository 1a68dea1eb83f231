// Package media serves exhibition images and documents and company
// galleries. Files are uploaded through /uploads first; these endpoints
// attach the returned reference to a listing.
package media

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/media/dto"
	"github.com/expohub/expohub/internal/application/media/usecases"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type addImageUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddImageCommand) (*dto.ImageDTO, error)
}

type removeImageUseCase interface {
	Execute(ctx context.Context, cmd usecases.RemoveImageCommand) error
}

type listImagesUseCase interface {
	Execute(ctx context.Context, query usecases.ListImagesQuery) ([]dto.ImageDTO, error)
}

type addDocumentUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddDocumentCommand) (*dto.DocumentDTO, error)
}

type removeDocumentUseCase interface {
	Execute(ctx context.Context, cmd usecases.RemoveDocumentCommand) error
}

type listDocumentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListDocumentsQuery) ([]dto.DocumentDTO, error)
}

type downloadDocumentUseCase interface {
	Execute(ctx context.Context, query usecases.DownloadDocumentQuery) (string, error)
}

type Handler struct {
	addImageUC       addImageUseCase
	removeImageUC    removeImageUseCase
	listImagesUC     listImagesUseCase
	addDocumentUC    addDocumentUseCase
	removeDocumentUC removeDocumentUseCase
	listDocumentsUC  listDocumentsUseCase
	downloadUC       downloadDocumentUseCase
	logger           logger.Interface
}

func NewHandler(
	addImageUC addImageUseCase,
	removeImageUC removeImageUseCase,
	listImagesUC listImagesUseCase,
	addDocumentUC addDocumentUseCase,
	removeDocumentUC removeDocumentUseCase,
	listDocumentsUC listDocumentsUseCase,
	downloadUC downloadDocumentUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		addImageUC:       addImageUC,
		removeImageUC:    removeImageUC,
		listImagesUC:     listImagesUC,
		addDocumentUC:    addDocumentUC,
		removeDocumentUC: removeDocumentUC,
		listDocumentsUC:  listDocumentsUC,
		downloadUC:       downloadUC,
		logger:           logger,
	}
}

// ListImages returns the handler for GET /exhibitions/:id/images and
// GET /companies/:id/gallery.
func (h *Handler) ListImages(kind lvo.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref, ok := listingRef(c, kind)
		if !ok {
			return
		}
		items, err := h.listImagesUC.Execute(c.Request.Context(), usecases.ListImagesQuery{
			Listing: ref,
			Viewer:  middleware.GetPrincipal(c),
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", items)
	}
}

// AddImage returns the handler for POST /exhibitions/:id/images and
// POST /companies/:id/gallery.
func (h *Handler) AddImage(kind lvo.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref, ok := listingRef(c, kind)
		if !ok {
			return
		}
		var req ImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, common.BindError(err))
			return
		}
		out, err := h.addImageUC.Execute(c.Request.Context(), usecases.AddImageCommand{
			Listing:     ref,
			Actor:       middleware.GetPrincipal(c),
			Ref:         req.Ref,
			Title:       req.Title,
			Description: req.Description,
			SortOrder:   req.SortOrder,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.CreatedResponse(c, out, "Image added")
	}
}

// RemoveImage returns the handler for DELETE .../:imageId.
func (h *Handler) RemoveImage(kind lvo.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref, ok := listingRef(c, kind)
		if !ok {
			return
		}
		imageID, err := utils.ParseUintParam(c, "imageId", "image")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		if err := h.removeImageUC.Execute(c.Request.Context(), usecases.RemoveImageCommand{
			Listing: ref,
			ImageID: imageID,
			Actor:   middleware.GetPrincipal(c),
		}); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.NoContentResponse(c)
	}
}

// ListDocuments handles GET /exhibitions/:id/documents
func (h *Handler) ListDocuments(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "exhibition")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	items, err := h.listDocumentsUC.Execute(c.Request.Context(), usecases.ListDocumentsQuery{
		ExhibitionID: id,
		Viewer:       middleware.GetPrincipal(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// AddDocument handles POST /exhibitions/:id/documents
//
//	@Summary	Attach an uploaded document to an exhibition
//	@Tags		exhibitions
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int				true	"Exhibition ID"
//	@Param		request	body		DocumentRequest	true	"Document"
//	@Success	201		{object}	utils.APIResponse{data=dto.DocumentDTO}
//	@Failure	403		{object}	utils.APIResponse
//	@Router		/exhibitions/{id}/documents [post]
func (h *Handler) AddDocument(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "exhibition")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}
	out, err := h.addDocumentUC.Execute(c.Request.Context(), usecases.AddDocumentCommand{
		ExhibitionID: id,
		Actor:        middleware.GetPrincipal(c),
		Title:        req.Title,
		Ref:          req.Ref,
		FileSize:     req.FileSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, out, "Document added")
}

// RemoveDocument handles DELETE /exhibitions/:id/documents/:documentId
func (h *Handler) RemoveDocument(c *gin.Context) {
	id, documentID, ok := documentParams(c)
	if !ok {
		return
	}
	if err := h.removeDocumentUC.Execute(c.Request.Context(), usecases.RemoveDocumentCommand{
		ExhibitionID: id,
		DocumentID:   documentID,
		Actor:        middleware.GetPrincipal(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// DownloadDocument handles GET /exhibitions/:id/documents/:documentId/download
// by counting the download and redirecting to the file.
func (h *Handler) DownloadDocument(c *gin.Context) {
	id, documentID, ok := documentParams(c)
	if !ok {
		return
	}
	url, err := h.downloadUC.Execute(c.Request.Context(), usecases.DownloadDocumentQuery{
		ExhibitionID: id,
		DocumentID:   documentID,
		Viewer:       middleware.GetPrincipal(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

func listingRef(c *gin.Context, kind lvo.Kind) (lifecycle.EntityRef, bool) {
	id, err := utils.ParseUintParam(c, "id", kind.String())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return lifecycle.EntityRef{}, false
	}
	ref, err := lifecycle.NewEntityRef(kind.String(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return lifecycle.EntityRef{}, false
	}
	return ref, true
}

func documentParams(c *gin.Context) (uint, uint, bool) {
	id, err := utils.ParseUintParam(c, "id", "exhibition")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	documentID, err := utils.ParseUintParam(c, "documentId", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	return id, documentID, true
}
