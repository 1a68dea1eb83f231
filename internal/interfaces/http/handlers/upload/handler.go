// Package upload accepts listing images and documents and hands them to
// the storage backend. Only the returned reference is kept on the listing.
package upload

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

// Size limits of a single upload.
const (
	MaxImageBytes    = 5 << 20
	MaxDocumentBytes = 20 << 20
)

type fileClass int

const (
	classImage fileClass = iota
	classDocument
)

var folders = map[string]fileClass{
	"logos":     classImage,
	"banners":   classImage,
	"gallery":   classImage,
	"documents": classDocument,
}

type objectStore interface {
	Put(ctx context.Context, ref string, body io.Reader, size int64, contentType string) error
	URL(ref string) string
}

// RefFunc names a new object. It is storage.NewRef in production.
type RefFunc func(folder, ext string) string

// ExtFunc maps an accepted content type to a file extension.
type ExtFunc func(contentType string) (string, bool)

type Handler struct {
	store    objectStore
	newRef   RefFunc
	imageExt ExtFunc
	docExt   ExtFunc
	logger   logger.Interface
}

func NewHandler(store objectStore, newRef RefFunc, imageExt, docExt ExtFunc, logger logger.Interface) *Handler {
	return &Handler{store: store, newRef: newRef, imageExt: imageExt, docExt: docExt, logger: logger}
}

type UploadResponse struct {
	Ref  string `json:"ref"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Upload handles POST /uploads/:folder with a multipart "file" field.
//
//	@Summary	Upload an image or a document
//	@Tags		uploads
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	Bearer
//	@Param		folder	path		string	true	"logos, banners, gallery or documents"
//	@Param		file	formData	file	true	"File"
//	@Success	201		{object}	utils.APIResponse{data=UploadResponse}
//	@Failure	400		{object}	utils.APIResponse
//	@Router		/uploads/{folder} [post]
func (h *Handler) Upload(c *gin.Context) {
	folder := c.Param("folder")
	class, ok := folders[folder]
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("unknown upload folder", folder))
		return
	}
	limit, extFor, kind := int64(MaxImageBytes), h.imageExt, "image"
	if class == classDocument {
		limit, extFor, kind = MaxDocumentBytes, h.docExt, "document"
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required", err.Error()))
		return
	}
	if fh.Size > limit {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file too large", fmt.Sprintf("maximum is %d MB", limit>>20)))
		return
	}

	contentType := fh.Header.Get("Content-Type")
	ext, ok := extFor(contentType)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("unsupported "+kind+" type", contentType))
		return
	}

	f, err := fh.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to read upload"))
		return
	}
	defer f.Close()

	ref := h.newRef(folder, ext)
	if err := h.store.Put(c.Request.Context(), ref, f, fh.Size, contentType); err != nil {
		h.logger.Errorw("failed to store upload",
			"ref", ref,
			"user_id", middleware.GetPrincipal(c).UserID,
			"error", err,
		)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to store file"))
		return
	}

	h.logger.Infow("file uploaded", "ref", ref, "size", fh.Size)
	utils.CreatedResponse(c, UploadResponse{Ref: ref, URL: h.store.URL(ref), Size: fh.Size}, "File uploaded")
}
