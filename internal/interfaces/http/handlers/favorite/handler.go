// Package favorite serves a user's favorite exhibitions and companies.
package favorite

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/favorite/usecases"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type toggleFavoriteUseCase interface {
	Add(ctx context.Context, cmd usecases.FavoriteCommand) (*usecases.FavoriteResult, error)
	Remove(ctx context.Context, cmd usecases.FavoriteCommand) (*usecases.FavoriteResult, error)
}

type listFavoritesUseCase interface {
	Execute(ctx context.Context, query usecases.ListFavoritesQuery) ([]usecases.FavoriteItem, error)
}

type Handler struct {
	toggleUC toggleFavoriteUseCase
	listUC   listFavoritesUseCase
	logger   logger.Interface
}

func NewHandler(toggleUC toggleFavoriteUseCase, listUC listFavoritesUseCase, logger logger.Interface) *Handler {
	return &Handler{
		toggleUC: toggleUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Add handles POST /targets/:kind/:id/favorite. Adding twice is not an
// error; the response reports the current state.
//
//	@Summary	Add to favorites
//	@Tags		favorites
//	@Produce	json
//	@Security	Bearer
//	@Param		kind	path		string	true	"exhibition or company"
//	@Param		id		path		int		true	"Entity ID"
//	@Success	200		{object}	utils.APIResponse{data=usecases.FavoriteResult}
//	@Failure	404		{object}	utils.APIResponse
//	@Router		/targets/{kind}/{id}/favorite [post]
func (h *Handler) Add(c *gin.Context) {
	h.toggle(c, h.toggleUC.Add)
}

// Remove handles DELETE /targets/:kind/:id/favorite
func (h *Handler) Remove(c *gin.Context) {
	h.toggle(c, h.toggleUC.Remove)
}

func (h *Handler) toggle(c *gin.Context, op func(context.Context, usecases.FavoriteCommand) (*usecases.FavoriteResult, error)) {
	target, err := common.ParseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := op(c.Request.Context(), usecases.FavoriteCommand{
		Actor:  middleware.GetPrincipal(c),
		Target: target,
		Meta:   common.RequestMeta(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /favorites with an optional kind filter.
func (h *Handler) List(c *gin.Context) {
	items, err := h.listUC.Execute(c.Request.Context(), usecases.ListFavoritesQuery{
		Actor: middleware.GetPrincipal(c),
		Kind:  c.Query("kind"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}
