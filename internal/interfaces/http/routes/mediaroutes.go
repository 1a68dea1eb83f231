package routes

import (
	"github.com/gin-gonic/gin"

	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	mediaHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/media"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
)

// MediaRouteConfig holds dependencies for listing images and documents.
type MediaRouteConfig struct {
	MediaHandler   *mediaHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupMediaRoutes configures exhibition images and documents and company
// galleries. Reads follow the visibility of the listing.
func SetupMediaRoutes(engine *gin.Engine, cfg *MediaRouteConfig) {
	h := cfg.MediaHandler
	optional := cfg.AuthMiddleware.OptionalAuth()
	required := cfg.AuthMiddleware.RequireAuth()

	exhibitions := engine.Group("/exhibitions/:id")
	{
		exhibitions.GET("/images", optional, h.ListImages(lvo.KindExhibition))
		exhibitions.POST("/images", required, h.AddImage(lvo.KindExhibition))
		exhibitions.DELETE("/images/:imageId", required, h.RemoveImage(lvo.KindExhibition))

		exhibitions.GET("/documents", optional, h.ListDocuments)
		exhibitions.GET("/documents/:documentId/download", optional, h.DownloadDocument)
		exhibitions.POST("/documents", required, h.AddDocument)
		exhibitions.DELETE("/documents/:documentId", required, h.RemoveDocument)
	}

	companies := engine.Group("/companies/:id")
	{
		companies.GET("/gallery", optional, h.ListImages(lvo.KindCompany))
		companies.POST("/gallery", required, h.AddImage(lvo.KindCompany))
		companies.DELETE("/gallery/:imageId", required, h.RemoveImage(lvo.KindCompany))
	}
}
