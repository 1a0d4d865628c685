package routes

import (
	"github.com/gin-gonic/gin"

	"servio_backend/internal/handlers"
)

// RegisterRoutes registers the whole HTTP API under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.OfferHandler.RegisterRoutes(api)
		appHandlers.OrderHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.BaseInfoHandler.RegisterRoutes(api)
	}
}
