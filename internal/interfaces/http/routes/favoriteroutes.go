package routes

import (
	"github.com/gin-gonic/gin"

	"toolvault/internal/interfaces/http/handlers"
	"toolvault/internal/interfaces/http/middleware"
)

// FavoriteRouteConfig holds dependencies for favorite routes.
type FavoriteRouteConfig struct {
	FavoriteHandler *handlers.FavoriteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupFavoriteRoutes configures the bookmark routes. All of them require
// an authenticated caller.
func SetupFavoriteRoutes(api *gin.RouterGroup, cfg *FavoriteRouteConfig) {
	favorites := api.Group("/user/favorites", cfg.AuthMiddleware.RequireAuth())
	{
		favorites.GET("", cfg.FavoriteHandler.ListFavorites)
		favorites.POST("", cfg.FavoriteHandler.AddFavorite)
		favorites.DELETE("/:toolId", cfg.FavoriteHandler.RemoveFavorite)
	}
}
