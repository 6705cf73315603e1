package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/interfaces/http/handlers"
)

// BookmarkRouteConfig holds dependencies for bookmark routes.
type BookmarkRouteConfig struct {
	BookmarkHandler *handlers.BookmarkHandler
}

// SetupBookmarkRoutes configures place bookmark routes.
func SetupBookmarkRoutes(rg *gin.RouterGroup, cfg *BookmarkRouteConfig) {
	bookmarks := rg.Group("/bookmarks")
	{
		bookmarks.POST("", cfg.BookmarkHandler.CreateBookmark)
		bookmarks.GET("", cfg.BookmarkHandler.ListBookmarks)
		bookmarks.DELETE("/:id", cfg.BookmarkHandler.DeleteBookmark)
	}
}
