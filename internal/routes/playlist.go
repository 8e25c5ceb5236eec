package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shishigami87/aimroutines/internal/handlers"
	"github.com/shishigami87/aimroutines/internal/middleware"
)

func RegisterPlaylistRoutes(r gin.IRouter) {
	playlists := r.Group("/playlists")
	{
		playlists.GET("", middleware.OptionalAuthMiddleware(), handlers.ListPlaylists)

		protected := playlists.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/:id/like", handlers.TogglePlaylistLike)
			protected.POST("", middleware.ModeratorOnly(), middleware.SubmitRateLimit(), handlers.CreatePlaylist)
		}
	}
}
