package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shishigami87/aimroutines/internal/handlers"
	"github.com/shishigami87/aimroutines/internal/middleware"
)

func RegisterResourceRoutes(r gin.IRouter) {
	resources := r.Group("/resources")
	{
		resources.GET("/crosshairs", handlers.ListCrosshairs)

		protected := resources.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.ModeratorOnly())
		{
			protected.POST("/crosshairs", handlers.CreateCrosshair)
		}
	}
}
