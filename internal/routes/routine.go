package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shishigami87/aimroutines/internal/handlers"
	"github.com/shishigami87/aimroutines/internal/middleware"
)

func RegisterRoutineRoutes(r gin.IRouter) {
	routines := r.Group("/routines")
	{
		routines.GET("", middleware.OptionalAuthMiddleware(), handlers.ListRoutines)

		// Auth required for engagement
		protected := routines.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/:id/like", handlers.ToggleRoutineLike)
			protected.POST("/:id/benchmark", handlers.AddBenchmark)
			protected.DELETE("/:id/benchmark", handlers.RemoveBenchmark)

			// Submission is staff-only and rate limited
			protected.POST("", middleware.ModeratorOnly(), middleware.SubmitRateLimit(), handlers.CreateRoutine)
		}
	}
}
