package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shishigami87/aimroutines/internal/handlers"
	"github.com/shishigami87/aimroutines/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)

	r.GET("/google", handlers.GoogleLogin)
	r.GET("/google/callback", handlers.GoogleCallback)
	r.GET("/github", handlers.GithubLogin)
	r.GET("/github/callback", handlers.GithubCallback)
}

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		users.GET("/me", middleware.AuthMiddleware(), handlers.Me)
	}
}
