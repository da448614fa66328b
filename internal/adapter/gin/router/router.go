package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"user-post-service/internal/adapter/gin/docs"
	"user-post-service/internal/adapter/gin/handler"
	"user-post-service/internal/adapter/gin/middleware"
	"user-post-service/pkg/logger"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "user-post-service"

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	userHandler *handler.UserHandler,
	postHandler *handler.PostHandler,
	rateLimiter *middleware.RateLimiter,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(logger.RequestIDMiddleware())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(rateLimiter.Handler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": ServiceName,
		})
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", docs.OpenAPI)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/openapi.json"),
	)))

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.GET("/:id/posts", postHandler.ListUserPosts)
	}

	posts := router.Group("/posts")
	{
		posts.POST("", postHandler.CreatePost)
		posts.GET("", postHandler.ListPosts)
		posts.GET("/:id", postHandler.GetPost)
		posts.PATCH("/:id", postHandler.UpdatePost)
		posts.DELETE("/:id", postHandler.DeletePost)
	}

	return router
}
