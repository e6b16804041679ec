package api

import (
	"Snapwall/internal/api/middleware"
	"Snapwall/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		apiGroup.GET("/posts", group.PostHandler.ListPosts)
		apiGroup.POST("/upload", group.MediaHandler.Upload)

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.POST("/:post_id/like", group.PostActionHandler.LikePost)
			postGroup.GET("/:post_id/comments", group.PostActionHandler.GetComments)
			postGroup.POST("/:post_id/comment", group.PostActionHandler.CreateComment)
			postGroup.GET("/:post_id/download", group.PostHandler.Download)
		}
	}

	return r
}
