package server

import (
	"net/http"
	"time"

	"youtube-tools/domain/dto"
	httpHandler "youtube-tools/interfaces/http"
	"youtube-tools/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(videoHandler httpHandler.IVideoHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	// Allow all origins; callers are expected to restrict this per deployment.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "ok",
			Message: "YouTube Subtitle API is running",
		})
	})

	router.POST("/video-data", videoHandler.GetVideoData)
	router.POST("/video-captions", videoHandler.GetVideoCaptions)
	router.POST("/video-timestamps", videoHandler.GetVideoTimestamps)

	return router
}
