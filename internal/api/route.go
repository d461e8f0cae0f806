package api

import (
	"net/http"

	"Trendlens/internal/api/middleware"
	"Trendlens/internal/pkg/logger"

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

		snapshotGroup := apiGroup.Group("/snapshot")
		{
			snapshotGroup.GET("", group.SnapshotHandler.GetInfo)
			snapshotGroup.GET("/summary", group.SnapshotHandler.GetSummary)
			snapshotGroup.GET("/top", group.SnapshotHandler.GetTop)
			snapshotGroup.GET("/countries", group.SnapshotHandler.GetCountries)
			snapshotGroup.GET("/categories", group.SnapshotHandler.GetCategories)
		}

		apiGroup.GET("/channels", group.ChannelHandler.List)

		apiGroup.POST("/ingest/run", group.IngestHandler.Run)
	}

	return r
}
