package handler

import (
	"context"
	"net/http"

	"Trendlens/internal/api/dto"
	"Trendlens/internal/job"
	"Trendlens/internal/pkg/logger"
	"Trendlens/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type IngestHandler struct {
	ingestJob *job.IngestJob
}

func NewIngestHandler(ingestJob *job.IngestJob) *IngestHandler {
	return &IngestHandler{
		ingestJob: ingestJob,
	}
}

// Run 手动触发一轮采集，后台执行，立即返回 202。
// 采集时长远超请求生命周期，这里换一个不随响应取消的 context。
func (s *IngestHandler) Run(c *gin.Context) {
	ctx := context.Background()
	if traceID, ok := c.Value(logger.TraceIDKey).(string); ok {
		ctx = context.WithValue(ctx, logger.TraceIDKey, traceID)
	}

	if err := s.ingestJob.TriggerAsync(ctx); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.Response{
		Code:    http.StatusAccepted,
		Message: "ingest run started",
		Data:    nil,
	})
}
