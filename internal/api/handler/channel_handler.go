package handler

import (
	"Trendlens/internal/pkg/response"
	"Trendlens/internal/service"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	channelSvc service.ChannelService
}

func NewChannelHandler(channelSvc service.ChannelService) *ChannelHandler {
	return &ChannelHandler{
		channelSvc: channelSvc,
	}
}

// List 返回频道登记表
func (s *ChannelHandler) List(c *gin.Context) {
	records, err := s.channelSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}
