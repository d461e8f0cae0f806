package api

import "Trendlens/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	SnapshotHandler *handler.SnapshotHandler
	ChannelHandler  *handler.ChannelHandler
	IngestHandler   *handler.IngestHandler
}
