package main

import (
	"context"
	log "log/slog"
	"os"

	"Trendlens/internal/api/config"
	"Trendlens/internal/pkg/logger"
	"Trendlens/internal/wire"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// 一次性采集入口，交给任意外部调度器（cron、GitHub Actions）按天触发。
// 单个国家或频道批次的失败在服务内部消化，只有配置错误会让进程非零退出。
func main() {
	_ = godotenv.Load()

	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}

	logger.InitLogger()

	ingestSvc, err := wire.BuildIngest(config.Cfg)
	if err != nil {
		log.Error("Fatal error: failed to create ingest service", "err", err)
		os.Exit(1)
	}

	traceID := "ingest-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	log.InfoContext(ctx, "ingest run starting")
	if err := ingestSvc.Run(ctx); err != nil {
		log.ErrorContext(ctx, "ingest run failed", "err", err)
		os.Exit(1)
	}
	log.InfoContext(ctx, "ingest run finished")
}
