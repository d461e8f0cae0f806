package job

import (
	"context"
	log "log/slog"
	"sync/atomic"

	"Trendlens/internal/pkg/logger"
	"Trendlens/internal/service"

	"github.com/google/uuid"
)

// IngestJob 定时采集任务，也承接 API 的手动触发。
// running 标志保证同一时刻只有一轮采集在跑。
type IngestJob struct {
	ingestSvc service.IngestService
	running   atomic.Bool
}

func NewIngestJob(ingestSvc service.IngestService) *IngestJob {
	return &IngestJob{
		ingestSvc: ingestSvc,
	}
}

// Run 实现 cron.Job
func (s *IngestJob) Run() {
	traceID := "job-ingest-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if !s.running.CompareAndSwap(false, true) {
		log.WarnContext(ctx, "previous ingest run still in progress, skipping")
		return
	}
	defer s.running.Store(false)

	s.execute(ctx)
}

// TriggerAsync 后台执行一轮采集，已有任务在跑时返回 ErrIngestRunning
func (s *IngestJob) TriggerAsync(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return service.ErrIngestRunning
	}

	go func() {
		defer s.running.Store(false)
		s.execute(ctx)
	}()

	return nil
}

func (s *IngestJob) execute(ctx context.Context) {
	log.InfoContext(ctx, "ingest run starting")
	if err := s.ingestSvc.Run(ctx); err != nil {
		log.ErrorContext(ctx, "ingest run failed", "err", err)
		return
	}
	log.InfoContext(ctx, "ingest run finished")
}
