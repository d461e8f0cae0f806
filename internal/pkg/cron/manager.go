package cron

import (
	"Trendlens/internal/api/config"
	"Trendlens/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine    *cron.Cron
	ingestJob *job.IngestJob
	schedule  string
}

func NewCronManager(ingestJob *job.IngestJob, cfg config.IngestConfig) *Manager {
	schedule := cfg.Schedule
	if schedule == "" {
		schedule = "@daily"
	}
	return &Manager{
		engine:    cron.New(cron.WithSeconds()),
		ingestJob: ingestJob,
		schedule:  schedule,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.schedule, s.ingestJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动", "schedule", s.schedule)
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
