package cron

import log "log/slog"

// InitCron 注册采集任务并启动调度引擎
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	log.Info("Ingest cron started")
	return nil
}
