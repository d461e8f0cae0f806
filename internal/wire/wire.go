package wire

import (
	"Trendlens/internal/api"
	"Trendlens/internal/api/config"
	"Trendlens/internal/api/handler"
	"Trendlens/internal/job"
	"Trendlens/internal/pkg/cron"
	"Trendlens/internal/pkg/lookup"
	"Trendlens/internal/pkg/youtube"
	"Trendlens/internal/repository"
	"Trendlens/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router    *gin.Engine
	CronMgr   *cron.Manager
	IngestJob *job.IngestJob
}

// BuildApplication 手动依赖注入：映射表 -> 客户端 -> 仓库 -> 服务 -> Handler
func BuildApplication(cfg *config.Config) (*ApplicationContainer, error) {
	categories, err := lookup.LoadTable(cfg.Lookup.Categories, "Unknown")
	if err != nil {
		return nil, err
	}
	countries, err := lookup.LoadTable(cfg.Lookup.CountryNames, "")
	if err != nil {
		return nil, err
	}
	regions, err := lookup.LoadRegions(cfg.Lookup.Regions)
	if err != nil {
		return nil, err
	}

	client := youtube.NewClient(cfg.YouTube, categories)

	videoRepo := repository.NewVideoRepo(cfg.Data.Dir)
	channelRepo := repository.NewChannelRepo(cfg.Data.Dir)

	ingestService := service.NewIngestService(client, videoRepo, channelRepo, regions, cfg.Ingest)
	snapshotService, err := service.NewSnapshotService(videoRepo, countries, cfg.Snapshot)
	if err != nil {
		return nil, err
	}
	channelService := service.NewChannelService(channelRepo)

	ingestJob := job.NewIngestJob(ingestService)

	handlers := &api.HandlersGroup{
		SnapshotHandler: handler.NewSnapshotHandler(snapshotService),
		ChannelHandler:  handler.NewChannelHandler(channelService),
		IngestHandler:   handler.NewIngestHandler(ingestJob),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router:    router,
		CronMgr:   cron.NewCronManager(ingestJob, cfg.Ingest),
		IngestJob: ingestJob,
	}, nil
}

// BuildIngest 一次性采集入口的精简装配，供外部调度器触发的进程使用
func BuildIngest(cfg *config.Config) (service.IngestService, error) {
	categories, err := lookup.LoadTable(cfg.Lookup.Categories, "Unknown")
	if err != nil {
		return nil, err
	}
	regions, err := lookup.LoadRegions(cfg.Lookup.Regions)
	if err != nil {
		return nil, err
	}

	client := youtube.NewClient(cfg.YouTube, categories)
	videoRepo := repository.NewVideoRepo(cfg.Data.Dir)
	channelRepo := repository.NewChannelRepo(cfg.Data.Dir)

	return service.NewIngestService(client, videoRepo, channelRepo, regions, cfg.Ingest), nil
}
