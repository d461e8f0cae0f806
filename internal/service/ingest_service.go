package service

import (
	"context"
	log "log/slog"
	"time"

	"Trendlens/internal/api/config"
	"Trendlens/internal/model"
	"Trendlens/internal/pkg/youtube"
	"Trendlens/internal/repository"
)

// Fetcher 上游拉取接口，测试时用假实现替换
type Fetcher interface {
	TrendingVideos(ctx context.Context, region string) ([]model.VideoRecord, error)
	ChannelsByID(ctx context.Context, ids []string) ([]model.ChannelRecord, error)
}

type IngestService interface {
	Run(ctx context.Context) error
}

type ingestServiceImpl struct {
	fetcher     Fetcher
	videoRepo   repository.VideoRepo
	channelRepo repository.ChannelRepo
	regions     []string
	regionDelay time.Duration
	chunkDelay  time.Duration
	now         func() time.Time
}

func NewIngestService(
	fetcher Fetcher,
	videoRepo repository.VideoRepo,
	channelRepo repository.ChannelRepo,
	regions []string,
	cfg config.IngestConfig,
) IngestService {
	return &ingestServiceImpl{
		fetcher:     fetcher,
		videoRepo:   videoRepo,
		channelRepo: channelRepo,
		regions:     regions,
		regionDelay: time.Duration(cfg.RegionDelayMs) * time.Millisecond,
		chunkDelay:  time.Duration(cfg.ChunkDelayMs) * time.Millisecond,
		now:         time.Now,
	}
}

// Run 执行一轮完整采集：逐国家写分区，然后补齐频道登记表。
// 可被任意外部调度器重复触发，同一天重复运行是幂等的。
// 单个国家或单个频道批次失败只记日志不中断，等下一轮自愈。
func (s *ingestServiceImpl) Run(ctx context.Context) error {
	day := s.now()

	seen := make(map[string]struct{})
	var channelIDs []string

	for _, region := range s.regions {
		records, err := s.fetcher.TrendingVideos(ctx, region)
		if err != nil {
			log.ErrorContext(ctx, "fetch trending failed, skipping region", "region", region, "err", err)
			continue
		}
		if len(records) == 0 {
			log.InfoContext(ctx, "no trending data, skipping region", "region", region)
			continue
		}

		if err := s.videoRepo.WritePartition(region, day, records); err != nil {
			log.ErrorContext(ctx, "write partition failed, skipping region", "region", region, "err", err)
			continue
		}
		log.InfoContext(ctx, "partition saved", "region", region, "videos", len(records))

		for _, r := range records {
			if _, ok := seen[r.ChannelID]; !ok && r.ChannelID != "" {
				seen[r.ChannelID] = struct{}{}
				channelIDs = append(channelIDs, r.ChannelID)
			}
		}

		// 固定间隔限速，避免触发配额突增
		time.Sleep(s.regionDelay)
	}

	return s.syncChannels(ctx, channelIDs)
}

// syncChannels 把本轮新出现的频道补进登记表，已登记的频道不再更新
func (s *ingestServiceImpl) syncChannels(ctx context.Context, ids []string) error {
	existing, err := s.channelRepo.Load()
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(existing))
	for _, ch := range existing {
		known[ch.ChannelID] = struct{}{}
	}

	var newIDs []string
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			newIDs = append(newIDs, id)
		}
	}

	if len(newIDs) == 0 {
		log.InfoContext(ctx, "channel registry already up to date", "registered", len(existing))
		return nil
	}
	log.InfoContext(ctx, "fetching new channels", "count", len(newIDs))

	var fetched []model.ChannelRecord
	for _, chunk := range chunkIDs(newIDs, youtube.MaxChannelBatch) {
		records, err := s.fetcher.ChannelsByID(ctx, chunk)
		if err != nil {
			// 失败的批次留给下一轮的差集重试
			log.ErrorContext(ctx, "fetch channel chunk failed, skipping", "size", len(chunk), "err", err)
			continue
		}
		fetched = append(fetched, records...)
		time.Sleep(s.chunkDelay)
	}

	if len(fetched) == 0 {
		return nil
	}

	merged := mergeRegistry(existing, fetched)
	if err := s.channelRepo.Overwrite(merged); err != nil {
		return err
	}
	log.InfoContext(ctx, "channel registry updated", "added", len(merged)-len(existing), "total", len(merged))

	return nil
}

// chunkIDs 按平台上限切分 ID 列表，保持原有顺序
func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// mergeRegistry 只追加不覆盖，保证 channel_id 在登记表里唯一
func mergeRegistry(existing []model.ChannelRecord, fetched []model.ChannelRecord) []model.ChannelRecord {
	known := make(map[string]struct{}, len(existing))
	for _, ch := range existing {
		known[ch.ChannelID] = struct{}{}
	}

	merged := existing
	for _, ch := range fetched {
		if _, ok := known[ch.ChannelID]; ok {
			continue
		}
		known[ch.ChannelID] = struct{}{}
		merged = append(merged, ch)
	}

	return merged
}
