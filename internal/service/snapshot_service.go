package service

import (
	"context"
	"fmt"
	log "log/slog"
	"sync"
	"time"

	"Trendlens/internal/api/config"
	"Trendlens/internal/model"
	"Trendlens/internal/pkg/lookup"
	"Trendlens/internal/repository"

	"golang.org/x/sync/singleflight"
)

type SnapshotService interface {
	Latest(ctx context.Context) (*model.Snapshot, error)
	ResolveDate(now time.Time) time.Time
}

type snapshotServiceImpl struct {
	videoRepo repository.VideoRepo
	countries *lookup.Table
	cutover   time.Duration
	loc       *time.Location
	ttl       time.Duration
	now       func() time.Time

	group    singleflight.Group
	mu       sync.Mutex
	cached   *model.Snapshot
	cachedAt time.Time
}

func NewSnapshotService(
	videoRepo repository.VideoRepo,
	countries *lookup.Table,
	cfg config.SnapshotConfig,
) (SnapshotService, error) {
	cutoverClock, err := time.Parse("15:04", cfg.Cutover)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot cutover %q: %w", cfg.Cutover, err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot timezone %q: %w", cfg.Timezone, err)
	}

	return &snapshotServiceImpl{
		videoRepo: videoRepo,
		countries: countries,
		cutover:   time.Duration(cutoverClock.Hour())*time.Hour + time.Duration(cutoverClock.Minute())*time.Minute,
		loc:       loc,
		ttl:       time.Duration(cfg.CacheTTLMinutes) * time.Minute,
		now:       time.Now,
	}, nil
}

// ResolveDate 结算"最新快照"属于哪个日历日。
// 截止时刻之前当天的采集可能尚未完成，此时退回昨天的完整快照。
func (s *snapshotServiceImpl) ResolveDate(now time.Time) time.Time {
	local := now.In(s.loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	if local.Sub(midnight) > s.cutover {
		return midnight
	}
	return midnight.AddDate(0, 0, -1)
}

// Latest 返回最新快照，带 TTL 缓存；并发请求由 singleflight 合并成一次磁盘扫描。
// 目标日期下没有任何分区时返回空快照，不报错。
func (s *snapshotServiceImpl) Latest(ctx context.Context) (*model.Snapshot, error) {
	s.mu.Lock()
	if s.cached != nil && s.now().Sub(s.cachedAt) < s.ttl {
		snap := s.cached
		s.mu.Unlock()
		return snap, nil
	}
	s.mu.Unlock()

	result, err, _ := s.group.Do("latest", func() (interface{}, error) {
		snap, err := s.load(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cached = snap
		s.cachedAt = s.now()
		s.mu.Unlock()
		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*model.Snapshot), nil
}

func (s *snapshotServiceImpl) load(ctx context.Context) (*model.Snapshot, error) {
	day := s.ResolveDate(s.now())

	rows, err := s.videoRepo.ReadByDate(day)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].CountryName = s.countries.Resolve(rows[i].Country)
		rows[i].EngagementScore = engagementScore(rows[i].Likes, rows[i].Comments, rows[i].Views)
	}

	snap := &model.Snapshot{
		Date:   day.Format(repository.DateKey),
		Videos: rows,
	}
	log.InfoContext(ctx, "snapshot loaded", "date", snap.Date, "videos", len(rows))

	return snap, nil
}

// engagementScore 互动率 (likes+comments)/views。
// views 为 0 时除法无定义，约定哨兵值 0，该行仍计入总量统计。
func engagementScore(likes, comments, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(likes+comments) / float64(views)
}
