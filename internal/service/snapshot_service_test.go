package service

import (
	"context"
	"testing"
	"time"

	"Trendlens/internal/api/config"
	"Trendlens/internal/model"
	"Trendlens/internal/pkg/lookup"
	"Trendlens/internal/repository"
)

func testCountries() *lookup.Table {
	return lookup.NewTable(map[string]string{"IN": "India", "US": "United States"}, "")
}

func newTestSnapshot(t *testing.T, repo repository.VideoRepo) *snapshotServiceImpl {
	t.Helper()
	svc, err := NewSnapshotService(repo, testCountries(), config.SnapshotConfig{
		Cutover:         "06:10",
		Timezone:        "UTC",
		CacheTTLMinutes: 15,
	})
	if err != nil {
		t.Fatal(err)
	}
	return svc.(*snapshotServiceImpl)
}

func TestResolveDateCutover(t *testing.T) {
	svc := newTestSnapshot(t, repository.NewVideoRepo(t.TempDir()))

	cases := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2026, 8, 29, 6, 9, 0, 0, time.UTC), "2026-08-28"},
		{time.Date(2026, 8, 29, 6, 11, 0, 0, time.UTC), "2026-08-29"},
		{time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC), "2026-08-29"},
		{time.Date(2026, 8, 29, 0, 1, 0, 0, time.UTC), "2026-08-28"},
	}

	for _, c := range cases {
		if got := svc.ResolveDate(c.now).Format(repository.DateKey); got != c.want {
			t.Errorf("ResolveDate(%v) = %s, want %s", c.now, got, c.want)
		}
	}
}

func TestLatestEnrichment(t *testing.T) {
	dir := t.TempDir()
	repo := repository.NewVideoRepo(dir)
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	records := []model.VideoRecord{
		{VideoID: "v1", Country: "IN", Views: 1000, Likes: 90, Comments: 10},
		{VideoID: "v2", Country: "IN", Views: 0, Likes: 5, Comments: 5},
		{VideoID: "v3", Country: "ZZ", Views: 10, Likes: 1, Comments: 0},
	}
	if err := repo.WritePartition("IN", day, records); err != nil {
		t.Fatal(err)
	}

	svc := newTestSnapshot(t, repo)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }

	snap, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Date != "2026-08-29" || len(snap.Videos) != 3 {
		t.Fatalf("unexpected snapshot: date=%s videos=%d", snap.Date, len(snap.Videos))
	}

	if snap.Videos[0].CountryName != "India" {
		t.Errorf("CountryName = %q, want India", snap.Videos[0].CountryName)
	}
	if snap.Videos[0].EngagementScore != 0.1 {
		t.Errorf("EngagementScore = %v, want 0.1", snap.Videos[0].EngagementScore)
	}
	// views 为 0 时互动率取哨兵值 0，行保留在快照里
	if snap.Videos[1].EngagementScore != 0 {
		t.Errorf("zero-view EngagementScore = %v, want 0", snap.Videos[1].EngagementScore)
	}
	// 映射表没有的国家代码落到 fallback
	if snap.Videos[2].CountryName != "" {
		t.Errorf("unknown CountryName = %q, want fallback", snap.Videos[2].CountryName)
	}
}

func TestLatestEmptySnapshot(t *testing.T) {
	svc := newTestSnapshot(t, repository.NewVideoRepo(t.TempDir()))
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }

	snap, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("missing partitions must not be an error: %v", err)
	}
	if len(snap.Videos) != 0 {
		t.Errorf("got %d videos, want 0", len(snap.Videos))
	}
}

// countingRepo 记录磁盘扫描次数
type countingRepo struct {
	repository.VideoRepo
	reads int
}

func (s *countingRepo) ReadByDate(day time.Time) ([]model.VideoRecord, error) {
	s.reads++
	return s.VideoRepo.ReadByDate(day)
}

func TestLatestCaching(t *testing.T) {
	counting := &countingRepo{VideoRepo: repository.NewVideoRepo(t.TempDir())}
	svc := newTestSnapshot(t, counting)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }

	for i := 0; i < 5; i++ {
		if _, err := svc.Latest(context.Background()); err != nil {
			t.Fatal(err)
		}
	}

	if counting.reads != 1 {
		t.Errorf("disk scanned %d times within TTL, want 1", counting.reads)
	}
}

func TestEngagementScore(t *testing.T) {
	if got := engagementScore(90, 10, 1000); got != 0.1 {
		t.Errorf("engagementScore = %v, want 0.1", got)
	}
	if got := engagementScore(5, 5, 0); got != 0 {
		t.Errorf("zero views must yield sentinel 0, got %v", got)
	}
}
