package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Trendlens/internal/api/config"
	"Trendlens/internal/api/handler"
	"Trendlens/internal/job"
	"Trendlens/internal/model"
	"Trendlens/internal/pkg/lookup"
	"Trendlens/internal/repository"
	"Trendlens/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type stubFetcher struct{}

func (stubFetcher) TrendingVideos(_ context.Context, _ string) ([]model.VideoRecord, error) {
	return nil, nil
}

func (stubFetcher) ChannelsByID(_ context.Context, _ []string) ([]model.ChannelRecord, error) {
	return nil, nil
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	videoRepo := repository.NewVideoRepo(dir)
	channelRepo := repository.NewChannelRepo(dir)

	countries := lookup.NewTable(map[string]string{"IN": "India", "US": "United States"}, "")
	snapshotSvc, err := service.NewSnapshotService(videoRepo, countries, config.SnapshotConfig{
		Cutover:         "06:10",
		Timezone:        "UTC",
		CacheTTLMinutes: 15,
	})
	if err != nil {
		t.Fatal(err)
	}

	// 往"最新快照"会结算到的那一天写分区
	day := snapshotSvc.ResolveDate(time.Now())
	records := []model.VideoRecord{
		{VideoID: "v1", Country: "IN", CategoryName: "Music", ChannelTitle: "Alpha", Views: 100, Likes: 10, Comments: 5},
		{VideoID: "v2", Country: "IN", CategoryName: "Gaming", ChannelTitle: "Beta", Views: 500, Likes: 50, Comments: 25},
	}
	if err := videoRepo.WritePartition("IN", day, records); err != nil {
		t.Fatal(err)
	}

	ingestSvc := service.NewIngestService(stubFetcher{}, videoRepo, channelRepo, []string{"IN"}, config.IngestConfig{})

	handlers := &HandlersGroup{
		SnapshotHandler: handler.NewSnapshotHandler(snapshotSvc),
		ChannelHandler:  handler.NewChannelHandler(service.NewChannelService(channelRepo)),
		IngestHandler:   handler.NewIngestHandler(job.NewIngestJob(ingestSvc)),
	}

	return SetupRouter(handlers)
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestGetSnapshotInfo(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/snapshot")
	if w.Code != http.StatusOK || env.Code != 200 {
		t.Fatalf("status=%d code=%d", w.Code, env.Code)
	}

	var info struct {
		Videos    int      `json:"videos"`
		Countries []string `json:"countries"`
	}
	if err := json.Unmarshal(env.Data, &info); err != nil {
		t.Fatal(err)
	}
	if info.Videos != 2 || len(info.Countries) != 1 || info.Countries[0] != "India" {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestGetTopVideos(t *testing.T) {
	router := newTestRouter(t)

	_, env := doRequest(t, router, http.MethodGet, "/api/snapshot/top?metric=views&n=1")
	if env.Code != 200 {
		t.Fatalf("code=%d message=%s", env.Code, env.Message)
	}

	var videos []struct {
		VideoID string `json:"video_id"`
		URL     string `json:"url"`
	}
	if err := json.Unmarshal(env.Data, &videos); err != nil {
		t.Fatal(err)
	}
	if len(videos) != 1 || videos[0].VideoID != "v2" {
		t.Errorf("unexpected top videos: %+v", videos)
	}
	if videos[0].URL != "https://www.youtube.com/watch?v=v2" {
		t.Errorf("unexpected url: %q", videos[0].URL)
	}
}

func TestGetTopVideosUnknownMetric(t *testing.T) {
	router := newTestRouter(t)

	_, env := doRequest(t, router, http.MethodGet, "/api/snapshot/top?metric=view_count")
	if env.Code != service.BadRequest {
		t.Errorf("code = %d, want %d", env.Code, service.BadRequest)
	}
}

func TestGetSummaryUnknownCountry(t *testing.T) {
	router := newTestRouter(t)

	_, env := doRequest(t, router, http.MethodGet, "/api/snapshot/summary?country=Nowhere")
	if env.Code != service.NotFound {
		t.Errorf("code = %d, want %d", env.Code, service.NotFound)
	}
}

func TestGetChannelsEmptyRegistry(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/channels")
	if w.Code != http.StatusOK || env.Code != 200 {
		t.Fatalf("status=%d code=%d", w.Code, env.Code)
	}

	var records []model.ChannelRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestTriggerIngestRun(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodPost, "/api/ingest/run")
	if w.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", w.Code)
	}
}
