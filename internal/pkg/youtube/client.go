// Package youtube 封装对 YouTube Data API v3 的只读调用。
package youtube

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"Trendlens/internal/api/config"
	"Trendlens/internal/model"
	"Trendlens/internal/pkg/isodur"
	"Trendlens/internal/pkg/lookup"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// pageSize 平台单次调用上限，不做翻页，第一页之后的结果直接放弃
const pageSize = 50

// MaxChannelBatch 单次频道查询允许的 ID 数上限，超出由调用方负责分块
const MaxChannelBatch = 50

// Client YouTube Data API 客户端
type Client struct {
	http       *resty.Client
	apiKey     string
	categories *lookup.Table
}

// NewClient 创建客户端，categories 用于在拉取时就把分类码翻译成名称
func NewClient(cfg config.YouTubeConfig, categories *lookup.Table) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:       client,
		apiKey:     cfg.APIKey,
		categories: categories,
	}
}

// TrendingVideos 拉取单个国家的热门榜单并摊平成记录。
// 一次网络调用，返回顺序即榜单名次；传输或解析失败交由调用方决定是否继续。
func (s *Client) TrendingVideos(ctx context.Context, region string) ([]model.VideoRecord, error) {
	result := &videoListResponse{}
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet,statistics,contentDetails,status",
			"chart":      "mostPopular",
			"regionCode": region,
			"maxResults": strconv.Itoa(pageSize),
			"key":        s.apiKey,
		}).
		SetResult(result).
		Get("/videos")
	if err != nil {
		return nil, fmt.Errorf("fetch trending for %s: %w", region, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch trending for %s: status %d", region, resp.StatusCode())
	}

	fetchedAt := time.Now().UTC().Format(time.RFC3339)

	records := make([]model.VideoRecord, 0, len(result.Items))
	for _, item := range result.Items {
		records = append(records, model.VideoRecord{
			VideoID:          item.ID,
			Country:          region,
			FetchedAt:        fetchedAt,
			PublishedAt:      item.Snippet.PublishedAt,
			Title:            item.Snippet.Title,
			ChannelID:        item.Snippet.ChannelID,
			ChannelTitle:     item.Snippet.ChannelTitle,
			CategoryID:       item.Snippet.CategoryID,
			CategoryName:     s.categories.Resolve(item.Snippet.CategoryID),
			Tags:             strings.Join(item.Snippet.Tags, ", "),
			TagCount:         len(item.Snippet.Tags),
			Duration:         isodur.Seconds(item.ContentDetails.Duration),
			DurationRaw:      item.ContentDetails.Duration,
			Definition:       item.ContentDetails.Definition,
			CaptionAvailable: item.ContentDetails.Caption == "true",
			LicensedContent:  item.ContentDetails.LicensedContent,
			Embeddable:       item.Status.Embeddable,
			MadeForKids:      item.Status.MadeForKids,
			Views:            parseCount(item.Statistics.ViewCount),
			Likes:            parseCount(item.Statistics.LikeCount),
			Comments:         parseCount(item.Statistics.CommentCount),
		})
	}

	return records, nil
}

// ChannelsByID 批量拉取频道元数据，单批最多 MaxChannelBatch 个 ID
func (s *Client) ChannelsByID(ctx context.Context, ids []string) ([]model.ChannelRecord, error) {
	if len(ids) > MaxChannelBatch {
		return nil, fmt.Errorf("channel batch too large: %d > %d", len(ids), MaxChannelBatch)
	}
	if len(ids) == 0 {
		return []model.ChannelRecord{}, nil
	}

	result := &channelListResponse{}
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "snippet,statistics,brandingSettings,status,topicDetails",
			"id":   strings.Join(ids, ","),
			"key":  s.apiKey,
		}).
		SetResult(result).
		Get("/channels")
	if err != nil {
		return nil, fmt.Errorf("fetch channels: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch channels: status %d", resp.StatusCode())
	}

	records := make([]model.ChannelRecord, 0, len(result.Items))
	for _, item := range result.Items {
		records = append(records, model.ChannelRecord{
			ChannelID:       item.ID,
			Title:           item.Snippet.Title,
			Description:     item.Snippet.Description,
			PublishedAt:     item.Snippet.PublishedAt,
			Thumbnail:       item.Snippet.Thumbnails.High.URL,
			CustomURL:       item.Snippet.CustomURL,
			DefaultLanguage: item.Snippet.DefaultLanguage,
			Country:         item.Snippet.Country,
			SubscriberCount: parseCount(item.Statistics.SubscriberCount),
			VideoCount:      parseCount(item.Statistics.VideoCount),
			ViewCount:       parseCount(item.Statistics.ViewCount),
			BannerURL:       item.BrandingSettings.Image.BannerExternalURL,
			Keywords:        item.BrandingSettings.Channel.Keywords,
			Topics:          cleanTopics(item.TopicDetails.TopicCategories),
			MadeForKids:     item.Status.MadeForKids,
			PrivacyStatus:   item.Status.PrivacyStatus,
		})
	}

	return records, nil
}

// parseCount 统计值在响应里是字符串，计数被关闭时字段缺失，一律按 0 处理
func parseCount(raw string) int64 {
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// cleanTopics 把 topicCategories 里的 Wikipedia URL 裁剪成裸标签
func cleanTopics(urls []string) string {
	labels := make([]string, 0, len(urls))
	for _, u := range urls {
		parts := strings.Split(u, "/")
		labels = append(labels, parts[len(parts)-1])
	}
	return strings.Join(labels, ", ")
}
