package service

import (
	"sort"

	"Trendlens/internal/model"
)

// 聚合层：对快照行集的纯函数计算，空输入一律返回零值结果。
// 涉及排序的地方都用稳定排序，平局保持扫描顺序（先出现者优先）。

// VideoHighlight 按某指标选出的单条视频摘要
type VideoHighlight struct {
	VideoID      string  `json:"video_id"`
	Title        string  `json:"title"`
	ChannelTitle string  `json:"channel_title"`
	Value        float64 `json:"value"`
}

// SnapshotSummary 单个快照（或其过滤子集）的汇总指标
type SnapshotSummary struct {
	TotalVideos   int     `json:"total_videos"`
	TotalViews    int64   `json:"total_views"`
	TotalLikes    int64   `json:"total_likes"`
	TotalComments int64   `json:"total_comments"`
	AvgDuration   float64 `json:"average_duration"`
	AvgEngagement float64 `json:"average_engagement_score"`

	MostViewed    *VideoHighlight `json:"most_viewed"`
	MostLiked     *VideoHighlight `json:"most_liked"`
	MostCommented *VideoHighlight `json:"most_commented"`
	MostEngaged   *VideoHighlight `json:"most_engaged"`
	Longest       *VideoHighlight `json:"longest"`

	TopCreator          string `json:"top_creator"`
	TopCreatorChannelID string `json:"top_creator_channel_id"`
	TopCreatorVideos    int    `json:"top_creator_videos"`
}

// GroupSummary 按国家或分类分组后的一行
type GroupSummary struct {
	Key           string  `json:"key"`
	Videos        int     `json:"videos"`
	Views         int64   `json:"views"`
	Likes         int64   `json:"likes"`
	Comments      int64   `json:"comments"`
	TagCount      int64   `json:"tag_count"`
	AvgViews      float64 `json:"average_views"`
	AvgDuration   float64 `json:"average_duration"`
	AvgEngagement float64 `json:"average_engagement_score"`
}

// metricValue 按指标名取行的数值，指标名与 CSV 列名保持一致
func metricValue(r *model.VideoRecord, metric string) (float64, bool) {
	switch metric {
	case "views":
		return float64(r.Views), true
	case "likes":
		return float64(r.Likes), true
	case "comments":
		return float64(r.Comments), true
	case "engagement_score":
		return r.EngagementScore, true
	case "duration":
		return float64(r.Duration), true
	case "tag_count":
		return float64(r.TagCount), true
	default:
		return 0, false
	}
}

// TopN 按指标取前 n 行，稳定排序，平局先出现者优先
func TopN(rows []model.VideoRecord, metric string, n int) ([]model.VideoRecord, error) {
	if _, ok := metricValue(&model.VideoRecord{}, metric); !ok {
		return nil, ErrMetricUnknown
	}
	if n <= 0 || len(rows) == 0 {
		return []model.VideoRecord{}, nil
	}

	sorted := make([]model.VideoRecord, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		vi, _ := metricValue(&sorted[i], metric)
		vj, _ := metricValue(&sorted[j], metric)
		return vi > vj
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n], nil
}

func top1(rows []model.VideoRecord, metric string) *VideoHighlight {
	top, err := TopN(rows, metric, 1)
	if err != nil || len(top) == 0 {
		return nil
	}
	value, _ := metricValue(&top[0], metric)
	return &VideoHighlight{
		VideoID:      top[0].VideoID,
		Title:        top[0].Title,
		ChannelTitle: top[0].ChannelTitle,
		Value:        value,
	}
}

// Summary 计算汇总指标与各维度的头名，空输入返回全零结果
func Summary(rows []model.VideoRecord) SnapshotSummary {
	summary := SnapshotSummary{TotalVideos: len(rows)}
	if len(rows) == 0 {
		return summary
	}

	var durationSum, engagementSum float64
	for i := range rows {
		summary.TotalViews += rows[i].Views
		summary.TotalLikes += rows[i].Likes
		summary.TotalComments += rows[i].Comments
		durationSum += float64(rows[i].Duration)
		engagementSum += rows[i].EngagementScore
	}
	summary.AvgDuration = durationSum / float64(len(rows))
	summary.AvgEngagement = engagementSum / float64(len(rows))

	summary.MostViewed = top1(rows, "views")
	summary.MostLiked = top1(rows, "likes")
	summary.MostCommented = top1(rows, "comments")
	summary.MostEngaged = top1(rows, "engagement_score")
	summary.Longest = top1(rows, "duration")

	summary.TopCreator, summary.TopCreatorChannelID, summary.TopCreatorVideos = topCreator(rows)

	return summary
}

// topCreator 出现次数最多的频道（众数），平局先出现者优先
func topCreator(rows []model.VideoRecord) (title, channelID string, count int) {
	counts := make(map[string]int)
	ids := make(map[string]string)
	var order []string

	for i := range rows {
		key := rows[i].ChannelTitle
		if _, ok := counts[key]; !ok {
			order = append(order, key)
			ids[key] = rows[i].ChannelID
		}
		counts[key]++
	}

	for _, key := range order {
		if counts[key] > count {
			title, channelID, count = key, ids[key], counts[key]
		}
	}
	return title, channelID, count
}

func groupBy(rows []model.VideoRecord, key func(*model.VideoRecord) string) []GroupSummary {
	groups := make(map[string]*GroupSummary)
	durations := make(map[string]float64)
	engagements := make(map[string]float64)
	var order []string

	for i := range rows {
		k := key(&rows[i])
		g, ok := groups[k]
		if !ok {
			g = &GroupSummary{Key: k}
			groups[k] = g
			order = append(order, k)
		}
		g.Videos++
		g.Views += rows[i].Views
		g.Likes += rows[i].Likes
		g.Comments += rows[i].Comments
		g.TagCount += int64(rows[i].TagCount)
		durations[k] += float64(rows[i].Duration)
		engagements[k] += rows[i].EngagementScore
	}

	result := make([]GroupSummary, 0, len(order))
	for _, k := range order {
		g := groups[k]
		g.AvgViews = float64(g.Views) / float64(g.Videos)
		g.AvgDuration = durations[k] / float64(g.Videos)
		g.AvgEngagement = engagements[k] / float64(g.Videos)
		result = append(result, *g)
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// ByCountry 按国家名分组汇总，按组名排序
func ByCountry(rows []model.VideoRecord) []GroupSummary {
	return groupBy(rows, func(r *model.VideoRecord) string { return r.CountryName })
}

// ByCategory 按分类名分组汇总，按组名排序
func ByCategory(rows []model.VideoRecord) []GroupSummary {
	return groupBy(rows, func(r *model.VideoRecord) string { return r.CategoryName })
}

// FilterByCountry 取某个国家的子集，国家名为快照里的展示名
func FilterByCountry(rows []model.VideoRecord, countryName string) []model.VideoRecord {
	filtered := make([]model.VideoRecord, 0)
	for i := range rows {
		if rows[i].CountryName == countryName {
			filtered = append(filtered, rows[i])
		}
	}
	return filtered
}

// FilterByCategory 取某个分类的子集
func FilterByCategory(rows []model.VideoRecord, categoryName string) []model.VideoRecord {
	filtered := make([]model.VideoRecord, 0)
	for i := range rows {
		if rows[i].CategoryName == categoryName {
			filtered = append(filtered, rows[i])
		}
	}
	return filtered
}

// UniqueByVideoID 跨国家去重，同一视频保留最先扫描到的那行
func UniqueByVideoID(rows []model.VideoRecord) []model.VideoRecord {
	seen := make(map[string]struct{}, len(rows))
	unique := make([]model.VideoRecord, 0, len(rows))
	for i := range rows {
		if _, ok := seen[rows[i].VideoID]; ok {
			continue
		}
		seen[rows[i].VideoID] = struct{}{}
		unique = append(unique, rows[i])
	}
	return unique
}
