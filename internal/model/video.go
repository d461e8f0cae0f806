package model

// VideoRecord 单条热门视频记录，对应分区 CSV 的一行。
// 同一视频可能同时出现在多个国家的榜单里，唯一键是 (video_id, country, 日期)。
type VideoRecord struct {
	VideoID          string `csv:"video_id" json:"video_id"`
	Country          string `csv:"country" json:"country"`
	FetchedAt        string `csv:"fetched_at" json:"fetched_at"`
	PublishedAt      string `csv:"published_at" json:"published_at"`
	Title            string `csv:"title" json:"title"`
	ChannelID        string `csv:"channel_id" json:"channel_id"`
	ChannelTitle     string `csv:"channel_title" json:"channel_title"`
	CategoryID       string `csv:"category_id" json:"category_id"`
	CategoryName     string `csv:"category_name" json:"category_name"`
	Tags             string `csv:"tags" json:"tags"`
	TagCount         int    `csv:"tag_count" json:"tag_count"`
	Duration         int    `csv:"duration" json:"duration"`
	DurationRaw      string `csv:"duration_raw" json:"duration_raw"`
	Definition       string `csv:"definition" json:"definition"`
	CaptionAvailable bool   `csv:"caption_available" json:"caption_available"`
	LicensedContent  bool   `csv:"licensed_content" json:"licensed_content"`
	Embeddable       bool   `csv:"embeddable" json:"embeddable"`
	MadeForKids      bool   `csv:"made_for_kids" json:"made_for_kids"`
	Views            int64  `csv:"views" json:"views"`
	Likes            int64  `csv:"likes" json:"likes"`
	Comments         int64  `csv:"comments" json:"comments"`

	// 以下两列由快照层在读取时补齐，不落盘。
	CountryName     string  `csv:"-" json:"country_name"`
	EngagementScore float64 `csv:"-" json:"engagement_score"`
}
