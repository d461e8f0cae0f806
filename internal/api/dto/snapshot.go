package dto

// SnapshotInfoDTO 快照概况
type SnapshotInfoDTO struct {
	Date       string   `json:"date"`
	Videos     int      `json:"videos"`
	Countries  []string `json:"countries"`
	Categories []string `json:"categories"`
}

// SnapshotFilterQuery 按国家/分类过滤的查询参数，二者都可为空
type SnapshotFilterQuery struct {
	Country  string `form:"country"`
	Category string `form:"category"`
}

// TopVideosQuery 榜单查询参数
type TopVideosQuery struct {
	Metric   string `form:"metric,default=views"`
	N        int    `form:"n,default=10" binding:"omitempty,min=1,max=100"`
	Country  string `form:"country"`
	Category string `form:"category"`
}

// VideoDTO 榜单里的一条视频
type VideoDTO struct {
	VideoID         string  `json:"video_id"`
	Title           string  `json:"title"`
	ChannelTitle    string  `json:"channel_title"`
	CountryName     string  `json:"country_name"`
	CategoryName    string  `json:"category_name"`
	Views           int64   `json:"views"`
	Likes           int64   `json:"likes"`
	Comments        int64   `json:"comments"`
	Duration        int     `json:"duration"`
	TagCount        int     `json:"tag_count"`
	EngagementScore float64 `json:"engagement_score"`
	URL             string  `json:"url"`
}
