package model

// ChannelRecord 频道登记表中的一行，channel_id 全表唯一。
// 频道首次在任意国家上榜时写入，之后不再更新（接受元数据过期）。
type ChannelRecord struct {
	ChannelID       string `csv:"channel_id" json:"channel_id"`
	Title           string `csv:"title" json:"title"`
	Description     string `csv:"description" json:"description"`
	PublishedAt     string `csv:"published_at" json:"published_at"`
	Thumbnail       string `csv:"thumbnails" json:"thumbnails"`
	CustomURL       string `csv:"custom_url" json:"custom_url"`
	DefaultLanguage string `csv:"default_language" json:"default_language"`
	Country         string `csv:"country" json:"country"`
	SubscriberCount int64  `csv:"subscriber_count" json:"subscriber_count"`
	VideoCount      int64  `csv:"video_count" json:"video_count"`
	ViewCount       int64  `csv:"view_count" json:"view_count"`
	BannerURL       string `csv:"banner_url" json:"banner_url"`
	Keywords        string `csv:"keywords" json:"keywords"`
	Topics          string `csv:"topics" json:"topics"`
	MadeForKids     bool   `csv:"made_for_kids" json:"made_for_kids"`
	PrivacyStatus   string `csv:"privacy_status" json:"privacy_status"`
}
