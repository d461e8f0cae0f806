package youtube

// Data API v3 的响应结构，仅保留用到的字段

type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		PublishedAt  string   `json:"publishedAt"`
		ChannelID    string   `json:"channelId"`
		Title        string   `json:"title"`
		ChannelTitle string   `json:"channelTitle"`
		CategoryID   string   `json:"categoryId"`
		Tags         []string `json:"tags"`
	} `json:"snippet"`
	ContentDetails struct {
		Duration        string `json:"duration"`
		Definition      string `json:"definition"`
		Caption         string `json:"caption"`
		LicensedContent bool   `json:"licensedContent"`
	} `json:"contentDetails"`
	Status struct {
		Embeddable  bool `json:"embeddable"`
		MadeForKids bool `json:"madeForKids"`
	} `json:"status"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
}

type channelListResponse struct {
	Items []channelItem `json:"items"`
}

type channelItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		PublishedAt     string `json:"publishedAt"`
		CustomURL       string `json:"customUrl"`
		DefaultLanguage string `json:"defaultLanguage"`
		Country         string `json:"country"`
		Thumbnails      struct {
			High struct {
				URL string `json:"url"`
			} `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		SubscriberCount string `json:"subscriberCount"`
		VideoCount      string `json:"videoCount"`
		ViewCount       string `json:"viewCount"`
	} `json:"statistics"`
	BrandingSettings struct {
		Channel struct {
			Keywords string `json:"keywords"`
		} `json:"channel"`
		Image struct {
			BannerExternalURL string `json:"bannerExternalUrl"`
		} `json:"image"`
	} `json:"brandingSettings"`
	Status struct {
		PrivacyStatus string `json:"privacyStatus"`
		MadeForKids   bool   `json:"madeForKids"`
	} `json:"status"`
	TopicDetails struct {
		TopicCategories []string `json:"topicCategories"`
	} `json:"topicDetails"`
}
