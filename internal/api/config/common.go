package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	YouTube  YouTubeConfig  `mapstructure:"youtube"`
	Data     DataConfig     `mapstructure:"data"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Lookup   LookupConfig   `mapstructure:"lookup"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// YouTubeConfig 上游 Data API 配置，APIKey 从环境变量注入
type YouTubeConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
	APIKey    string `mapstructure:"-"`
}

// DataConfig 分区文件树根目录
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// IngestConfig 采集节奏配置
type IngestConfig struct {
	Schedule      string `mapstructure:"schedule"`
	RegionDelayMs int    `mapstructure:"region_delay_ms"`
	ChunkDelayMs  int    `mapstructure:"chunk_delay_ms"`
}

// SnapshotConfig 快照结算配置，Cutover 为 HH:MM
type SnapshotConfig struct {
	Cutover         string `mapstructure:"cutover"`
	Timezone        string `mapstructure:"timezone"`
	CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes"`
}

// LookupConfig 静态映射表文件路径
type LookupConfig struct {
	Categories   string `mapstructure:"categories"`
	CountryNames string `mapstructure:"country_names"`
	Regions      string `mapstructure:"regions"`
}
