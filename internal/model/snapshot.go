package model

// Snapshot 某个已结算日期下所有国家分区的合并结果。
type Snapshot struct {
	Date   string        `json:"date"`
	Videos []VideoRecord `json:"videos"`
}
