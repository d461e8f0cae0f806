// Package lookup 承载进程启动时一次性加载的静态映射表。
package lookup

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Table 只读的 code -> label 映射，加载后不再修改
type Table struct {
	entries  map[string]string
	fallback string
}

// NewTable 直接从内存映射构造，测试用
func NewTable(entries map[string]string, fallback string) *Table {
	return &Table{entries: entries, fallback: fallback}
}

// LoadTable 从 JSON 文件加载映射表，unknown key 统一返回 fallback
func LoadTable(path string, fallback string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup table %s: %w", path, err)
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse lookup table %s: %w", path, err)
	}

	return &Table{entries: entries, fallback: fallback}, nil
}

// Resolve 查表，未知 key 返回 fallback，永不报错
func (s *Table) Resolve(code string) string {
	if label, ok := s.entries[code]; ok {
		return label
	}
	return s.fallback
}

// LoadRegions 加载受支持的国家代码列表，迭代顺序即文件顺序
func LoadRegions(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read region list %s: %w", path, err)
	}

	var regions []string
	if err := json.Unmarshal(raw, &regions); err != nil {
		return nil, fmt.Errorf("failed to parse region list %s: %w", path, err)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("region list %s is empty", path)
	}

	return regions, nil
}
