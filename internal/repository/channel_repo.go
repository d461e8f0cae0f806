package repository

import (
	"os"
	"path/filepath"

	"Trendlens/internal/model"

	"github.com/pkg/errors"
)

// RegistryFile 频道登记表的固定文件名，不做分区
const RegistryFile = "trending_channels.csv"

type ChannelRepo interface {
	Load() ([]model.ChannelRecord, error)
	Overwrite(records []model.ChannelRecord) error
}

type channelRepoImpl struct {
	dataDir string
}

func NewChannelRepo(dataDir string) ChannelRepo {
	return &channelRepoImpl{dataDir: dataDir}
}

func (s *channelRepoImpl) path() string {
	return filepath.Join(s.dataDir, "channels", RegistryFile)
}

// Load 读取现有登记表，首次运行文件不存在时返回空表
func (s *channelRepoImpl) Load() ([]model.ChannelRecord, error) {
	records := make([]model.ChannelRecord, 0)
	if _, err := os.Stat(s.path()); os.IsNotExist(err) {
		return records, nil
	}
	if err := readCSV(s.path(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Overwrite 整文件重写登记表
func (s *channelRepoImpl) Overwrite(records []model.ChannelRecord) error {
	path := s.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create registry dir")
	}
	return writeCSV(path, &records)
}
