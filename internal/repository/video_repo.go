package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"Trendlens/internal/model"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// DateKey 分区文件名里统一使用的日期格式
const DateKey = "2006-01-02"

// PartitionPath 推导某国家某天的分区文件位置。
// 写入方和读取方都只通过这一个函数取路径，约定必须保持逐字节一致。
func PartitionPath(dataDir, region string, day time.Time) string {
	return filepath.Join(
		dataDir, "videos",
		fmt.Sprintf("country=%s", region),
		fmt.Sprintf("year=%s", day.Format("2006")),
		fmt.Sprintf("month=%s", day.Format("01")),
		fmt.Sprintf("trending_%s_%s.csv", region, day.Format(DateKey)),
	)
}

type VideoRepo interface {
	WritePartition(region string, day time.Time, records []model.VideoRecord) error
	ReadByDate(day time.Time) ([]model.VideoRecord, error)
}

type videoRepoImpl struct {
	dataDir string
}

func NewVideoRepo(dataDir string) VideoRepo {
	return &videoRepoImpl{dataDir: dataDir}
}

// WritePartition 整文件覆盖写入一个 (国家, 日期) 分区。
// 同一键重复写入是幂等的：相同数据得到逐字节相同的文件。
func (s *videoRepoImpl) WritePartition(region string, day time.Time, records []model.VideoRecord) error {
	path := PartitionPath(s.dataDir, region, day)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create partition dir for %s", region)
	}
	return writeCSV(path, &records)
}

// ReadByDate 扫描分区树，合并目标日期下所有国家的分区。
// 合并顺序固定为路径字典序，top-N 的平局顺序由此而来。
func (s *videoRepoImpl) ReadByDate(day time.Time) ([]model.VideoRecord, error) {
	pattern := filepath.Join(
		s.dataDir, "videos", "country=*", "year=*", "month=*",
		fmt.Sprintf("trending_*_%s.csv", day.Format(DateKey)),
	)
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "scan partition tree")
	}
	sort.Strings(paths)

	var all []model.VideoRecord
	for _, path := range paths {
		var rows []model.VideoRecord
		if err := readCSV(path, &rows); err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}

	return all, nil
}

// writeCSV 先写临时文件再改名，避免读取方看到半个文件
func writeCSV(path string, out interface{}) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "create %s", tmp)
	}

	if err := gocsv.Marshal(out, f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "marshal csv %s", path)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "close %s", tmp)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "rename %s", path)
	}
	return nil
}

func readCSV(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	if err := gocsv.Unmarshal(f, out); err != nil {
		return errors.Wrapf(err, "parse csv %s", path)
	}
	return nil
}
