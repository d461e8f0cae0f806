package handler

import (
	"fmt"
	"sort"

	"Trendlens/internal/api/dto"
	"Trendlens/internal/model"
	"Trendlens/internal/pkg/response"
	"Trendlens/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type SnapshotHandler struct {
	snapshotSvc service.SnapshotService
}

func NewSnapshotHandler(snapshotSvc service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotSvc: snapshotSvc,
	}
}

// filteredRows 取最新快照并按查询条件过滤。
// 快照非空但过滤结果为空时视为条件不存在；快照本身为空则照常返回空集。
func (s *SnapshotHandler) filteredRows(c *gin.Context, country, category string) ([]model.VideoRecord, error) {
	snap, err := s.snapshotSvc.Latest(c.Request.Context())
	if err != nil {
		return nil, err
	}

	rows := snap.Videos
	if country != "" {
		rows = service.FilterByCountry(rows, country)
		if len(rows) == 0 && len(snap.Videos) > 0 {
			return nil, service.ErrCountryNotFound
		}
	}
	if category != "" {
		rows = service.FilterByCategory(rows, category)
		if len(rows) == 0 && len(snap.Videos) > 0 && country == "" {
			return nil, service.ErrCategoryNotFound
		}
	}

	return rows, nil
}

// GetInfo 快照概况：日期、行数、出现过的国家与分类
func (s *SnapshotHandler) GetInfo(c *gin.Context) {
	snap, err := s.snapshotSvc.Latest(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	countrySet := make(map[string]struct{})
	categorySet := make(map[string]struct{})
	for i := range snap.Videos {
		if snap.Videos[i].CountryName != "" {
			countrySet[snap.Videos[i].CountryName] = struct{}{}
		}
		if snap.Videos[i].CategoryName != "" {
			categorySet[snap.Videos[i].CategoryName] = struct{}{}
		}
	}

	info := dto.SnapshotInfoDTO{
		Date:       snap.Date,
		Videos:     len(snap.Videos),
		Countries:  sortedKeys(countrySet),
		Categories: sortedKeys(categorySet),
	}
	response.Success(c, info)
}

// GetSummary 汇总指标，可按国家/分类过滤
func (s *SnapshotHandler) GetSummary(c *gin.Context) {
	var query dto.SnapshotFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	rows, err := s.filteredRows(c, query.Country, query.Category)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, service.Summary(rows))
}

// GetTop 按指标取前 N 条
func (s *SnapshotHandler) GetTop(c *gin.Context) {
	var query dto.TopVideosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	rows, err := s.filteredRows(c, query.Country, query.Category)
	if err != nil {
		response.Error(c, err)
		return
	}

	top, err := service.TopN(rows, query.Metric, query.N)
	if err != nil {
		response.Error(c, err)
		return
	}

	videos := make([]dto.VideoDTO, 0, len(top))
	for i := range top {
		var v dto.VideoDTO
		if err := copier.Copy(&v, &top[i]); err != nil {
			response.Error(c, err)
			return
		}
		v.URL = fmt.Sprintf("https://www.youtube.com/watch?v=%s", top[i].VideoID)
		videos = append(videos, v)
	}

	response.Success(c, videos)
}

// GetCountries 按国家分组汇总
func (s *SnapshotHandler) GetCountries(c *gin.Context) {
	snap, err := s.snapshotSvc.Latest(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, service.ByCountry(snap.Videos))
}

// GetCategories 按分类分组汇总，同一视频在多国上榜时只计一次
func (s *SnapshotHandler) GetCategories(c *gin.Context) {
	snap, err := s.snapshotSvc.Latest(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, service.ByCategory(service.UniqueByVideoID(snap.Videos)))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
