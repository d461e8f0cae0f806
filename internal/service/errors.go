package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrMetricUnknown    = errors.New("未知的指标")
	ErrCountryNotFound  = errors.New("该国家今日无上榜数据")
	ErrCategoryNotFound = errors.New("该分类今日无上榜数据")
	ErrIngestRunning    = errors.New("采集任务正在运行")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrMetricUnknown:    BadRequest,
	ErrCountryNotFound:  NotFound,
	ErrCategoryNotFound: NotFound,
	ErrIngestRunning:    BadRequest,
	UnExpectedError:     InternalServerError,
}
