package service

import (
	"context"

	"Trendlens/internal/model"
	"Trendlens/internal/repository"
)

type ChannelService interface {
	List(ctx context.Context) ([]model.ChannelRecord, error)
}

type channelServiceImpl struct {
	channelRepo repository.ChannelRepo
}

func NewChannelService(channelRepo repository.ChannelRepo) ChannelService {
	return &channelServiceImpl{channelRepo: channelRepo}
}

// List 返回整张频道登记表，首次运行前为空表
func (s *channelServiceImpl) List(_ context.Context) ([]model.ChannelRecord, error) {
	return s.channelRepo.Load()
}
