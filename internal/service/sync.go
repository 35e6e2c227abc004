package service

import (
	"context"
	"fmt"

	"MarketLens/internal/config"
	"MarketLens/internal/model"
	"MarketLens/internal/repository"
	"MarketLens/internal/source"

	"github.com/sirupsen/logrus"
)

// SyncService 行情快照同步：拉取未关闭事件写入快照库。只存行情，不存分析结果。
type SyncService struct {
	source source.Source
	repo   repository.SnapshotRepository // 为 nil 表示未启用快照库
	logger *logrus.Logger
	limit  int
}

func NewSyncService(src source.Source, repo repository.SnapshotRepository, cfg *config.Config, logger *logrus.Logger) *SyncService {
	limit := config.DefaultScanLimit
	if cfg != nil && cfg.Scan.DefaultLimit > 0 {
		limit = cfg.Scan.DefaultLimit
	}
	return &SyncService{source: src, repo: repo, logger: logger, limit: limit}
}

// Sync 同步 Polymarket 事件，返回写入条数
func (s *SyncService) Sync(ctx context.Context, limit int) (int, error) {
	if s.repo == nil {
		return 0, ErrStoreDisabled
	}
	if limit <= 0 {
		limit = s.limit
	}
	events, err := s.source.ActiveEvents(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if len(events) == 0 {
		s.logger.Warnf("%s未拉取到未关闭事件", model.PlatformPolymarket)
		return 0, nil
	}

	n, err := s.repo.SaveSnapshots(ctx, model.PlatformPolymarket, events)
	if err != nil {
		return 0, fmt.Errorf("%s入库失败: %w", model.PlatformPolymarket, err)
	}
	s.logger.Infof("%s同步完成，共%d个事件", model.PlatformPolymarket, n)
	return n, nil
}

// Snapshots 列出最近同步的事件
func (s *SyncService) Snapshots(ctx context.Context, limit int) ([]model.EventRecord, error) {
	if s.repo == nil {
		return nil, ErrStoreDisabled
	}
	return s.repo.ListSnapshots(ctx, limit)
}
