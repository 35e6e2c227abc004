package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// syncRunTimeout 单次定时同步的超时
const syncRunTimeout = 5 * time.Minute

// SyncScheduler 按 cron 表达式定时执行快照同步
type SyncScheduler struct {
	sync   *SyncService
	cron   *cron.Cron
	logger *logrus.Logger
}

func NewSyncScheduler(sync *SyncService, logger *logrus.Logger) *SyncScheduler {
	return &SyncScheduler{
		sync: sync,
		// 上一次未结束时跳过本次
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger,
	}
}

// Start 注册任务并启动；schedule 为空时不启动
func (s *SyncScheduler) Start(schedule string) error {
	if schedule == "" {
		return nil
	}
	if _, err := s.cron.AddFunc(schedule, s.runSync); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.WithField("schedule", schedule).Info("快照定时同步已启动")
	return nil
}

// Stop 停止调度并等待正在执行的任务结束
func (s *SyncScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *SyncScheduler) runSync() {
	ctx, cancel := context.WithTimeout(context.Background(), syncRunTimeout)
	defer cancel()

	start := time.Now()
	n, err := s.sync.Sync(ctx, 0)
	if err != nil {
		s.logger.WithError(err).Error("定时同步失败")
		return
	}
	s.logger.WithFields(logrus.Fields{
		"count":    n,
		"duration": time.Since(start).String(),
	}).Info("定时同步完成")
}
