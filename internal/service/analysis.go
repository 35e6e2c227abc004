package service

import (
	"context"
	"fmt"
	"time"

	"MarketLens/internal/config"
	"MarketLens/internal/dossier"
	"MarketLens/internal/engine"
	"MarketLens/internal/interpret"
	"MarketLens/internal/model"
	"MarketLens/internal/prompt"
	"MarketLens/internal/source"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AnalysisService 错价分析管道：归一化事件 → 提示词 → 推理引擎 → 结果解析。
// 创建后只持有不可变依赖，可并发调用。
type AnalysisService struct {
	source           source.Source
	engine           engine.Engine
	policy           prompt.Policy
	logger           *logrus.Logger
	analyzeMaxTokens int
	scanMaxTokens    int
	scanLimit        int
	now              func() time.Time
}

func NewAnalysisService(src source.Source, eng engine.Engine, cfg *config.Config, logger *logrus.Logger) *AnalysisService {
	s := &AnalysisService{
		source:           src,
		engine:           eng,
		policy:           prompt.DefaultPolicy,
		logger:           logger,
		analyzeMaxTokens: config.DefaultAnalyzeMaxToken,
		scanMaxTokens:    config.DefaultScanMaxToken,
		scanLimit:        config.DefaultScanLimit,
		now:              time.Now,
	}
	if cfg != nil {
		if cfg.LLM.AnalyzeMaxTokens > 0 {
			s.analyzeMaxTokens = cfg.LLM.AnalyzeMaxTokens
		}
		if cfg.LLM.ScanMaxTokens > 0 {
			s.scanMaxTokens = cfg.LLM.ScanMaxTokens
		}
		if cfg.Scan.DefaultLimit > 0 {
			s.scanLimit = cfg.Scan.DefaultLimit
		}
	}
	return s
}

// Analyze 单事件分析，返回引擎原文与市场回显
func (s *AnalysisService) Analyze(ctx context.Context, event *model.EventRecord) (*model.AnalysisResult, error) {
	if event == nil {
		return nil, ErrEventRequired
	}
	log := s.logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"event_id":   event.ID,
		"markets":    len(event.Markets),
	})

	p := prompt.SingleEvent(dossier.BuildContext(*event), s.now())
	raw, err := s.engine.Complete(ctx, p, s.analyzeMaxTokens)
	if err != nil {
		log.WithError(err).Error("单事件分析：推理引擎调用失败")
		return nil, fmt.Errorf("%w: %w", ErrEngine, err)
	}

	result := interpret.Single(raw, *event)
	log.WithField("chars", len(raw)).Info("单事件分析完成")
	return &result, nil
}

// Scan 批量扫描。无市场的事件在调用引擎前剔除；若全部被剔除，仍以空列表调用引擎。
func (s *AnalysisService) Scan(ctx context.Context, events []model.EventRecord) (*model.ScanResult, error) {
	if len(events) == 0 {
		return nil, ErrEventsRequired
	}
	projected := prompt.Project(events)
	log := s.logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"events":     len(events),
		"eligible":   len(projected),
	})
	if len(projected) == 0 {
		log.Warn("批量扫描：所有事件均无市场")
	}

	p, err := prompt.BatchScan(projected, s.now(), s.policy)
	if err != nil {
		return nil, fmt.Errorf("构建批量扫描提示词失败: %w", err)
	}
	raw, err := s.engine.Complete(ctx, p, s.scanMaxTokens)
	if err != nil {
		log.WithError(err).Error("批量扫描：推理引擎调用失败")
		return nil, fmt.Errorf("%w: %w", ErrEngine, err)
	}

	result := interpret.Batch(raw)
	if off := s.policy.Audit(result.Mispriced); len(off) > 0 {
		log.WithField("off_policy", len(off)).Warn("部分发现的置信度不符合筛选约定，原样返回")
	}
	log.WithField("findings", len(result.Mispriced)).Info("批量扫描完成")
	return &result, nil
}

// AnalyzeByID 从数据源拉取单个事件后分析
func (s *AnalysisService) AnalyzeByID(ctx context.Context, id string) (*model.AnalysisResult, error) {
	event, err := s.source.Event(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return s.Analyze(ctx, event)
}

// ScanLive 拉取最多 limit 个未关闭事件后批量扫描
func (s *AnalysisService) ScanLive(ctx context.Context, limit int) (*model.ScanResult, error) {
	events, err := s.ActiveEvents(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx, events)
}

// ActiveEvents 透传数据源的未关闭事件，limit<=0 时使用配置默认值
func (s *AnalysisService) ActiveEvents(ctx context.Context, limit int) ([]model.EventRecord, error) {
	if limit <= 0 {
		limit = s.scanLimit
	}
	events, err := s.source.ActiveEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return events, nil
}

// Event 透传数据源的单个事件
func (s *AnalysisService) Event(ctx context.Context, id string) (*model.EventRecord, error) {
	event, err := s.source.Event(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return event, nil
}
