// Package source 行情数据源：从 Polymarket Gamma 拉取事件并归一化为 model.EventRecord。
package source

import (
	"context"
	"encoding/json"
	"fmt"

	"MarketLens/internal/config"
	"MarketLens/internal/model"
	"MarketLens/internal/utils/httpclient"

	"github.com/GoPolymarket/polymarket-go-sdk/pkg/gamma"
	"github.com/GoPolymarket/polymarket-go-sdk/pkg/transport"
	"github.com/sirupsen/logrus"
)

// Source 事件数据源
type Source interface {
	// Event 按平台事件 ID 获取单个事件
	Event(ctx context.Context, id string) (*model.EventRecord, error)
	// ActiveEvents 获取最多 limit 个未关闭事件
	ActiveEvents(ctx context.Context, limit int) ([]model.EventRecord, error)
}

// GammaSource 基于 polymarket-go-sdk 的 Gamma 数据源
type GammaSource struct {
	client gamma.Client
	logger *logrus.Logger
}

var _ Source = (*GammaSource)(nil)

// NewGammaSource 使用平台配置（地址、代理、超时）创建数据源
func NewGammaSource(cfg config.PlatformConfig, logger *logrus.Logger) *GammaSource {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = gamma.BaseURL
	}
	tr := transport.NewClient(httpclient.NewHTTPClient(cfg, logger), baseURL)
	tr.SetUserAgent(httpclient.UserAgent)
	return NewGammaSourceWithClient(gamma.NewClient(tr), logger)
}

// NewGammaSourceWithClient 注入已构建的 Gamma 客户端
func NewGammaSourceWithClient(client gamma.Client, logger *logrus.Logger) *GammaSource {
	return &GammaSource{client: client, logger: logger}
}

func (s *GammaSource) Event(ctx context.Context, id string) (*model.EventRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("事件ID不能为空")
	}
	ev, err := s.client.EventByID(ctx, &gamma.EventByIDRequest{ID: id})
	if err != nil {
		return nil, fmt.Errorf("获取Gamma事件%s失败: %w", id, err)
	}
	if ev == nil {
		return nil, fmt.Errorf("Gamma事件%s不存在", id)
	}
	record, err := toRecord(ev)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GammaSource) ActiveEvents(ctx context.Context, limit int) ([]model.EventRecord, error) {
	if limit <= 0 {
		limit = config.DefaultScanLimit
	}
	events, err := s.client.Events(ctx, &gamma.EventsRequest{Limit: &limit})
	if err != nil {
		return nil, fmt.Errorf("获取Gamma事件列表失败: %w", err)
	}

	records := make([]model.EventRecord, 0, len(events))
	for i := range events {
		record, err := toRecord(events[i])
		if err != nil {
			s.logger.WithError(err).Warn("Gamma事件转换失败，跳过")
			continue
		}
		if record.Closed {
			continue
		}
		records = append(records, record)
	}
	s.logger.WithFields(logrus.Fields{
		"fetched": len(events),
		"open":    len(records),
	}).Debug("Gamma事件拉取完成")
	return records, nil
}

// toRecord SDK 结构经 JSON 转为宽松模型，字符串编码的数组与数字由 EventRecord 统一处理
func toRecord(v any) (model.EventRecord, error) {
	var record model.EventRecord
	b, err := json.Marshal(v)
	if err != nil {
		return record, fmt.Errorf("序列化Gamma事件失败: %w", err)
	}
	if err := json.Unmarshal(b, &record); err != nil {
		return record, fmt.Errorf("解析Gamma事件失败: %w", err)
	}
	return record, nil
}
