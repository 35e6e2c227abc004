// Package engine 封装推理引擎（LLM 文本补全）。引擎被视为黑盒：输入提示词与 token 上限，返回自由文本。
// 不做内部重试、不设内部超时，取消由调用方的 context 驱动。
package engine

import (
	"context"
	"fmt"

	"MarketLens/internal/config"

	"github.com/sirupsen/logrus"
)

// Engine 推理引擎接口
type Engine interface {
	// Complete 发送单条提示词，返回补全文本
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
	// Name 引擎名称（日志用）
	Name() string
}

// New 按配置创建推理引擎
func New(ctx context.Context, cfg *config.LLMConfig, logger *logrus.Logger) (Engine, error) {
	switch cfg.Provider {
	case "claude", "":
		return NewClaudeEngine(cfg.Claude, logger)
	case "gemini":
		return NewGeminiEngine(ctx, cfg.Gemini, logger)
	default:
		return nil, fmt.Errorf("不支持的推理引擎: %s", cfg.Provider)
	}
}
