package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"MarketLens/internal/config"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"
)

// DefaultClaudeModel 未配置模型时使用
const DefaultClaudeModel = "claude-sonnet-4-20250514"

// ClaudeEngine 基于 Anthropic Messages API 的推理引擎
type ClaudeEngine struct {
	client anthropic.Client
	model  string
	logger *logrus.Logger
}

// NewClaudeEngine 创建 Claude 引擎；SDK 自带重试被关闭
func NewClaudeEngine(cfg config.ClaudeConfig, logger *logrus.Logger) (*ClaudeEngine, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Claude 引擎需要 API Key（ANTHROPIC_API_KEY 或 llm.claude.api_key）")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultClaudeModel
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	logger.WithField("model", model).Info("Claude 推理引擎初始化成功")
	return &ClaudeEngine{
		client: anthropic.NewClient(opts...),
		model:  model,
		logger: logger,
	}, nil
}

func (e *ClaudeEngine) Name() string { return "claude" }

// Complete 调用 Messages API，拼接所有文本块
func (e *ClaudeEngine) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	start := time.Now()
	resp, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Claude API 调用失败: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	e.logger.WithFields(logrus.Fields{
		"model":           e.model,
		"max_tokens":      maxTokens,
		"response_length": text.Len(),
		"duration":        time.Since(start).String(),
	}).Debug("Claude 补全完成")

	if text.Len() == 0 {
		return "", fmt.Errorf("Claude 返回空内容")
	}
	return text.String(), nil
}
