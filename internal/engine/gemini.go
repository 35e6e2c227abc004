package engine

import (
	"context"
	"fmt"
	"strings"

	"MarketLens/internal/config"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// DefaultGeminiModel 未配置模型时使用
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiEngine 基于 Google GenAI 的推理引擎
type GeminiEngine struct {
	client *genai.Client
	model  string
	logger *logrus.Logger
}

// NewGeminiEngine 创建 Gemini 引擎
func NewGeminiEngine(ctx context.Context, cfg config.GeminiConfig, logger *logrus.Logger) (*GeminiEngine, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini 引擎需要 API Key（GEMINI_API_KEY 或 llm.gemini.api_key）")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 Gemini 客户端失败: %w", err)
	}
	logger.WithField("model", model).Info("Gemini 推理引擎初始化成功")
	return &GeminiEngine{client: client, model: model, logger: logger}, nil
}

func (e *GeminiEngine) Name() string { return "gemini" }

// Complete 调用 GenerateContent，取第一个有文本的候选
func (e *GeminiEngine) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{MaxOutputTokens: int32(maxTokens)},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API 调用失败: %w", err)
	}

	var text strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate == nil || candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part != nil && part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			if text.Len() > 0 {
				break
			}
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("Gemini 返回空内容")
	}
	return text.String(), nil
}
