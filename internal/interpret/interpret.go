package interpret

import (
	"encoding/json"

	"MarketLens/internal/model"
)

// Single 单事件分析：原文即交付物，只附带市场回显
func Single(raw string, event model.EventRecord) model.AnalysisResult {
	echo := make([]model.MarketEcho, 0, len(event.Markets))
	for _, m := range event.Markets {
		echo = append(echo, model.MarketEcho{
			Question:      m.Question,
			Outcomes:      m.Outcomes,
			OutcomePrices: m.OutcomePrices,
		})
	}
	return model.AnalysisResult{
		Analysis: raw,
		Event:    event.Title,
		Markets:  echo,
	}
}

type scanPayload struct {
	Mispriced []model.MispricingFinding `json:"mispriced"`
	Summary   model.LooseString         `json:"summary"`
}

// Batch 批量扫描：提取 JSON 对象并解码；任何失败都降级为 {mispriced: [], summary: 原文}，从不返回错误
func Batch(raw string) model.ScanResult {
	obj, ok := ExtractObject(raw)
	if !ok {
		return model.FallbackScan(raw)
	}

	// ExtractObject 保证以 '{' 开头，解码成功即为对象
	var payload scanPayload
	if err := json.Unmarshal([]byte(obj), &payload); err != nil {
		return model.FallbackScan(raw)
	}

	result := model.ScanResult{
		Mispriced: payload.Mispriced,
		Summary:   payload.Summary.String(),
	}
	if result.Mispriced == nil {
		result.Mispriced = []model.MispricingFinding{}
	}
	return result
}
