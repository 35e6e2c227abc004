package prompt

import (
	"encoding/json"
	"fmt"
	"time"

	"MarketLens/internal/model"
)

// EventSummary 批量扫描的精简投影；刻意不含描述与结束日期以控制提示词长度
type EventSummary struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Slug    string          `json:"slug"`
	Markets []MarketSummary `json:"markets"`
}

// MarketSummary 市场投影
type MarketSummary struct {
	Question      string   `json:"question"`
	Outcomes      []string `json:"outcomes"`
	OutcomePrices []string `json:"outcomePrices"`
	Volume        *float64 `json:"volume,omitempty"`
	Liquidity     *float64 `json:"liquidity,omitempty"`
}

// Project 生成投影并剔除没有市场的事件（保持输入顺序）
func Project(events []model.EventRecord) []EventSummary {
	out := make([]EventSummary, 0, len(events))
	for _, e := range events {
		if len(e.Markets) == 0 {
			continue
		}
		s := EventSummary{
			ID:      e.ID,
			Title:   e.Title,
			Slug:    e.Slug,
			Markets: make([]MarketSummary, 0, len(e.Markets)),
		}
		for _, m := range e.Markets {
			s.Markets = append(s.Markets, MarketSummary{
				Question:      m.Question,
				Outcomes:      m.Outcomes,
				OutcomePrices: m.OutcomePrices,
				Volume:        m.Volume,
				Liquidity:     m.Liquidity,
			})
		}
		out = append(out, s)
	}
	return out
}

// responseShape 要求推理引擎严格输出的 JSON 结构
const responseShape = `{
  "mispriced": [
    {
      "eventId": "string",
      "eventTitle": "string",
      "slug": "string",
      "marketQuestion": "string",
      "currentOdds": "string, e.g. Yes 35%",
      "fairOdds": "string, e.g. Yes 70%",
      "discrepancy": "string, e.g. 35 percentage points",
      "reasoning": "string",
      "confidence": "High" | "Medium" | "Low",
      "recommendation": "string, e.g. Buy Yes"
    }
  ],
  "summary": "string"
}`

// BatchScan 批量扫描提示词
func BatchScan(events []EventSummary, now time.Time, policy Policy) (string, error) {
	if events == nil {
		events = []EventSummary{}
	}
	payload, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化事件投影失败: %w", err)
	}
	return fmt.Sprintf(`You are an expert prediction market analyst. Today's date is %s.

Below are %d prediction market events with their current odds (outcomePrices are market-implied probabilities from 0 to 1, index-aligned with outcomes).

%s

Scan every market and identify the ones that are significantly mispriced given current real-world information.
%s
If nothing meets this bar, return an empty "mispriced" array and explain briefly in "summary".

Respond with ONLY valid JSON in exactly this shape, with no extra text:
%s`,
		now.Format(DateLayout), len(events), payload, policy.Criterion(), responseShape), nil
}
