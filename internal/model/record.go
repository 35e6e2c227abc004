package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// LooseString 接受任意 JSON 标量的文本字段（数字/布尔转文本，null 为空串，对象/数组保留原文）
type LooseString string

// UnmarshalJSON 实现 json.Unmarshaler
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*s = LooseString(buf.String())
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		if n, ok := v.(json.Number); ok {
			*s = LooseString(n.String())
			return nil
		}
		*s = LooseString(cast.ToString(v))
	}
	return nil
}

// String 返回文本
func (s LooseString) String() string { return string(s) }

// EventRecord 上游事件（一个事件下含一个或多个市场）。
// 可选字段在解码时一次性解析，渲染阶段不再做字段回退。
type EventRecord struct {
	ID          string         `json:"id"`
	Slug        string         `json:"slug"`
	Title       string         `json:"title"` // 缺失时回退到 question
	Description string         `json:"description"`
	EndDate     string         `json:"endDate"` // ISO 日期，可能为空
	Active      bool           `json:"active"`
	Closed      bool           `json:"closed"`
	Markets     []MarketRecord `json:"markets"`
}

// MarketRecord 事件下的单个市场
type MarketRecord struct {
	ID            string   `json:"id,omitempty"`
	Question      string   `json:"question"`      // 缺失时回退到 groupItemTitle
	Outcomes      []string `json:"outcomes"`      // 选项标签
	OutcomePrices []string `json:"outcomePrices"` // 与 Outcomes 按位置对齐的概率（0–1，十进制文本）
	Volume        *float64 `json:"volume,omitempty"`
	Liquidity     *float64 `json:"liquidity,omitempty"`
}

type rawEvent struct {
	ID          LooseString     `json:"id"`
	Slug        LooseString     `json:"slug"`
	Title       LooseString     `json:"title"`
	Question    LooseString     `json:"question"`
	Description LooseString     `json:"description"`
	EndDate     LooseString     `json:"endDate"`
	Active      json.RawMessage `json:"active"`
	Closed      json.RawMessage `json:"closed"`
	Markets     json.RawMessage `json:"markets"`
}

type rawMarket struct {
	ID             LooseString     `json:"id"`
	Question       LooseString     `json:"question"`
	GroupItemTitle LooseString     `json:"groupItemTitle"`
	Outcomes       json.RawMessage `json:"outcomes"`
	OutcomePrices  json.RawMessage `json:"outcomePrices"`
	Volume         json.RawMessage `json:"volume"`
	Liquidity      json.RawMessage `json:"liquidity"`
}

// UnmarshalJSON 容忍上游字段漂移：数组可能是字符串编码，数字可能是字符串
func (e *EventRecord) UnmarshalJSON(data []byte) error {
	var raw rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	title := raw.Title.String()
	if title == "" {
		title = raw.Question.String()
	}
	*e = EventRecord{
		ID:          raw.ID.String(),
		Slug:        raw.Slug.String(),
		Title:       title,
		Description: raw.Description.String(),
		EndDate:     raw.EndDate.String(),
		Active:      looseBool(raw.Active),
		Closed:      looseBool(raw.Closed),
		Markets:     make([]MarketRecord, 0),
	}
	// 单个市场解析失败只跳过该市场
	for _, m := range NormalizeArrayField[json.RawMessage](raw.Markets) {
		var market MarketRecord
		if err := json.Unmarshal(m, &market); err != nil {
			continue
		}
		e.Markets = append(e.Markets, market)
	}
	return nil
}

// UnmarshalJSON 解析单个市场
func (m *MarketRecord) UnmarshalJSON(data []byte) error {
	var raw rawMarket
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	question := raw.Question.String()
	if question == "" {
		question = raw.GroupItemTitle.String()
	}
	*m = MarketRecord{
		ID:            raw.ID.String(),
		Question:      question,
		Outcomes:      normalizeTextList(raw.Outcomes),
		OutcomePrices: normalizeTextList(raw.OutcomePrices),
		Volume:        looseNumber(raw.Volume),
		Liquidity:     looseNumber(raw.Liquidity),
	}
	return nil
}

// PriceAt 返回第 j 个选项的价格；越界或无法解析时 ok=false
func (m MarketRecord) PriceAt(j int) (float64, bool) {
	if j < 0 || j >= len(m.OutcomePrices) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(m.OutcomePrices[j]), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// HasPricing 选项与价格均非空
func (m MarketRecord) HasPricing() bool {
	return len(m.Outcomes) > 0 && len(m.OutcomePrices) > 0
}

func looseBool(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return cast.ToBool(v)
}
