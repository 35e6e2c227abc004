package model

// AnalysisResult 单事件分析结果
type AnalysisResult struct {
	Analysis string       `json:"analysis"` // 推理引擎原文
	Event    string       `json:"event"`    // 事件标题
	Markets  []MarketEcho `json:"markets"`  // 供前端对账的市场回显
}

// MarketEcho 市场回显（问题/选项/价格）
type MarketEcho struct {
	Question      string   `json:"question"`
	Outcomes      []string `json:"outcomes"`
	OutcomePrices []string `json:"outcomePrices"`
}

// Confidence 推理引擎自报的置信度
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// MispricingFinding 批量扫描中的单条错价发现。字段均为自由文本，不做数值校验。
type MispricingFinding struct {
	EventID        LooseString `json:"eventId"`
	EventTitle     LooseString `json:"eventTitle"`
	Slug           LooseString `json:"slug"`
	MarketQuestion LooseString `json:"marketQuestion"`
	CurrentOdds    LooseString `json:"currentOdds"`
	FairOdds       LooseString `json:"fairOdds"`
	Discrepancy    LooseString `json:"discrepancy"`
	Reasoning      LooseString `json:"reasoning"`
	Confidence     Confidence  `json:"confidence"`
	Recommendation LooseString `json:"recommendation"`
}

// ScanResult 批量扫描结果。结构化解析失败时 Mispriced 为空、Summary 为完整原文。
type ScanResult struct {
	Mispriced []MispricingFinding `json:"mispriced"`
	Summary   string              `json:"summary"`
}

// FallbackScan 解析失败时的降级结果，不丢弃任何信息
func FallbackScan(raw string) ScanResult {
	return ScanResult{Mispriced: []MispricingFinding{}, Summary: raw}
}

// UnmarshalJSON 接受任意标量
func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s LooseString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	*c = Confidence(s)
	return nil
}
