package prompt

import (
	"fmt"

	"MarketLens/internal/model"
)

// Policy 错价筛选约定。只作为指令写进批量扫描提示词，由推理引擎自行过滤；
// 管道不根据 fairOdds/currentOdds 文本重新计算偏差，也不剔除任何发现。
type Policy struct {
	Confidence     model.Confidence // 只接受该置信度
	MinDiscrepancy float64          // 偏差下限（百分点）
}

// DefaultPolicy 高置信度且偏差超过 30%
var DefaultPolicy = Policy{Confidence: model.ConfidenceHigh, MinDiscrepancy: 30}

// Criterion 渲染为提示词中的验收条件
func (p Policy) Criterion() string {
	return fmt.Sprintf("Only include markets where you have %s confidence AND the discrepancy between market odds and your fair odds is greater than %.0f%%.",
		p.Confidence, p.MinDiscrepancy)
}

// Audit 返回自报置信度不符合约定的发现（仅用于日志，调用方拿到的结果不变）
func (p Policy) Audit(findings []model.MispricingFinding) []model.MispricingFinding {
	var off []model.MispricingFinding
	for _, f := range findings {
		if f.Confidence != p.Confidence {
			off = append(off, f)
		}
	}
	return off
}
