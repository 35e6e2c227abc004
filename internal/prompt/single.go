// Package prompt 组装发送给推理引擎的两类提示词：单事件深度分析与多事件批量扫描。
package prompt

import (
	"fmt"
	"time"
)

// Verdict 单事件分析的结论集合
type Verdict string

const (
	VerdictMispriced Verdict = "MISPRICED"
	VerdictFair      Verdict = "FAIR"
	VerdictUncertain Verdict = "UNCERTAIN"
)

// DateLayout 提示词中当前日期的格式
const DateLayout = "Monday, January 2, 2006"

// SingleEvent 单事件分析提示词。context 为 dossier.BuildContext 的输出，now 由调用方传入。
func SingleEvent(context string, now time.Time) string {
	return fmt.Sprintf(`You are an expert prediction market analyst. Today's date is %s.

Analyze the following prediction market and determine whether its current odds are mispriced.

%s
Work through these steps:
1. Current facts: summarize the latest real-world facts and developments relevant to how this market will resolve.
2. Fair probability: give your own fair probability estimate for each outcome, with brief reasoning.
3. Comparison: compare your estimates against the market-implied probabilities above and note the size of any gap.
4. Verdict: state exactly one of %s, %s or %s.
5. If %s, name the side (outcome) that offers value and explain why.

Be concise and specific. Cite concrete facts and dates where possible.`,
		now.Format(DateLayout), context,
		VerdictMispriced, VerdictFair, VerdictUncertain, VerdictMispriced)
}
