// Package dossier 把归一化后的事件渲染成确定性的文本档案，作为推理引擎看到的唯一行情上下文。
package dossier

import (
	"fmt"
	"strings"

	"MarketLens/internal/model"

	"github.com/dustin/go-humanize"
)

const (
	unknown       = "Unknown"
	noDescription = "No description"
)

// BuildContext 渲染事件档案。纯函数：相同输入得到逐字节相同的输出。
func BuildContext(event model.EventRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Event: %s\n", orDefault(event.Title, unknown))
	fmt.Fprintf(&b, "Description: %s\n", orDefault(event.Description, noDescription))
	fmt.Fprintf(&b, "End Date: %s\n", orDefault(event.EndDate, unknown))

	if len(event.Markets) == 0 {
		return b.String()
	}

	b.WriteString("\nMarkets:\n")
	for i, m := range event.Markets {
		fmt.Fprintf(&b, "\nMarket %d: %s\n", i+1, orDefault(m.Question, unknown))
		writeOutcomes(&b, m)
		if m.Volume != nil {
			fmt.Fprintf(&b, "  Volume: %s\n", FormatUSD(*m.Volume))
		}
		if m.Liquidity != nil {
			fmt.Fprintf(&b, "  Liquidity: %s\n", FormatUSD(*m.Liquidity))
		}
	}
	return b.String()
}

// writeOutcomes 按位置配对选项与价格；缺价或价格无法解析的行直接省略
func writeOutcomes(b *strings.Builder, m model.MarketRecord) {
	if !m.HasPricing() {
		return
	}
	for j, outcome := range m.Outcomes {
		price, ok := m.PriceAt(j)
		if !ok {
			continue
		}
		fmt.Fprintf(b, "  %s: %s\n", outcome, FormatPercent(price))
	}
}

// FormatPercent 概率（0–1）→ 百分比，保留一位小数，如 0.753 → "75.3%"
func FormatPercent(price float64) string {
	return fmt.Sprintf("%.1f%%", price*100)
}

// FormatUSD 千分位美元金额，最多三位小数，如 1234567.5 → "$1,234,567.5"
func FormatUSD(v float64) string {
	if v < 0 {
		return "-$" + humanize.CommafWithDigits(-v, 3)
	}
	return "$" + humanize.CommafWithDigits(v, 3)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
