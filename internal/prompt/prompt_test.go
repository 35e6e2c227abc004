package prompt

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"MarketLens/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

func TestSingleEvent(t *testing.T) {
	p := SingleEvent("Event: Fed decision\n", fixedNow)

	assert.Contains(t, p, "Thursday, October 15, 2026")
	assert.Contains(t, p, "Event: Fed decision\n")
	for _, v := range []Verdict{VerdictMispriced, VerdictFair, VerdictUncertain} {
		assert.Contains(t, p, string(v))
	}
	assert.Equal(t, p, SingleEvent("Event: Fed decision\n", fixedNow))
}

func TestProject_DropsEmptyEvents(t *testing.T) {
	vol := 5000.0
	events := []model.EventRecord{
		{ID: "1", Title: "Empty", Markets: []model.MarketRecord{}},
		{ID: "2", Title: "Kept", Slug: "kept", Description: "long text", EndDate: "2026-11-01",
			Markets: []model.MarketRecord{{Question: "Q?", Outcomes: []string{"Yes", "No"}, OutcomePrices: []string{"0.3", "0.7"}, Volume: &vol}}},
		{ID: "3", Title: "Nil markets"},
	}

	got := Project(events)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "kept", got[0].Slug)
	require.Len(t, got[0].Markets, 1)
	assert.Equal(t, &vol, got[0].Markets[0].Volume)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "long text")
	assert.NotContains(t, string(b), "2026-11-01")
}

func TestBatchScan(t *testing.T) {
	summaries := Project([]model.EventRecord{
		{ID: "e1", Title: "Election", Slug: "election", Markets: []model.MarketRecord{{Question: "Win?", Outcomes: []string{"Yes", "No"}, OutcomePrices: []string{"0.42", "0.58"}}}},
	})

	p, err := BatchScan(summaries, fixedNow, DefaultPolicy)
	require.NoError(t, err)

	assert.Contains(t, p, "Thursday, October 15, 2026")
	assert.Contains(t, p, `"slug": "election"`)
	assert.Contains(t, p, `"0.42"`)
	assert.Contains(t, p, `"mispriced"`)
	assert.Contains(t, p, `"recommendation"`)
	assert.Contains(t, p, "High confidence")
	assert.Contains(t, p, "greater than 30%")
	assert.True(t, strings.Contains(p, "Below are 1 prediction market events"))
}

func TestBatchScan_Empty(t *testing.T) {
	p, err := BatchScan(nil, fixedNow, DefaultPolicy)
	require.NoError(t, err)
	assert.Contains(t, p, "\n[]\n")
}

func TestPolicyAudit(t *testing.T) {
	findings := []model.MispricingFinding{
		{EventID: "1", Confidence: model.ConfidenceHigh},
		{EventID: "2", Confidence: model.ConfidenceMedium},
		{EventID: "3", Confidence: "high"},
	}
	off := DefaultPolicy.Audit(findings)
	require.Len(t, off, 2)
	assert.Equal(t, model.LooseString("2"), off[0].EventID)
	assert.Equal(t, model.LooseString("3"), off[1].EventID)
	assert.Len(t, findings, 3)
}
