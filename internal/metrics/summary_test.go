package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rusenback/zephyria/internal/model"
)

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize(t *testing.T) {
	samples := []model.Sample{
		{Index: 0, Primary: 500000, Secondary: 10},
		{Index: 1, Primary: 700000, Secondary: 20},
		{Index: 2, Primary: 600000, Secondary: 30},
		{Index: 3, Primary: 800000, Secondary: 40},
	}

	s := Summarize(samples)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 800000.0, s.PeakPrimary)
	assert.Equal(t, 650000.0, s.MeanPrimary)
	assert.InDelta(t, 20, s.LatencyP50, 0.05)
	assert.InDelta(t, 40, s.LatencyP99, 0.05)
	assert.InDelta(t, 40, s.LatencyMax, 0.05)
}

func TestSummarizeSubMicrosecondLatency(t *testing.T) {
	s := Summarize([]model.Sample{{Primary: 1, Secondary: 0}})
	assert.InDelta(t, 0.001, s.LatencyMax, 0.0005)
	assert.Equal(t, 1, s.LatencyClipped)
}

func TestSummarizeClipsLatencyAboveRange(t *testing.T) {
	samples := []model.Sample{
		{Primary: 1, Secondary: 10},
		{Primary: 1, Secondary: 90000},
	}

	s := Summarize(samples)
	assert.Equal(t, 1, s.LatencyClipped)
	// recorded at the one-minute bound instead of being lost
	assert.InDelta(t, 60000, s.LatencyMax, 60)
	assert.InDelta(t, 60000, s.LatencyP99, 60)
	assert.InDelta(t, 10, s.LatencyP50, 0.05)
}
