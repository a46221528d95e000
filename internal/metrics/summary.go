package metrics

import (
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/rusenback/zephyria/internal/model"
)

// Latencies are recorded in microseconds between 1µs and one minute
const (
	histogramMin     = 1
	histogramMax     = 60_000_000
	histogramSigFigs = 3
	microsPerMilli   = 1000.0
)

// Summary describes one window of samples
type Summary struct {
	Count       int     `json:"count"`
	PeakPrimary float64 `json:"peak_primary"`
	MeanPrimary float64 `json:"mean_primary"`
	LatencyP50  float64 `json:"latency_p50"`
	LatencyP99  float64 `json:"latency_p99"`
	LatencyMax  float64 `json:"latency_max"`
	// LatencyClipped counts samples outside the histogram range, recorded at the nearest bound
	LatencyClipped int `json:"latency_clipped"`
}

// Summarize computes throughput and latency figures for samples.
// Latency quantiles come from an HDR histogram, so they carry its precision.
func Summarize(samples []model.Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
	sum := Summary{Count: len(samples), PeakPrimary: samples[0].Primary}

	var total float64
	for _, s := range samples {
		total += s.Primary
		if s.Primary > sum.PeakPrimary {
			sum.PeakPrimary = s.Primary
		}
		micros := int64(math.Round(s.Secondary * microsPerMilli))
		clipped := min(max(micros, histogramMin), histogramMax)
		if clipped != micros {
			sum.LatencyClipped++
		}
		// in range, so RecordValue cannot fail
		_ = hist.RecordValue(clipped)
	}

	sum.MeanPrimary = total / float64(len(samples))
	sum.LatencyP50 = float64(hist.ValueAtQuantile(50)) / microsPerMilli
	sum.LatencyP99 = float64(hist.ValueAtQuantile(99)) / microsPerMilli
	sum.LatencyMax = float64(hist.Max()) / microsPerMilli
	return sum
}
