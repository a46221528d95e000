package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rusenback/zephyria/internal/live"
	"github.com/rusenback/zephyria/internal/metrics"
)

const namespace = "zephyria"

// Instruments holds the process-wide Prometheus collectors.
// Collectors are safe for concurrent use; each stream only touches them
// through the observer it is given.
type Instruments struct {
	registry *prometheus.Registry

	ticks   *prometheus.CounterVec
	spikes  *prometheus.CounterVec
	clamps  *prometheus.CounterVec
	latest  *prometheus.GaugeVec
	streams prometheus.Gauge
}

// NewInstruments registers the showcase collectors on a fresh registry
func NewInstruments() *Instruments {
	in := &Instruments{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generator_ticks_total",
			Help:      "Generator ticks across all live panels.",
		}, []string{"preset"}),
		spikes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generator_spikes_total",
			Help:      "Ticks that included a load spike.",
		}, []string{"preset"}),
		clamps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generator_clamps_total",
			Help:      "Ticks whose primary value was held at a bound.",
		}, []string{"preset"}),
		latest: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sample_value",
			Help:      "Most recent generated sample, by series.",
		}, []string{"preset", "series"}),
		streams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_streams",
			Help:      "Open frame streams.",
		}),
	}

	in.registry.MustRegister(in.ticks, in.spikes, in.clamps, in.latest, in.streams)
	in.registry.MustRegister(collectors.NewGoCollector())
	in.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return in
}

// Handler serves the registry in the exposition format
func (in *Instruments) Handler() http.Handler {
	return promhttp.HandlerFor(in.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Observer returns a tick observer labelled with preset
func (in *Instruments) Observer(preset string) live.Observer {
	ticks := in.ticks.WithLabelValues(preset)
	spikes := in.spikes.WithLabelValues(preset)
	clamps := in.clamps.WithLabelValues(preset)
	primary := in.latest.WithLabelValues(preset, "primary")
	secondary := in.latest.WithLabelValues(preset, "secondary")

	return func(t metrics.Tick) {
		ticks.Inc()
		if t.Spiked {
			spikes.Inc()
		}
		if t.Clamped {
			clamps.Inc()
		}
		primary.Set(t.Sample.Primary)
		secondary.Set(t.Sample.Secondary)
	}
}

func (in *Instruments) streamOpened() { in.streams.Inc() }
func (in *Instruments) streamClosed() { in.streams.Dec() }
