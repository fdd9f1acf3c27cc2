package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is a [PipelineHooks] implementation that records stage timings
// and sizes in a private Prometheus registry. A merge run is short-lived,
// so the registry is meant to be dumped once with [Metrics.WriteTextfile]
// (for the node_exporter textfile collector) rather than scraped.
type Metrics struct {
	registry *prometheus.Registry

	StageDuration *prometheus.HistogramVec
	StageErrors   *prometheus.CounterVec
	ParsedItems   *prometheus.GaugeVec
	Roots         prometheus.Gauge
	Promotions    prometheus.Gauge
	OutputBytes   *prometheus.GaugeVec
}

// NewMetrics creates a Metrics with all collectors registered.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "forestmerge_stage_duration_seconds",
			Help:    "Duration of each merge stage, labelled by stage.",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"stage"}),
		StageErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "forestmerge_stage_errors_total",
			Help: "Total number of failed merge stages, labelled by stage.",
		}, []string{"stage"}),
		ParsedItems: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "forestmerge_parsed_items",
			Help: "Node declarations or forest entries read, labelled by input kind.",
		}, []string{"kind"}),
		Roots: f.NewGauge(prometheus.GaugeOpts{
			Name: "forestmerge_roots",
			Help: "Number of root groups in the last built hierarchy.",
		}),
		Promotions: f.NewGauge(prometheus.GaugeOpts{
			Name: "forestmerge_promotions",
			Help: "Number of leaves promoted to groups in the last build.",
		}),
		OutputBytes: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "forestmerge_output_bytes",
			Help: "Size of the rendered output, labelled by format.",
		}, []string{"format"}),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(stage string, d time.Duration, err error) {
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		m.StageErrors.WithLabelValues(stage).Inc()
	}
}

// OnParseStart implements [PipelineHooks].
func (m *Metrics) OnParseStart(context.Context, string, string) {}

// OnParseComplete implements [PipelineHooks].
func (m *Metrics) OnParseComplete(_ context.Context, kind, _ string, count int, d time.Duration, err error) {
	m.observe("parse_"+kind, d, err)
	if err == nil {
		m.ParsedItems.WithLabelValues(kind).Set(float64(count))
	}
}

// OnBuildStart implements [PipelineHooks].
func (m *Metrics) OnBuildStart(context.Context, int) {}

// OnBuildComplete implements [PipelineHooks].
func (m *Metrics) OnBuildComplete(_ context.Context, roots, promotions int, d time.Duration, err error) {
	m.observe("build", d, err)
	if err == nil {
		m.Roots.Set(float64(roots))
		m.Promotions.Set(float64(promotions))
	}
}

// OnRenderStart implements [PipelineHooks].
func (m *Metrics) OnRenderStart(context.Context, string) {}

// OnRenderComplete implements [PipelineHooks].
func (m *Metrics) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	m.observe("render", d, err)
	if err == nil {
		m.OutputBytes.WithLabelValues(format).Set(float64(size))
	}
}
