package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 文件生成器指标
type Metrics struct {
	artifacts    *prometheus.CounterVec
	bytesWritten prometheus.Counter
	duration     prometheus.Histogram
}

// NewMetrics 在给定的注册器上创建指标
// reg为nil时指标不注册，仍可正常计数
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		artifacts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "filegen",
				Subsystem: "generator",
				Name:      "artifacts_total",
				Help:      "Total number of generated artifacts by result",
			},
			[]string{"result"},
		),
		bytesWritten: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "filegen",
				Subsystem: "generator",
				Name:      "bytes_written_total",
				Help:      "Total payload bytes written to disk",
			},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "filegen",
				Subsystem: "generator",
				Name:      "generate_duration_seconds",
				Help:      "Time spent generating and writing one artifact",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		),
	}
}

func (m *Metrics) observeSuccess(size int, seconds float64) {
	m.artifacts.WithLabelValues("ok").Inc()
	m.bytesWritten.Add(float64(size))
	m.duration.Observe(seconds)
}

func (m *Metrics) observeFailure() {
	m.artifacts.WithLabelValues("error").Inc()
}
