package metric

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics registers collectors on first use. A metric name
// must always be reported with the same set of label names.
type PrometheusMetrics struct {
	registry  *prometheus.Registry
	namespace string
	labels    Labels
	vectors   *vectors
}

type vectors struct {
	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

func NewPrometheus(namespace string) *PrometheusMetrics {
	return &PrometheusMetrics{
		registry:  prometheus.NewRegistry(),
		namespace: namespace,
		labels:    nil,
		vectors: &vectors{
			counters:   make(map[string]*prometheus.CounterVec),
			histograms: make(map[string]*prometheus.HistogramVec),
		},
	}
}

func (m *PrometheusMetrics) With(labels Labels) Metrics {
	merged := make(Labels, len(m.labels)+len(labels))
	maps.Copy(merged, m.labels)
	maps.Copy(merged, labels)

	result := *m
	result.labels = merged
	return &result
}

func (m *PrometheusMetrics) Increment(name string) {
	counter, err := m.counter(name)
	if err != nil {
		return
	}

	counter.With(prometheus.Labels(m.labels)).Inc()
}

func (m *PrometheusMetrics) Duration(name string, d time.Duration) {
	histogram, err := m.histogram(name)
	if err != nil {
		return
	}

	histogram.With(prometheus.Labels(m.labels)).Observe(d.Seconds())
}

func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *PrometheusMetrics) counter(name string) (*prometheus.CounterVec, error) {
	m.vectors.mu.Lock()
	defer m.vectors.mu.Unlock()

	key := vectorKey(name, m.labels)
	if counter, ok := m.vectors.counters[key]; ok {
		return counter, nil
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      name,
		Help:      name,
	}, labelNames(m.labels))
	if err := m.registry.Register(counter); err != nil {
		return nil, fmt.Errorf("register counter %s: %w", name, err)
	}

	m.vectors.counters[key] = counter
	return counter, nil
}

func (m *PrometheusMetrics) histogram(name string) (*prometheus.HistogramVec, error) {
	m.vectors.mu.Lock()
	defer m.vectors.mu.Unlock()

	key := vectorKey(name, m.labels)
	if histogram, ok := m.vectors.histograms[key]; ok {
		return histogram, nil
	}

	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      name,
		Help:      name,
		Buckets:   prometheus.DefBuckets,
	}, labelNames(m.labels))
	if err := m.registry.Register(histogram); err != nil {
		return nil, fmt.Errorf("register histogram %s: %w", name, err)
	}

	m.vectors.histograms[key] = histogram
	return histogram, nil
}

func labelNames(labels Labels) []string {
	return slices.Sorted(maps.Keys(labels))
}

func vectorKey(name string, labels Labels) string {
	return name + "{" + strings.Join(labelNames(labels), ",") + "}"
}
