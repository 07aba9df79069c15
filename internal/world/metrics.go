package world

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics инкапсулирует Prometheus-метрики мира.
// Методы безопасны для nil-получателя.
type Metrics struct {
	chunksLoaded prometheus.Gauge
	mutations    *prometheus.CounterVec
	meshEntries  prometheus.Counter
	notLoaded    prometheus.Counter
}

// NewMetrics создаёт метрики и регистрирует их в reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		chunksLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "world",
			Name:      "chunks_loaded",
			Help:      "Количество загруженных чанков.",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "world",
			Name:      "block_mutations_total",
			Help:      "Успешные изменения блоков по операциям.",
		}, []string{"op"}),
		meshEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "world",
			Name:      "mesh_entries_recomputed_total",
			Help:      "Пересчитанные записи сеток видимости.",
		}),
		notLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "world",
			Name:      "chunk_not_loaded_errors_total",
			Help:      "Изменения, отклонённые из-за незагруженного чанка.",
		}),
	}

	for _, c := range []prometheus.Collector{m.chunksLoaded, m.mutations, m.meshEntries, m.notLoaded} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register world metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) setChunks(n int) {
	if m == nil {
		return
	}
	m.chunksLoaded.Set(float64(n))
}

func (m *Metrics) mutation(op ChangeOp) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op.String()).Inc()
}

func (m *Metrics) meshRecomputed(n int) {
	if m == nil || n == 0 {
		return
	}
	m.meshEntries.Add(float64(n))
}

func (m *Metrics) chunkNotLoaded() {
	if m == nil {
		return
	}
	m.notLoaded.Inc()
}
