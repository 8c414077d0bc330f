package inspect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vss"

// Metrics counts tree access through an Inspector.
type Metrics struct {
	Reads           prometheus.Counter
	Writes          prometheus.Counter
	WriteRejections *prometheus.CounterVec
	Queries         prometheus.Counter
}

// NewMetrics creates the access counters and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Reads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reads_total",
			Help:      "Total number of leaf reads.",
		}),
		Writes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "writes_total",
			Help:      "Total number of accepted leaf writes.",
		}),
		WriteRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "write_rejections_total",
			Help:      "Total number of rejected leaf writes by reason.",
		}, []string{"reason"}),
		Queries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of wildcard queries.",
		}),
	}
}

func (m *Metrics) read() {
	if m != nil {
		m.Reads.Inc()
	}
}

func (m *Metrics) write(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.WriteRejections.WithLabelValues(ErrorKind(err)).Inc()
		return
	}
	m.Writes.Inc()
}

func (m *Metrics) query() {
	if m != nil {
		m.Queries.Inc()
	}
}
