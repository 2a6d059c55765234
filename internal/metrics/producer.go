package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	producerRoundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powchain",
		Subsystem: "producer",
		Name:      "blocks_total",
		Help:      "Count of production rounds by outcome.",
	}, []string{"network", "status"})

	producerRoundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powchain",
		Subsystem: "producer",
		Name:      "round_duration_seconds",
		Help:      "Duration of a propose, mine and send round.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Producer tracks metrics for the block production loop.
type Producer struct {
	network string
}

// NewProducer constructs a Producer; an empty network is reported as "unknown".
func NewProducer(network string) *Producer {
	if network == "" {
		network = "unknown"
	}
	return &Producer{network: network}
}

// ObserveProduce records a production round outcome and duration.
func (m Producer) ObserveProduce(err error, started time.Time) {
	status := sendStatus(err)
	producerRoundsTotal.WithLabelValues(m.network, status).Inc()
	producerRoundDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}
