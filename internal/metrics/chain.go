// Package metrics holds the Prometheus collectors for the chain and the producer.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/powchain/internal/blockchain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainMineTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powchain",
		Subsystem: "miner",
		Name:      "mine_total",
		Help:      "Count of nonce searches by outcome.",
	}, []string{"network", "status"})

	chainMineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powchain",
		Subsystem: "miner",
		Name:      "mine_duration_seconds",
		Help:      "Duration of a nonce search.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	chainMineAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powchain",
		Subsystem: "miner",
		Name:      "mine_attempts",
		Help:      "Nonces tried per search.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 14),
	}, []string{"network"})

	chainSendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powchain",
		Subsystem: "chain",
		Name:      "send_total",
		Help:      "Count of blocks offered to the chain by verification outcome.",
	}, []string{"network", "status"})

	chainSendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powchain",
		Subsystem: "chain",
		Name:      "send_duration_seconds",
		Help:      "Duration of block verification and append.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	chainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "powchain",
		Subsystem: "chain",
		Name:      "height",
		Help:      "Number of blocks in the chain, genesis included.",
	}, []string{"network"})
)

// Chain records mining and verification outcomes for one chain.
type Chain struct {
	network string
}

// NewChain constructs a Chain; an empty network is reported as "unknown".
func NewChain(network string) *Chain {
	if network == "" {
		network = "unknown"
	}
	return &Chain{network: network}
}

// ObserveMine records a nonce search outcome, its duration and attempt count.
func (m Chain) ObserveMine(err error, attempts uint64, started time.Time) {
	status := "success"
	switch {
	case err == nil:
	case errors.Is(err, blockchain.ErrMiningExhausted):
		status = "exhausted"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = "canceled"
	default:
		status = "error"
	}
	chainMineTotal.WithLabelValues(m.network, status).Inc()
	chainMineDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	chainMineAttempts.WithLabelValues(m.network).Observe(float64(attempts))
}

// ObserveSend records the verification outcome of a block offered to the chain.
func (m Chain) ObserveSend(err error, started time.Time) {
	status := sendStatus(err)
	chainSendTotal.WithLabelValues(m.network, status).Inc()
	chainSendDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// SetHeight records the current chain length.
func (m Chain) SetHeight(height int) {
	chainHeight.WithLabelValues(m.network).Set(float64(height))
}

func sendStatus(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, blockchain.ErrRejectedLinkage):
		return "rejected_linkage"
	case errors.Is(err, blockchain.ErrRejectedProofOfWork):
		return "rejected_pow"
	default:
		return "error"
	}
}
