// Package metrics centralizes Prometheus collector registration for the
// client's background stream goroutines (subscriber, configuration watcher,
// crypto stream). It exposes package-level collectors so instrumented code
// can stay import-cycle-free. Register adds them to the default Prometheus
// registry and is called by client.New; how (or whether) that registry is
// exported -- an HTTP handler, a push gateway, or nothing at all -- is left to
// the caller.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var once sync.Once

var (
	MessagesReceivedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "daprgo",
		Subsystem: "pubsub",
		Name:      "messages_received_total",
		Help:      "Total number of pub/sub messages delivered on a subscriber's message channel.",
	}, []string{"pubsub_name", "topic"})

	MessagesAckedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "daprgo",
		Subsystem: "pubsub",
		Name:      "messages_acked_total",
		Help:      "Total number of pub/sub acks sent, by verdict.",
	}, []string{"status"})

	ReconnectsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "daprgo",
		Subsystem: "stream",
		Name:      "reconnects_total",
		Help:      "Total number of times a background stream reconnected to the sidecar.",
	}, []string{"stream"})

	CryptoBytesStreamedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "daprgo",
		Subsystem: "crypto",
		Name:      "bytes_streamed_total",
		Help:      "Total number of plaintext/ciphertext bytes streamed through Encrypt/Decrypt.",
	}, []string{"operation"})
)

// Register exports every collector declared in this package to
// prometheus.DefaultRegisterer; safe to call multiple times and from
// multiple goroutines.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			MessagesReceivedTotal,
			MessagesAckedTotal,
			ReconnectsTotal,
			CryptoBytesStreamedTotal,
		)
	})
}
