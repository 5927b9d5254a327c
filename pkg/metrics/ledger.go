package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LedgerMetrics records ledger activity: entries appended and valuations folded.
type LedgerMetrics struct {
	entries   *prometheus.CounterVec
	valuation prometheus.Counter
	duration  prometheus.Histogram
}

// NewLedgerMetrics registers the ledger metrics on the provided registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	entries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_entries_recorded",
		Help: "Ledger entries appended, by entry kind.",
	}, []string{"kind"})
	valuation := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_valuations_computed",
		Help: "Full valuation recomputes performed.",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ledger_valuation_duration_seconds",
		Help:    "Duration of valuation recomputes in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(entries, valuation, duration)
	return &LedgerMetrics{
		entries:   entries,
		valuation: valuation,
		duration:  duration,
	}
}

// IncEntryRecorded increments the append counter for the given entry kind.
func (m *LedgerMetrics) IncEntryRecorded(kind string) {
	if m == nil || m.entries == nil {
		return
	}
	m.entries.WithLabelValues(normalizeLabel(kind)).Inc()
}

// ObserveValuation records one valuation recompute and its duration.
func (m *LedgerMetrics) ObserveValuation(duration time.Duration) {
	if m == nil || m.valuation == nil {
		return
	}
	m.valuation.Inc()
	m.duration.Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return strings.ReplaceAll(value, " ", "_")
}
