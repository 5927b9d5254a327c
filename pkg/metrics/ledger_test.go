package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestLedgerMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewLedgerMetrics(reg)

	metrics.IncEntryRecorded("reinvest")
	metrics.IncEntryRecorded("reinvest")
	metrics.IncEntryRecorded("withdraw_profit")
	metrics.ObserveValuation(3 * time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "ledger_entries_recorded", "kind", "reinvest"); err != nil {
		t.Fatalf("fetch reinvest counter: %v", err)
	} else if got != 2 {
		t.Fatalf("expected reinvest=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "ledger_entries_recorded", "kind", "withdraw_profit"); err != nil {
		t.Fatalf("fetch withdraw counter: %v", err)
	} else if got != 1 {
		t.Fatalf("expected withdraw_profit=1, got %f", got)
	}

	mf := findMetricFamily(mfs, "ledger_valuations_computed")
	if mf == nil || len(mf.GetMetric()) == 0 {
		t.Fatal("valuation counter not exported")
	}
	if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Fatalf("expected valuations=1, got %f", got)
	}

	hist := findMetricFamily(mfs, "ledger_valuation_duration_seconds")
	if hist == nil || len(hist.GetMetric()) == 0 {
		t.Fatal("valuation histogram not exported")
	}
	if sum := hist.GetMetric()[0].GetHistogram().GetSampleSum(); sum <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", sum)
	}
}

func TestLedgerMetricsNilRegistererIsNoop(t *testing.T) {
	metrics := NewLedgerMetrics(nil)
	metrics.IncEntryRecorded("topup")
	metrics.ObserveValuation(time.Millisecond)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
