package telemetry

import (
	"strings"
	"testing"
	"time"
)

func TestCounters(t *testing.T) {
	m := NewMetricsCollector()

	m.IncrementCounter(MetricToolCalls, 1)
	m.IncrementCounter(MetricToolCalls, 2)
	if got := m.GetCounter(MetricToolCalls); got != 3 {
		t.Errorf("GetCounter = %d, want 3", got)
	}

	if got := m.GetCounter("never.set"); got != 0 {
		t.Errorf("GetCounter for unset counter = %d, want 0", got)
	}
}

func TestMetricForAction(t *testing.T) {
	if got := MetricForAction("count"); got != MetricActionCount {
		t.Errorf("MetricForAction(count) = %q, want %q", got, MetricActionCount)
	}
	if got := MetricForAction("summary"); got != MetricActionSummary {
		t.Errorf("MetricForAction(summary) = %q, want %q", got, MetricActionSummary)
	}
	if got := MetricForAction("keywords"); got != MetricActionKeywords {
		t.Errorf("MetricForAction(keywords) = %q, want %q", got, MetricActionKeywords)
	}
}

func TestTimers(t *testing.T) {
	m := NewMetricsCollector()

	m.RecordTimer(MetricResponseTime, 10*time.Millisecond)
	m.RecordTimer(MetricResponseTime, 30*time.Millisecond)

	if got := m.GetTimerAverage(MetricResponseTime); got != 20*time.Millisecond {
		t.Errorf("GetTimerAverage = %v, want 20ms", got)
	}

	if got := m.GetTimerP95("missing"); got != 0 {
		t.Errorf("GetTimerP95 for unset timer = %v, want 0", got)
	}
}

func TestGaugesAndReset(t *testing.T) {
	m := NewMetricsCollector()

	m.SetGauge(MetricLastInputBytes, 128)
	if got := m.GetGauge(MetricLastInputBytes); got != 128 {
		t.Errorf("GetGauge = %v, want 128", got)
	}

	m.Reset()
	if got := m.GetGauge(MetricLastInputBytes); got != 0 {
		t.Errorf("GetGauge after Reset = %v, want 0", got)
	}
}

func TestGetReport(t *testing.T) {
	m := NewMetricsCollector()
	m.IncrementCounter(MetricActionCount, 2)
	m.RecordTimer(MetricResponseTime, 5*time.Millisecond)

	report := m.GetReport()
	if !strings.Contains(report, MetricActionCount) {
		t.Errorf("Report missing counter %q:\n%s", MetricActionCount, report)
	}
	if !strings.Contains(report, MetricResponseTime) {
		t.Errorf("Report missing timer %q:\n%s", MetricResponseTime, report)
	}
}
