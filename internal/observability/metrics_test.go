package observability

import (
	"testing"
	"time"
)

func TestMetricsRequestCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/admin/customers", "POST", 201, 5*time.Millisecond)
	m.RecordRequest("/admin/customers", "POST", 201, 7*time.Millisecond)
	m.RecordRequest("/admin/agents", "POST", 422, time.Millisecond)

	if got := m.RequestCount("/admin/customers", "POST", 201); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := m.RequestCount("/admin/agents", "POST", 422); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := m.RequestCount("/admin/agents", "GET", 200); got != 0 {
		t.Errorf("expected 0 for unseen key, got %d", got)
	}
}

func TestMetricsNilReceiverSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/x", "GET", 200, 0)
	m.RecordError("/x", "GET", "INTERNAL_ERROR")
	if m.RequestCount("/x", "GET", 200) != 0 {
		t.Error("nil metrics must report zero")
	}
}
