package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordAccessDecision(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordAccessDecision(true)
	m.RecordAccessDecision(false)
	m.RecordAccessDecision(false)

	if got := testutil.ToFloat64(m.AccessDecisions.WithLabelValues("granted")); got != 1 {
		t.Errorf("expected 1 granted decision, got %v", got)
	}
	if got := testutil.ToFloat64(m.AccessDecisions.WithLabelValues("denied")); got != 2 {
		t.Errorf("expected 2 denied decisions, got %v", got)
	}
}

func TestMetrics_ObserveRequest(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveRequest("/garage.registry.v1.EmployeeRegistry/AddEmployee", "OK", time.Now())

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/garage.registry.v1.EmployeeRegistry/AddEmployee", "OK")); got != 1 {
		t.Errorf("expected 1 request, got %v", got)
	}
	if got := testutil.CollectAndCount(m.RequestDuration); got != 1 {
		t.Errorf("expected 1 histogram series, got %d", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordAccessDecision(true)
	m.ObserveRequest("method", "OK", time.Now())
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordAccessDecision(true)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET returned error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), `garage_registry_access_decisions_total{result="granted"} 1`) {
		t.Fatalf("expected access decision series in exposition, got:\n%s", body)
	}
}
