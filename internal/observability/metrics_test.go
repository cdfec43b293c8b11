package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/shell", "GET", 200, 2*time.Millisecond)
	m.RecordRequest("/shell", "GET", 200, 4*time.Millisecond)
	m.RecordError("/offerings/form/submit", "POST", "VALIDATION_FAILED")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/shell|GET|200"])
	assert.Equal(t, int64(2), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.Errors["/offerings/form/submit|POST|VALIDATION_FAILED"])
	assert.InDelta(t, 3.0, snap.AverageDurationMs, 0.001)

	snap.Requests["/shell|GET|200"] = 99
	assert.Equal(t, int64(2), m.Snapshot().Requests["/shell|GET|200"])
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Empty(t, m.Snapshot().Requests)
}
