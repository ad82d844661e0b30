package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	m := New("file_agent", nil)

	m.RecordSuccess("read_file")
	m.RecordSuccess("read_file")
	m.RecordError("write_file", "upload")
	m.RecordDuration("read_file", 0.02)
	m.RecordFileSize("text/plain", 2048)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.callsTotal.WithLabelValues("read_file", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.callsTotal.WithLabelValues("write_file", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errorsTotal.WithLabelValues("write_file", "upload")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.durationSeconds))
	assert.Equal(t, 1, testutil.CollectAndCount(m.fileSizeBytes))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("file_agent", nil)
		New("file_agent", nil)
	})

	reg := prometheus.NewRegistry()
	New("file_agent", reg)
	assert.Panics(t, func() { New("file_agent", reg) })
}

func TestHandler(t *testing.T) {
	m := New("file_agent", nil)
	m.RecordSuccess("list_files")
	m.RecordFileSize("text/plain", 10)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `file_agent_tool_calls_total{operation="list_files",status="success"} 1`)
	assert.Contains(t, string(body), "# HELP file_agent_file_size_bytes Sizes of files written through the tools.")
}
