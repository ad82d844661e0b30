package files

import (
	"context"
	"time"
)

// Error kinds attached to failed invocations.
const (
	ErrorKindNotFound = "not_found"
	ErrorKindTooLarge = "too_large"
	ErrorKindInvalid  = "invalid_arguments"
	ErrorKindStorage  = "storage"
)

// Invocation describes one completed file operation.
type Invocation struct {
	Operation   string
	Filename    string
	Success     bool
	Error       string
	ErrorKind   string
	Size        int64
	ContentType string
	Duration    time.Duration
}

// Observer is notified after every file operation. Observers cannot change
// the envelope returned to the caller.
type Observer interface {
	Observe(ctx context.Context, inv Invocation)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, inv Invocation)

func (f ObserverFunc) Observe(ctx context.Context, inv Invocation) {
	f(ctx, inv)
}

// MetricsRecorder is the subset of core/metrics.PrometheusMetrics the tools feed.
type MetricsRecorder interface {
	RecordSuccess(operation string)
	RecordError(operation, errorType string)
	RecordDuration(operation string, seconds float64)
	RecordFileSize(contentType string, bytes int64)
}

// MetricsObserver reports invocations to m.
func MetricsObserver(m MetricsRecorder) Observer {
	return ObserverFunc(func(_ context.Context, inv Invocation) {
		m.RecordDuration(inv.Operation, inv.Duration.Seconds())
		if !inv.Success {
			m.RecordError(inv.Operation, inv.ErrorKind)
			return
		}
		m.RecordSuccess(inv.Operation)
		if inv.ContentType != "" {
			m.RecordFileSize(inv.ContentType, inv.Size)
		}
	})
}
