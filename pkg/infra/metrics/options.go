package metrics

import "time"

const (
	DefaultQueueSize     = 1000
	DefaultExportTimeout = 5 * time.Second
)

type workerOptions struct {
	queueSize     int
	exportTimeout time.Duration
}

type Option func(*workerOptions)

// WithQueueSize bounds the export queue. Alerts beyond it are dropped.
func WithQueueSize(n int) Option {
	return func(o *workerOptions) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

func WithExportTimeout(d time.Duration) Option {
	return func(o *workerOptions) {
		if d > 0 {
			o.exportTimeout = d
		}
	}
}
