package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmlmd"
)

// Ensure LoggingBoundary implements htmlmd.Boundary.
var _ htmlmd.Boundary = (*LoggingBoundary)(nil)

// LoggingBoundary wraps a Boundary with logging for conversions. The core
// conversion path stays silent; logging is opt-in by composition.
type LoggingBoundary struct {
	next   htmlmd.Boundary
	logger *slog.Logger
}

// NewLoggingBoundary creates a new LoggingBoundary.
func NewLoggingBoundary(next htmlmd.Boundary, logger *slog.Logger) *LoggingBoundary {
	return &LoggingBoundary{next: next, logger: logger}
}

// Convert delegates to the wrapped boundary and logs the operation.
func (b *LoggingBoundary) Convert(html string) (buf *htmlmd.Buffer, err error) {
	defer func(begin time.Time) {
		outBytes := 0
		if buf != nil {
			outBytes = buf.Len()
		}
		b.logger.Info("conversion",
			"in_bytes", len(html),
			"out_bytes", outBytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Convert(html)
}
