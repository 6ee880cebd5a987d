// Package convert exposes a conversion Boundary to callers in two calling
// conventions: a blocking call-and-return and a fire-and-forget call whose
// result is delivered later through a completion callback.
package convert

import (
	"context"

	"github.com/fwojciec/htmlmd"
	"golang.org/x/sync/semaphore"
)

// Ensure Service implements htmlmd.Converter at compile time.
var _ htmlmd.Converter = (*Service)(nil)

// Service converts HTML to Markdown through a Boundary. A Service is safe
// for concurrent use; conversions share no mutable state.
type Service struct {
	boundary htmlmd.Boundary
	sem      *semaphore.Weighted
}

// Option configures a Service.
type Option func(*Service)

// WithMaxConcurrent caps the number of boundary conversions executing at
// once. Scheduling is unaffected: Convert still returns immediately and
// scheduled conversions wait for a free slot. n < 1 leaves concurrency
// unbounded, which is the default.
func WithMaxConcurrent(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sem = semaphore.NewWeighted(int64(n))
		}
	}
}

// NewService returns a Service backed by the given boundary.
// Returns EINVALID if boundary is nil.
func NewService(boundary htmlmd.Boundary, opts ...Option) (*Service, error) {
	if boundary == nil {
		return nil, htmlmd.Errorf(htmlmd.EINVALID, "boundary required")
	}
	s := &Service{boundary: boundary}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ConvertSync converts html on the calling goroutine and blocks until the
// conversion finishes.
func (s *Service) ConvertSync(html string) (string, error) {
	return s.convert(html)
}

// Convert schedules an asynchronous conversion and returns immediately.
// The callback runs exactly once on a dedicated goroutine with either the
// Markdown result or the failure.
func (s *Service) Convert(html string, cb htmlmd.Callback) error {
	if cb == nil {
		return htmlmd.Errorf(htmlmd.EINVALID, "callback required")
	}
	go func() {
		markdown, err := s.convert(html)
		if err != nil {
			cb(err, "")
			return
		}
		cb(nil, markdown)
	}()
	return nil
}

// convert runs one boundary call, copies the result out of the boundary's
// buffer, and releases the buffer on every exit path.
func (s *Service) convert(html string) (string, error) {
	if s.sem != nil {
		// Acquire with a background context cannot fail.
		_ = s.sem.Acquire(context.Background(), 1)
		defer s.sem.Release(1)
	}

	buf, err := s.boundary.Convert(html)
	if err != nil {
		return "", htmlmd.Errorf(htmlmd.ECONVERSION, "conversion failed: %v", err)
	}
	defer buf.Release()

	return buf.String(), nil
}
