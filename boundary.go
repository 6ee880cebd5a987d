package htmlmd

import "sync"

// Boundary is the low-level conversion contract: given HTML, produce a
// Markdown result buffer or an error. A successful call returns a non-nil
// buffer whose ownership transfers to the caller; a failed call returns no
// buffer, never partial output. Empty input yields an empty buffer, not an
// error.
//
// Boundary calls carry no context: once started, a conversion runs to
// completion. Neither cancellation nor deadlines are supported at this
// layer; callers that need a timeout must impose one themselves.
type Boundary interface {
	Convert(html string) (*Buffer, error)
}

// Buffer holds a conversion result allocated by a Boundary. Ownership
// transfers to the caller, who must copy the contents into an owned value
// and then call Release exactly once, on every exit path.
type Buffer struct {
	mu       sync.Mutex
	data     []byte
	release  func()
	released bool
}

// NewBuffer wraps a boundary-allocated result. The release hook, if
// non-nil, runs once when the buffer is released; implementations that hand
// out memory owned by a foreign allocator use it to free that memory.
// Pure-Go implementations pass nil.
func NewBuffer(data []byte, release func()) *Buffer {
	return &Buffer{data: data, release: release}
}

// Bytes returns the buffered result, or nil once the buffer has been
// released. The slice is only valid until Release is called.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// String returns an owned copy of the buffered result, or "" once the
// buffer has been released.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.data)
}

// Len returns the length of the buffered result in bytes, or 0 once the
// buffer has been released.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Release frees the underlying result and invalidates the buffer. It must
// be called exactly once; a second call returns EINTERNAL.
func (b *Buffer) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return Errorf(EINTERNAL, "buffer already released")
	}
	b.released = true
	b.data = nil
	if b.release != nil {
		b.release()
	}
	return nil
}
