package htmlmd

// Callback delivers the result of an asynchronous conversion. Exactly one
// of its arguments is populated: (nil, markdown) on success, (err, "") on
// failure. A callback runs exactly once per scheduled conversion.
type Callback func(err error, markdown string)

// Converter exposes HTML-to-Markdown conversion in two calling conventions.
type Converter interface {
	// ConvertSync converts html on the calling goroutine and blocks until
	// the conversion finishes. Returns ECONVERSION if the boundary signals
	// failure; no output is returned in that case.
	ConvertSync(html string) (string, error)

	// Convert schedules an asynchronous conversion and returns immediately.
	// The callback runs exactly once, never on the calling goroutine, with
	// either the Markdown result or the failure. Returns EINVALID if cb is
	// nil, in which case no work is scheduled. Once scheduled, a conversion
	// cannot be cancelled. Concurrently scheduled conversions complete in
	// no particular order.
	Convert(html string, cb Callback) error
}
