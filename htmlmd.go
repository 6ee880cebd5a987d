// Package htmlmd exposes HTML-to-Markdown conversion behind a narrow
// boundary contract, with both a blocking and a callback-based calling
// convention. The conversion algorithm itself lives in an external library;
// this package only defines the contract and the invocation surface.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., htmltomarkdown/, slog/).
package htmlmd
