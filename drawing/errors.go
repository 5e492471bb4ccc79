package drawing

import "errors"

// Sentinel errors for the drawing package.
var (
	// ErrUnknownFormat is returned by LookupFormat for unregistered names.
	ErrUnknownFormat = errors.New("drawing: unknown format")

	// ErrNotBegun is returned by backends asked for output before Begin.
	ErrNotBegun = errors.New("drawing: backend not begun")
)
