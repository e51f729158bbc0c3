package render

import "errors"

// Errors for display operations.
var (
	// ErrUnknownColormap indicates an unrecognized colormap name.
	ErrUnknownColormap = errors.New("render: unknown colormap")

	// ErrTitleCount indicates a title list that matches neither one panel
	// nor all of them.
	ErrTitleCount = errors.New("render: need one title per panel, a single shared title, or none")

	// ErrEmptyStack indicates a montage request with no panels.
	ErrEmptyStack = errors.New("render: empty stack")
)
