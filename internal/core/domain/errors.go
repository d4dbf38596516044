package domain

import "errors"

// Domain errors represent extraction failures. They circulate only beneath
// the driving port; the extraction service converts every one of them into
// the absence signal before it crosses the component boundary.
var (
	// ErrInvalidInput indicates a nil or malformed document.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a declared MIME type outside the
	// recognised set. Not a failure from the caller's perspective.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNoText indicates a parser ran successfully but produced no
	// usable text.
	ErrNoText = errors.New("no text extracted")

	// ErrParseFailure indicates an underlying parser rejected the document.
	ErrParseFailure = errors.New("parse failure")

	// ErrArchiveTooDeep indicates ZIP nesting beyond the traversal limit.
	ErrArchiveTooDeep = errors.New("archive nesting too deep")
)
