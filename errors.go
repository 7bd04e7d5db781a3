package lsp

import "errors"

var (
	// ErrOddOrder is returned when the filter order is not even. The
	// symmetric/antisymmetric decomposition requires an even order.
	ErrOddOrder = errors.New("lsp: filter order must be even")

	// ErrShortOrder is returned when the filter order is below 2.
	ErrShortOrder = errors.New("lsp: filter order must be >= 2")

	// ErrLengthMismatch is returned when a destination slice is too short
	// for the requested transform.
	ErrLengthMismatch = errors.New("lsp: destination length mismatch")
)
