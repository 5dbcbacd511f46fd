package llvm

import "errors"

var (
	// ErrUnknownTarget is returned when no registered target matches a name
	// or a triple.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrEmit is returned when a target machine fails to emit a module.
	ErrEmit = errors.New("failed to emit module")

	// ErrInvalidModule is returned when a module fails verification.
	ErrInvalidModule = errors.New("invalid module")

	// ErrWriteIR is returned when the textual IR of a module can't be written.
	ErrWriteIR = errors.New("failed to write IR")
)
