// Package errs defines sentinel errors shared across ordo packages.
//
// All errors are exported as sentinel values so callers can match them
// with errors.Is regardless of the context wrapped around them at the
// call site:
//
//	if errors.Is(err, errs.ErrUnknownFunction) {
//	    // handle missing registry entry
//	}
package errs

import "errors"

var (
	// ErrUnknownFunction indicates a registry lookup for a growth function
	// key that was never registered.
	ErrUnknownFunction = errors.New("growth function not registered")

	// ErrNilFunction indicates a nil callback was supplied where a
	// function is required.
	ErrNilFunction = errors.New("nil function")

	// ErrInvalidRuns indicates a non-positive run count for a repeated
	// measurement.
	ErrInvalidRuns = errors.New("run count must be positive")

	// ErrInvalidSizes indicates an unusable input-size sequence (for
	// example, a non-positive size in a benchmark sweep).
	ErrInvalidSizes = errors.New("invalid input sizes")

	// ErrNameCollision indicates two distinct algorithm names hashed to the
	// same 64-bit identifier.
	ErrNameCollision = errors.New("algorithm name hash collision")

	// ErrDimensionMismatch indicates matrix operands whose shapes do not
	// admit the requested operation.
	ErrDimensionMismatch = errors.New("matrix dimension mismatch")

	// ErrInvalidConfig indicates a benchmark suite configuration that fails
	// validation.
	ErrInvalidConfig = errors.New("invalid suite configuration")
)
