// Package errs defines the sentinel errors shared across cqlkit packages.
package errs

import "errors"

var (
	// ErrNamedValuesUnsupported is returned when a request carrying named
	// values is encoded for a protocol version that cannot express them.
	ErrNamedValuesUnsupported = errors.New("named values require protocol version 3 or higher")

	// ErrValueIndexOutOfRange is returned when a positional bind targets a
	// slot outside the declared value-slot range.
	ErrValueIndexOutOfRange = errors.New("value index out of range")

	// ErrNamedValueCapacity is returned when a named bind introduces more
	// distinct names than the request declared value slots.
	ErrNamedValueCapacity = errors.New("no value slot available for named value")

	// ErrLoopNotInitialized is returned when Run is called on an event loop
	// whose Init did not complete successfully.
	ErrLoopNotInitialized = errors.New("event loop not initialized")

	// ErrGroupSize is returned when an event loop group is created with a
	// non-positive loop count.
	ErrGroupSize = errors.New("event loop group requires at least one loop")

	// ErrShortCompressedBody is returned when a compressed frame body is too
	// short to carry its uncompressed-length prefix.
	ErrShortCompressedBody = errors.New("compressed body shorter than length prefix")
)
