// Package errs defines the sentinel errors returned by the jsbon codec.
//
// Callers should use errors.Is against these sentinels rather than matching on
// error text, since call sites wrap them with fmt.Errorf("%w: ...") to attach
// positional context.
package errs

import "errors"

var (
	// ErrInvalidData is returned when decode input is empty or not a usable byte buffer.
	ErrInvalidData = errors.New("jsbon: invalid data")

	// ErrVersionMismatch is returned when the decoded major version exceeds MajorVersion.
	ErrVersionMismatch = errors.New("jsbon: version mismatch")

	// ErrChecksumMismatch is returned when a present CRC32 does not match the recomputed value.
	ErrChecksumMismatch = errors.New("jsbon: checksum mismatch")

	// ErrUnsupportedType is returned when the encoder is given a value outside the Value universe.
	ErrUnsupportedType = errors.New("jsbon: unsupported type")

	// ErrInvalidCount is returned when a count read from input is negative, is not a
	// valid uint32 varint, or claims more elements than the remaining input can hold.
	ErrInvalidCount = errors.New("jsbon: invalid count")

	// ErrUnexpectedTag is returned when a tag byte is not legal in its decode context.
	ErrUnexpectedTag = errors.New("jsbon: unexpected tag")

	// ErrOutOfBoundsReference is returned when a string/name index or back-edge position
	// is not registered at its point of use.
	ErrOutOfBoundsReference = errors.New("jsbon: out of bounds reference")

	// ErrTruncated is returned when the stream ends before a required field is fully read.
	ErrTruncated = errors.New("jsbon: truncated stream")
)
