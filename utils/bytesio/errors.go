package bytesio

import (
	"errors"
	"fmt"
)

// EOF is returned by Next and ReadRange once the reader is exhausted.
// It lies outside the 0-255 byte range, so it cannot be confused with data.
const EOF = -1

var (
	// ErrOutOfRange reports an offset/length pair outside the buffer it
	// addresses. Nothing is mutated when it is returned.
	ErrOutOfRange = errors.New("offset or length out of range")

	// ErrUnsupportedEncoding reports a charset name missing from the registry.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// checkRange validates the [off, off+n) window against a buffer of size size.
func checkRange(op string, off, n, size int) error {
	if off < 0 || n < 0 || off > size || n > size-off {
		return fmt.Errorf("bytesio: %s(off=%d, n=%d, len=%d): %w", op, off, n, size, ErrOutOfRange)
	}
	return nil
}
