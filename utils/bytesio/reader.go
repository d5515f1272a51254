package bytesio

import (
	"fmt"
	"io"
)

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.WriterTo   = (*Reader)(nil)
	_ io.Closer     = (*Reader)(nil)
)

// Reader consumes a fixed byte sequence through a cursor.
//
// The source is copied at construction and never mutated afterwards.
// Exhaustion is not an error: Next and ReadRange return EOF, the io-style
// methods return io.EOF.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	// buf is the immutable source.
	buf []byte
	// offset is the cursor, 0 <= offset <= len(buf).
	offset int
	// mark is the cursor saved by Mark, 0 <= mark <= len(buf).
	mark int
}

// NewReader creates a Reader over a private copy of bb.
func NewReader(bb []byte) *Reader {
	buf := make([]byte, len(bb))
	copy(buf, bb)
	return newOwnedReader(buf)
}

// Empty returns a Reader with nothing to read.
func Empty() *Reader {
	return newOwnedReader(nil)
}

func newOwnedReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Next consumes and returns the next byte as an int in [0, 255],
// or EOF if the reader is exhausted.
func (r *Reader) Next() int {
	if r.offset >= len(r.buf) {
		return EOF
	}
	b := r.buf[r.offset]
	r.offset++
	return int(b)
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	c := r.Next()
	if c == EOF {
		return 0, io.EOF
	}
	return byte(c), nil
}

// ReadRange copies up to n bytes into dst[off:off+n] and advances the cursor
// by the number copied. It returns EOF if n > 0 and nothing was left.
//
// The window is validated before anything happens: a negative off or n, or
// a window past len(dst), yields ErrOutOfRange with dst and the cursor
// untouched. A zero-length request always returns 0.
func (r *Reader) ReadRange(dst []byte, off, n int) (int, error) {
	if err := checkRange("ReadRange", off, n, len(dst)); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	if r.offset >= len(r.buf) {
		return EOF, nil
	}
	copied := copy(dst[off:off+n], r.buf[r.offset:])
	r.offset += copied
	return copied, nil
}

// Read implements io.Reader on top of ReadRange.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.ReadRange(p, 0, len(p))
	if err != nil {
		return 0, err
	}
	if n == EOF {
		return 0, io.EOF
	}
	return n, nil
}

// ReadFull behaves like ReadRange but reports 0 instead of EOF at the end.
// Since the source is in memory, a single copy already reads as much as
// can be read.
func (r *Reader) ReadFull(dst []byte, off, n int) (int, error) {
	copied, err := r.ReadRange(dst, off, n)
	if err != nil {
		return 0, err
	}
	if copied == EOF {
		return 0, nil
	}
	return copied, nil
}

// ReadAll drains the reader and returns a new slice with the remaining bytes.
// The result is empty, not nil, once the reader is exhausted.
func (r *Reader) ReadAll() []byte {
	res := make([]byte, len(r.buf)-r.offset)
	copy(res, r.buf[r.offset:])
	r.offset = len(r.buf)
	return res
}

// ReadN returns a new slice with the next max bytes, or fewer at the end of
// the source.
func (r *Reader) ReadN(max int) ([]byte, error) {
	if max < 0 {
		return nil, fmt.Errorf("bytesio: ReadN(%d): %w", max, ErrOutOfRange)
	}
	if rest := r.Available(); max > rest {
		max = rest
	}
	res := make([]byte, max)
	copy(res, r.buf[r.offset:r.offset+max])
	r.offset += max
	return res, nil
}

// Skip advances the cursor by min(n, Available()) and returns the distance
// moved. A non-positive n does nothing.
func (r *Reader) Skip(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if rest := int64(r.Available()); n > rest {
		n = rest
	}
	r.offset += int(n)
	return n
}

// Available returns the number of bytes left to read.
func (r *Reader) Available() int {
	return len(r.buf) - r.offset
}

// Position returns the current cursor index.
func (r *Reader) Position() int {
	return r.offset
}

// Exhausted reports whether every byte has been consumed.
func (r *Reader) Exhausted() bool {
	return r.offset == len(r.buf)
}

// Mark remembers the current position for Reset. readLimit is accepted for
// the usual mark/reset shape and ignored: a mark never expires.
func (r *Reader) Mark(readLimit int) {
	r.mark = r.offset
}

// Reset moves the cursor back to the last mark, or to the start if Mark was
// never called.
func (r *Reader) Reset() {
	r.offset = r.mark
}

// MarkSupported always reports true.
func (r *Reader) MarkSupported() bool {
	return true
}

// TransferTo drains the remaining bytes and hands a copy of them to s in one
// Accept call. The cursor ends at the end of the source even if s fails; the
// sink's error is returned as is.
func (r *Reader) TransferTo(s Sink) (int, error) {
	rest := r.ReadAll()
	if err := s.Accept(rest); err != nil {
		return 0, err
	}
	return len(rest), nil
}

// WriteTo implements io.WriterTo.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	n, err := r.TransferTo(WriterSink(w))
	return int64(n), err
}

// Close does nothing; it exists so a Reader can stand in for an io.ReadCloser.
func (r *Reader) Close() error {
	return nil
}
