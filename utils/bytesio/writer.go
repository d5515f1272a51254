package bytesio

import (
	"fmt"
	"io"
)

var (
	_ io.Writer     = (*Writer)(nil)
	_ io.ByteWriter = (*Writer)(nil)
	_ io.WriterTo   = (*Writer)(nil)
	_ io.Closer     = (*Writer)(nil)
	_ fmt.Stringer  = (*Writer)(nil)
	_ Sink          = (*Writer)(nil)
)

// minGrow is the smallest capacity a non-empty Writer grows to.
const minGrow = 64

// Writer accumulates bytes in a buffer that grows on demand.
//
// Only buf[:n] holds data; the tail is scratch space. Capacity doubles when
// it runs out and never shrinks, so Reset keeps the storage for reuse.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	// buf is the backing storage; len(buf) is the capacity.
	buf []byte
	// n is the number of valid bytes, 0 <= n <= len(buf).
	n int
}

// NewWriter creates an empty Writer with room for capHint bytes.
// A negative hint is treated as zero.
func NewWriter(capHint int) *Writer {
	if capHint < 0 {
		capHint = 0
	}
	return &Writer{
		buf: make([]byte, capHint),
	}
}

// grow ensures room for extra more bytes.
func (w *Writer) grow(extra int) {
	need := w.n + extra
	if need <= len(w.buf) {
		return
	}
	next := 2 * len(w.buf)
	if next < minGrow {
		next = minGrow
	}
	if next < need {
		next = need
	}
	buf := make([]byte, next)
	copy(buf, w.buf[:w.n])
	w.buf = buf
}

// WriteByte appends a single byte. The error is always nil.
func (w *Writer) WriteByte(v byte) error {
	w.grow(1)
	w.buf[w.n] = v
	w.n++
	return nil
}

// WriteRange appends src[off:off+n]. An invalid window yields ErrOutOfRange
// and leaves the Writer unchanged.
func (w *Writer) WriteRange(src []byte, off, n int) error {
	if err := checkRange("WriteRange", off, n, len(src)); err != nil {
		return err
	}
	w.grow(n)
	w.n += copy(w.buf[w.n:], src[off:off+n])
	return nil
}

// Write appends all of p. It implements io.Writer and never fails.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.WriteRange(p, 0, len(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Accept implements Sink, so a Reader can transfer straight into a Writer.
func (w *Writer) Accept(p []byte) error {
	_, err := w.Write(p)
	return err
}

// Reset empties the Writer in O(1). The capacity is kept.
func (w *Writer) Reset() {
	w.n = 0
}

// Len returns the number of bytes written since the last Reset.
func (w *Writer) Len() int {
	return w.n
}

// Cap returns the current capacity of the backing storage.
func (w *Writer) Cap() int {
	return len(w.buf)
}

// Bytes returns a copy of the accumulated content. Later writes never
// change a slice returned earlier.
func (w *Writer) Bytes() []byte {
	res := make([]byte, w.n)
	copy(res, w.buf[:w.n])
	return res
}

// Reader returns a new Reader over a copy of the accumulated content.
func (w *Writer) Reader() *Reader {
	return newOwnedReader(w.Bytes())
}

// ExportTo hands a copy of the accumulated content to s in one Accept call.
func (w *Writer) ExportTo(s Sink) error {
	return s.Accept(w.Bytes())
}

// WriteTo implements io.WriterTo.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	if err := w.ExportTo(WriterSink(dst)); err != nil {
		return 0, err
	}
	return int64(w.n), nil
}

// DecodeString interprets the content under the named charset. Unknown names
// yield ErrUnsupportedEncoding; malformed input is replaced, not rejected.
func (w *Writer) DecodeString(charset string) (string, error) {
	return Decode(w.buf[:w.n], charset)
}

// String decodes the content as UTF-8, replacing invalid sequences with
// U+FFFD.
func (w *Writer) String() string {
	s, err := Decode(w.buf[:w.n], DefaultCharset)
	if err != nil {
		// UTF-8 is always registered.
		panic(err)
	}
	return s
}

// Close does nothing; it exists so a Writer can stand in for an io.WriteCloser.
func (w *Writer) Close() error {
	return nil
}
