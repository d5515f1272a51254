/*
This file implements the primitive value encodings of CSER on top of the bytesio streams.
Fixed-width integers (U16, U32, U64) are big-endian. Variable integers use a compact
"reverse stop bit" varint: 7 data bits per byte, and the high bit marks the LAST byte.
Booleans are a single 0/1 byte. Byte slices are written as [VarUint length][data].
Canonical enforcement: every value has exactly one valid encoding; anything else panics
with ErrNonCanonicalEncoding, and a truncated input panics with ErrMalformedEncoding.
The adapters in binary.go turn those panics back into errors.
*/
package cser

import (
	"errors"
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"

	"github.com/rony4d/go-bytestream/utils/bytesio"
)

// Standard errors for encoding validation.
var (
	ErrNonCanonicalEncoding = errors.New("non canonical encoding: data not packed minimally or trailing data")
	ErrMalformedEncoding    = errors.New("malformed encoding: structure invalid or truncated")
	ErrTooLargeAlloc        = errors.New("too large allocation: decoded size exceeds limits")
)

// MaxAlloc limits the size of byte slices to prevent OOM attacks during decoding.
const MaxAlloc = 100 * 1024

// maxVarUintLen is the longest valid varint: ceil(64/7) bytes.
const maxVarUintLen = 10

// Writer encodes values into a growable byte stream.
type Writer struct {
	BytesW *bytesio.Writer
}

// Reader decodes values from a bounded byte stream.
type Reader struct {
	BytesR *bytesio.Reader
}

// NewWriter creates a ready-to-use CSER writer.
func NewWriter() *Writer {
	// Pre-allocate some space to avoid immediate re-allocations
	return &Writer{
		BytesW: bytesio.NewWriter(200),
	}
}

// NewReader creates a CSER reader over a copy of raw.
func NewReader(raw []byte) *Reader {
	return &Reader{
		BytesR: bytesio.NewReader(raw),
	}
}

// ----------------------------------------------------------------------------
// Low-Level Encoding Primitives
// ----------------------------------------------------------------------------

// writeUint64Compact writes v 7 bits at a time, lowest group first.
// The high bit is set on the last byte only (1 means STOP).
func writeUint64Compact(bytesW *bytesio.Writer, v uint64) {
	for {
		chunk := byte(v & 0b01111111)
		v >>= 7
		if v == 0 {
			_ = bytesW.WriteByte(chunk | 0b10000000)
			return
		}
		_ = bytesW.WriteByte(chunk)
	}
}

// readUint64Compact decodes the reverse-logic varint.
func readUint64Compact(bytesR *bytesio.Reader) uint64 {
	v := uint64(0)
	for i := 0; ; i++ {
		if i == maxVarUintLen {
			panic(ErrMalformedEncoding)
		}
		c := bytesR.Next()
		if c == bytesio.EOF {
			panic(ErrMalformedEncoding)
		}
		chunk := uint64(c)
		stop := chunk&0b10000000 != 0
		word := chunk & 0b01111111
		if i == maxVarUintLen-1 && word > 1 {
			// only one bit of the 64 is left for the tenth group
			panic(ErrMalformedEncoding)
		}
		v |= word << (i * 7)

		if stop {
			// The last (highest) group cannot be zero unless the number is zero.
			if i > 0 && word == 0 {
				panic(ErrNonCanonicalEncoding)
			}
			return v
		}
	}
}

// read consumes exactly n bytes or panics.
func (r *Reader) read(n int) []byte {
	buf, err := r.BytesR.ReadN(n)
	if err != nil || len(buf) != n {
		panic(ErrMalformedEncoding)
	}
	return buf
}

// ----------------------------------------------------------------------------
// Fixed and variable width integers
// ----------------------------------------------------------------------------

// U8 writes a single byte.
func (w *Writer) U8(v uint8) {
	_ = w.BytesW.WriteByte(v)
}
func (r *Reader) U8() uint8 {
	return r.read(1)[0]
}

func (w *Writer) U16(v uint16) {
	_, _ = w.BytesW.Write(bigendian.Uint16ToBytes(v))
}
func (r *Reader) U16() uint16 {
	return bigendian.BytesToUint16(r.read(2))
}

func (w *Writer) U32(v uint32) {
	_, _ = w.BytesW.Write(bigendian.Uint32ToBytes(v))
}
func (r *Reader) U32() uint32 {
	return bigendian.BytesToUint32(r.read(4))
}

func (w *Writer) U64(v uint64) {
	_, _ = w.BytesW.Write(bigendian.Uint64ToBytes(v))
}
func (r *Reader) U64() uint64 {
	return bigendian.BytesToUint64(r.read(8))
}

// VarUint writes v in 1..10 bytes (used for lengths and counters).
func (w *Writer) VarUint(v uint64) {
	writeUint64Compact(w.BytesW, v)
}
func (r *Reader) VarUint() uint64 {
	return readUint64Compact(r.BytesR)
}

// I64 writes a signed int64.
// Format: [Sign Bool] + [Absolute Value as VarUint]
func (w *Writer) I64(v int64) {
	w.Bool(v < 0)
	if v < 0 {
		w.VarUint(uint64(-v))
	} else {
		w.VarUint(uint64(v))
	}
}
func (r *Reader) I64() int64 {
	neg := r.Bool()
	abs := r.VarUint()

	// Negative zero is illegal.
	if neg && abs == 0 {
		panic(ErrNonCanonicalEncoding)
	}
	if neg {
		if abs > 1<<63 {
			panic(ErrMalformedEncoding)
		}
		return -int64(abs)
	}
	if abs > 1<<63-1 {
		panic(ErrMalformedEncoding)
	}
	return int64(abs)
}

// Bool writes 1 or 0. Any other byte value is rejected on read.
func (w *Writer) Bool(v bool) {
	b := uint8(0)
	if v {
		b = 1
	}
	w.U8(b)
}
func (r *Reader) Bool() bool {
	b := r.U8()
	if b > 1 {
		panic(ErrNonCanonicalEncoding)
	}
	return b != 0
}

// ----------------------------------------------------------------------------
// Byte slices
// ----------------------------------------------------------------------------

// FixedBytes writes raw bytes whose length the reader already knows.
func (w *Writer) FixedBytes(v []byte) {
	_, _ = w.BytesW.Write(v)
}
func (r *Reader) FixedBytes(v []byte) {
	copy(v, r.read(len(v)))
}

// SliceBytes handles variable length byte arrays.
// Format: [Length as VarUint] + [Raw Bytes]
func (w *Writer) SliceBytes(v []byte) {
	w.VarUint(uint64(len(v)))
	w.FixedBytes(v)
}
func (r *Reader) SliceBytes(maxLen int) []byte {
	size := r.VarUint()
	if size > uint64(maxLen) || size > MaxAlloc {
		panic(ErrTooLargeAlloc)
	}
	return r.read(int(size))
}

// PaddedBytes returns b left-padded with zeros to at least n bytes.
func PaddedBytes(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	padding := make([]byte, n-len(b))
	return append(padding, b...)
}

// BigInt writes the magnitude of v as a byte slice; the sign is dropped.
// Callers encode signed amounts separately.
func (w *Writer) BigInt(v *big.Int) {
	bigBytes := []byte{}
	if v.Sign() != 0 {
		bigBytes = v.Bytes()
	}
	w.SliceBytes(bigBytes)
}

func (r *Reader) BigInt() *big.Int {
	buf := r.SliceBytes(512) // Limit max big int size
	if len(buf) == 0 {
		return new(big.Int)
	}
	// A leading zero byte would give the same number a second encoding.
	if buf[0] == 0 {
		panic(ErrNonCanonicalEncoding)
	}
	return new(big.Int).SetBytes(buf)
}
