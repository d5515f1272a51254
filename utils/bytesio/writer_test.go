package bytesio

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_WriteByte(t *testing.T) {
	w := NewWriter(0)
	require.NoError(t, w.WriteByte(2))
	require.NoError(t, w.WriteByte(3))

	require.Equal(t, []byte{2, 3}, w.Bytes())
	require.Equal(t, 2, w.Len())
}

func TestWriter_WriteRange(t *testing.T) {
	src := []byte{1, 2, 3}
	w := NewWriter(0)

	require.NoError(t, w.WriteRange(src, 0, 3))
	require.NoError(t, w.WriteRange(src, 1, 2))
	require.Equal(t, []byte{1, 2, 3, 2, 3}, w.Bytes())

	require.NoError(t, w.WriteRange(src, 3, 0), "zero length at the end is legal")
	require.Equal(t, 5, w.Len())
}

func TestWriter_WriteRangeOutOfRange(t *testing.T) {
	src := []byte{1, 2, 3}
	tests := []struct {
		name   string
		off, n int
	}{
		{"negative offset", -1, 3},
		{"offset past end", 4, 3},
		{"negative length", 0, -1},
		{"length past end", 0, 4},
		{"offset past end, zero length", 4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter(0)
			require.NoError(t, w.WriteByte(7))

			err := w.WriteRange(src, tc.off, tc.n)
			require.ErrorIs(t, err, ErrOutOfRange)
			require.Equal(t, []byte{7}, w.Bytes())
		})
	}
}

func TestWriter_Write(t *testing.T) {
	w := NewWriter(0)

	n, err := w.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	_, err = w.Write([]byte{4, 5, 6})
	require.NoError(t, err)
	_, err = w.Write(nil)
	require.NoError(t, err)

	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, w.Bytes())
}

func TestWriter_RoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 63, 64, 65, 1000, 1 << 14} {
		src := make([]byte, size)
		_, _ = rand.Read(src)

		w := NewWriter(0)
		_, err := w.Write(src)
		require.NoError(t, err)
		require.Equal(t, src, w.Bytes(), "size %d", size)
	}
}

func TestWriter_Growth(t *testing.T) {
	w := NewWriter(0)
	require.Equal(t, 0, w.Cap())

	require.NoError(t, w.WriteByte(1))
	require.Equal(t, minGrow, w.Cap())

	for i := 1; i < minGrow; i++ {
		require.NoError(t, w.WriteByte(byte(i)))
	}
	require.Equal(t, minGrow, w.Cap(), "no growth until full")

	require.NoError(t, w.WriteByte(0))
	require.Equal(t, 2*minGrow, w.Cap())

	big := make([]byte, 10*minGrow)
	_, _ = w.Write(big)
	require.Equal(t, minGrow+1+len(big), w.Cap(), "a large write grows to exactly what is needed")
	require.Equal(t, minGrow+1+len(big), w.Len())
}

func TestWriter_CapHint(t *testing.T) {
	require.Equal(t, 128, NewWriter(128).Cap())
	require.Equal(t, 0, NewWriter(-1).Cap())
	require.Equal(t, 0, NewWriter(128).Len())
}

func TestWriter_Reset(t *testing.T) {
	w := NewWriter(0)
	_, _ = w.Write([]byte{1, 2, 3})
	capBefore := w.Cap()

	w.Reset()
	require.Equal(t, 0, w.Len())
	require.Equal(t, []byte{}, w.Bytes())
	require.Equal(t, capBefore, w.Cap(), "reset keeps the storage")

	w.Reset()
	require.Equal(t, 0, w.Len())
	require.Equal(t, capBefore, w.Cap())

	require.NoError(t, w.WriteByte(9))
	require.Equal(t, []byte{9}, w.Bytes())
}

func TestWriter_BytesIsSnapshot(t *testing.T) {
	w := NewWriter(8)
	_, _ = w.Write([]byte{1, 2})

	snap := w.Bytes()
	_, _ = w.Write([]byte{3})
	w.Reset()
	_, _ = w.Write([]byte{9, 9})

	require.Equal(t, []byte{1, 2}, snap)

	snap[0] = 0
	require.Equal(t, []byte{9, 9}, w.Bytes())
}

func TestWriter_ExportTo(t *testing.T) {
	src := []byte{1, 2, 3}

	t.Run("writer to writer", func(t *testing.T) {
		w1, w2 := NewWriter(0), NewWriter(0)
		_, _ = w1.Write(src)

		require.NoError(t, w1.ExportTo(w2))
		require.Equal(t, src, w2.Bytes())
		require.Equal(t, src, w1.Bytes(), "export does not consume")
	})

	t.Run("sink error propagates", func(t *testing.T) {
		errSink := errors.New("closed")
		w := NewWriter(0)
		_, _ = w.Write(src)

		err := w.ExportTo(SinkFunc(func([]byte) error { return errSink }))
		require.Equal(t, errSink, err)
	})

	t.Run("WriteTo", func(t *testing.T) {
		var out bytes.Buffer
		w := NewWriter(0)
		_, _ = w.Write(src)

		n, err := w.WriteTo(&out)
		require.NoError(t, err)
		require.Equal(t, int64(3), n)
		require.Equal(t, src, out.Bytes())
	})

	t.Run("into a reader", func(t *testing.T) {
		w := NewWriter(0)
		_, _ = w.Write(src)
		r := w.Reader()
		_, _ = w.Write([]byte{4})

		require.Equal(t, src, r.ReadAll())
	})
}

func TestWriter_DecodeString(t *testing.T) {
	w := NewWriter(0)
	_, _ = w.Write([]byte{1, 2, 3})

	t.Run("ascii", func(t *testing.T) {
		for _, name := range []string{"US-ASCII", "us-ascii", "csASCII"} {
			s, err := w.DecodeString(name)
			require.NoError(t, err, name)
			require.Equal(t, "\u0001\u0002\u0003", s, name)
		}
	})

	t.Run("default", func(t *testing.T) {
		require.Equal(t, "\u0001\u0002\u0003", w.String())
	})

	t.Run("utf-16le dangling byte", func(t *testing.T) {
		s, err := w.DecodeString("UTF-16LE")
		require.NoError(t, err)
		require.Equal(t, "ȁ�", s)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := w.DecodeString("x-no-such-charset")
		require.ErrorIs(t, err, ErrUnsupportedEncoding)
		_, err = w.DecodeString("")
		require.ErrorIs(t, err, ErrUnsupportedEncoding)
	})

	t.Run("after reset", func(t *testing.T) {
		w := NewWriter(0)
		_, _ = w.Write([]byte{1, 2, 3})
		w.Reset()

		s, err := w.DecodeString("US-ASCII")
		require.NoError(t, err)
		require.Equal(t, "", s)
		require.Equal(t, 0, w.Len())
	})
}

func TestDecode_Permissive(t *testing.T) {
	tests := []struct {
		charset string
		in      []byte
		want    string
	}{
		{"UTF-8", []byte("héllo"), "héllo"},
		{"UTF-8", []byte{'a', 0xFF, 'b'}, "a�b"},
		{"US-ASCII", []byte{'a', 0x80, 'b'}, "a�b"},
		{"ISO-8859-1", []byte{'a', 0xE9}, "aé"},
		{"latin1", []byte{0xFF}, "ÿ"},
		{"UTF-16BE", []byte{0x00, 'A', 0x00, 'B'}, "AB"},
	}

	for _, tc := range tests {
		t.Run(tc.charset, func(t *testing.T) {
			got, err := Decode(tc.in, tc.charset)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// Benchmark compares the stream types against bytes.Buffer and bytes.Reader.
func Benchmark(b *testing.B) {
	b.Run("Write", func(b *testing.B) {
		b.Run("Std", func(b *testing.B) {
			w := bytes.NewBuffer(nil)
			for i := 0; i < b.N; i++ {
				w.WriteByte(byte(i))
			}
			require.Equal(b, b.N, w.Len())
		})
		b.Run("Bytesio", func(b *testing.B) {
			w := NewWriter(0)
			for i := 0; i < b.N; i++ {
				_ = w.WriteByte(byte(i))
			}
			require.Equal(b, b.N, w.Len())
		})
	})

	b.Run("Read", func(b *testing.B) {
		src := make([]byte, 1000)
		_, _ = rand.Read(src)

		b.Run("Std", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r := bytes.NewReader(src)
				for j := 0; j < len(src); j++ {
					_, _ = r.ReadByte()
				}
			}
		})
		b.Run("Bytesio", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r := NewReader(src)
				for j := 0; j < len(src); j++ {
					_ = r.Next()
				}
			}
		})
	})
}
