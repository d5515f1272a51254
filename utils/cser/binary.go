package cser

import "github.com/rony4d/go-bytestream/utils/bytesio"

// MarshalBinaryAdapter runs marshalCser against a fresh Writer and returns a
// snapshot of everything it wrote.
func MarshalBinaryAdapter(marshalCser func(*Writer) error) ([]byte, error) {
	w := NewWriter()
	if err := marshalCser(w); err != nil {
		return nil, err
	}
	return w.BytesW.Bytes(), nil
}

// UnmarshalBinaryAdapter runs unmarshalCser over raw and then checks that
// every byte was consumed.
//
// Decoding primitives panic on bad input; the panic is recovered here. Panics
// carrying one of this package's errors return that error, anything else is
// reported as ErrMalformedEncoding.
func UnmarshalBinaryAdapter(raw []byte, unmarshalCser func(reader *Reader) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
	}()

	r := NewReader(raw)
	if err = unmarshalCser(r); err != nil {
		return err
	}

	// Leftover bytes mean the same value has more than one encoding.
	if !r.BytesR.Exhausted() {
		return ErrNonCanonicalEncoding
	}
	return nil
}

func recoveredError(r interface{}) error {
	switch r {
	case ErrNonCanonicalEncoding, ErrTooLargeAlloc, ErrMalformedEncoding:
		return r.(error)
	}
	return ErrMalformedEncoding
}

// Decode is a convenience for decoding a whole message from a reader. The
// reader is drained even if decoding fails.
func Decode(src *bytesio.Reader, unmarshalCser func(reader *Reader) error) error {
	return UnmarshalBinaryAdapter(src.ReadAll(), unmarshalCser)
}
