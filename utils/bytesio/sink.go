package bytesio

import "io"

// Sink accepts a bulk byte payload. Reader.TransferTo and Writer.ExportTo
// target it, so neither side depends on the other's concrete type.
//
// Implementations must not retain p after Accept returns.
type Sink interface {
	Accept(p []byte) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(p []byte) error

// Accept calls f(p).
func (f SinkFunc) Accept(p []byte) error {
	return f(p)
}

// WriterSink turns any io.Writer into a Sink. A short write without an
// error is reported as io.ErrShortWrite.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(p []byte) error {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		if n != len(p) {
			return io.ErrShortWrite
		}
		return nil
	})
}
