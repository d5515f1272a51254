// Package bytesio provides two in-memory byte stream primitives.
//
// Reader consumes a fixed byte slice through a cursor and supports
// mark/reset, skip and bulk reads into caller buffers. Writer accumulates
// bytes into a growable buffer and can snapshot, export or decode them.
//
// Both types are plain single-owner values: they hold no locks and must not
// be used from several goroutines without external synchronization. Nothing
// blocks, and Close on either type does nothing.
//
// The two types only meet through the Sink interface:
//
//	w := bytesio.NewWriter(0)
//	r := bytesio.NewReader([]byte{1, 2, 3})
//	if _, err := r.TransferTo(w); err != nil {
//		return err
//	}
//	s, err := w.DecodeString("US-ASCII")
package bytesio
