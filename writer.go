package framing

import "io"

// Writer frames payloads onto a single stream with a fixed negotiated
// capacity. It tracks the total bytes pushed onto the stream and latches
// the first error: after a failure every call becomes a no-op returning
// that error, since a failed write may leave the stream mid-frame.
//
// A Writer is not safe for concurrent use; all sends on one stream must
// be serialized by the caller.
type Writer struct {
	w        io.Writer
	capacity uint64
	count    int64 // total bytes written, headers included
	err      error // first error encountered. Subsequent writes become no-ops.
}

// NewWriter returns a Writer that frames payloads onto w for a peer whose
// receive window holds capacity bytes.
func NewWriter(w io.Writer, capacity uint64) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}
	return &Writer{w: w, capacity: capacity}, nil
}

// WriteFrame frames one payload onto the stream. Frames up to
// CoalesceSize bytes are assembled in a pooled buffer and pushed with a
// single write; larger payloads are written after the header without
// copying.
func (w *Writer) WriteFrame(payload []byte) error {
	if w.err != nil {
		return w.err
	}

	total := int(HeaderSize(w.capacity)) + len(payload)
	if len(payload) > 0 && total <= CoalesceSize {
		h, err := HeaderFor(w.capacity, uint64(len(payload)))
		if err != nil {
			return w.setError(err)
		}
		bp := framePool.Get().(*[]byte)
		frame := (*bp)[:0]
		frame = append(frame, byte(h.Width))
		for i := 0; i < int(h.Width)-1; i++ {
			frame = append(frame, byte(h.Length>>(8*i)))
		}
		frame = append(frame, payload...)
		err = WriteFully(w.w, frame)
		framePool.Put(bp)
		if err != nil {
			return w.setError(err)
		}
		w.count += int64(total)
		return nil
	}

	if err := Send(w.w, Slice(payload), w.capacity); err != nil {
		return w.setError(err)
	}
	w.count += int64(total)
	return nil
}

// Capacity returns the negotiated receive capacity of the peer.
func (w *Writer) Capacity() uint64 { return w.capacity }

// Count returns the total bytes written to the stream, headers included.
func (w *Writer) Count() int64 { return w.count }

// Err returns the latched error, if any.
func (w *Writer) Err() error { return w.err }

// Result returns the final count and error state.
func (w *Writer) Result() (int64, error) { return w.count, w.err }

// setError records the first non-nil error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (w *Writer) setError(err error) error {
	if w.err == nil && err != nil {
		w.err = err
	}
	return w.err
}
