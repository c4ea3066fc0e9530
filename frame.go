package framing

import (
	"fmt"
	"io"
)

// Send frames payload onto w: a capacity-derived header followed by the
// payload bytes, each pushed with WriteFully. capacity is the receive
// window the peer declared out of band; it fixes the header width, so
// both ends must use the same value.
//
// A nil or empty payload view fails with ErrData before anything is
// written. A payload too long for the header width fails with ErrTooBig.
// After any error the stream may be mid-frame and must not be reused
// for a clean retry.
func Send(w io.Writer, payload View, capacity uint64) error {
	if payload == nil {
		return fmt.Errorf("%w: nil payload view", ErrData)
	}
	p := payload.Bytes()
	if len(p) == 0 {
		return fmt.Errorf("%w: empty payload view", ErrData)
	}

	h, err := HeaderFor(capacity, uint64(len(p)))
	if err != nil {
		return err
	}

	var scratch [MaxHeaderSize]byte
	n, err := h.MarshalTo(scratch[:])
	if err != nil {
		return err
	}
	if err := WriteFully(w, scratch[:n]); err != nil {
		return err
	}
	return WriteFully(w, p)
}

// Receive reads one frame from r into buf and returns the payload length
// now valid in buf's window. Bytes past the returned count are stale.
//
// The expected header width is derived from buf's capacity before any
// byte is read; a header whose own width byte disagrees means the stream
// is desynchronized or the peers negotiated different capacities, and
// fails with ErrData immediately. A declared length larger than the
// window also fails with ErrData, before any payload byte is read, so a
// hostile length prefix can never overrun the caller's buffer.
func Receive(r io.Reader, buf MutableView) (int, error) {
	if buf == nil {
		return 0, fmt.Errorf("%w: nil receive view", ErrData)
	}
	window := buf.Bytes()
	capacity := buf.Capacity()

	width := HeaderSize(capacity)
	var scratch [MaxHeaderSize]byte
	if err := ReadFully(r, scratch[:width]); err != nil {
		return 0, err
	}

	var h Header
	if err := h.UnmarshalBinary(scratch[:width]); err != nil {
		return 0, err
	}
	if h.Width != width {
		return 0, fmt.Errorf("%w: header reports width %d, capacity %d implies width %d", ErrData, h.Width, capacity, width)
	}
	if h.Length > uint64(capacity) {
		return 0, fmt.Errorf("%w: declared payload length %d exceeds receive capacity %d", ErrData, h.Length, capacity)
	}

	if err := ReadFully(r, window[:h.Length]); err != nil {
		return 0, err
	}
	return int(h.Length), nil
}
