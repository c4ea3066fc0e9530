package framing

import (
	"fmt"
	"io"
)

// WriteFully writes all of buf to w, retrying after short writes until
// every byte has been accepted. The first hard failure aborts the loop:
// writer errors wrap ErrWrite with the writer's own error as the cause,
// and a count outside [0, len(buf)] wraps ErrInvalidWrite.
func WriteFully(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n, err := w.Write(buf)
		if n < 0 || n > len(buf) {
			return fmt.Errorf("%w: %w", ErrWrite, ErrInvalidWrite)
		}
		buf = buf[n:]
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		if n == 0 {
			// A writer that accepts nothing and reports no error would
			// spin this loop forever.
			return fmt.Errorf("%w: %w", ErrWrite, io.ErrNoProgress)
		}
	}
	return nil
}

// ReadFully reads from r into successive offsets of buf until the buffer
// is full. End-of-stream before len(buf) bytes have arrived is framing
// corruption, not a clean termination (the protocol has no end-of-stream
// sentinel), so it surfaces as ErrData; any other reader error wraps
// ErrRead with the reader's error as the cause.
func ReadFully(r io.Reader, buf []byte) error {
	for off := 0; off < len(buf); {
		n, err := r.Read(buf[off:])
		if n < 0 || n > len(buf)-off {
			return fmt.Errorf("%w: %w", ErrRead, ErrInvalidRead)
		}
		off += n
		if off == len(buf) {
			// A final read may return the last bytes together with io.EOF.
			return nil
		}
		switch {
		case err == io.EOF:
			return fmt.Errorf("%w: stream ended after %d of %d bytes", ErrData, off, len(buf))
		case err != nil:
			return fmt.Errorf("%w: %w", ErrRead, err)
		case n == 0:
			return fmt.Errorf("%w: %w", ErrRead, io.ErrNoProgress)
		}
	}
	return nil
}
