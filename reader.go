package framing

import "io"

// Reader pulls frames off a single stream into a fixed receive window
// that it owns and reuses across calls. Like Writer it latches the first
// error: a failed receive leaves the stream position inside a frame, so
// every later call returns the same error instead of misparsing.
//
// A Reader is not safe for concurrent use; all receives on one stream
// must be serialized by the caller.
type Reader struct {
	r      io.Reader
	window []byte
	count  int64 // total bytes read, headers included
	err    error // first error encountered. Subsequent reads become no-ops.
}

// NewReader returns a Reader whose receive window holds capacity bytes.
// The capacity must match the value the sending peer frames against,
// since it determines the header width this Reader expects.
func NewReader(r io.Reader, capacity int) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	if capacity < 0 {
		return nil, ErrData
	}
	return &Reader{r: r, window: make([]byte, capacity)}, nil
}

// ReadFrame reads one frame and returns its payload as a view into the
// Reader's window. The view is valid only until the next ReadFrame call.
// Callers that need the payload afterwards must copy it out.
func (r *Reader) ReadFrame() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	n, err := Receive(r.r, Slice(r.window))
	if err != nil {
		r.err = err
		return nil, err
	}
	r.count += int64(HeaderSize(len(r.window))) + int64(n)
	return r.window[:n], nil
}

// Capacity returns the size of the receive window.
func (r *Reader) Capacity() int { return len(r.window) }

// Count returns the total bytes read from the stream, headers included.
func (r *Reader) Count() int64 { return r.count }

// Err returns the latched error, if any.
func (r *Reader) Err() error { return r.err }

// Result returns the final count and error state.
func (r *Reader) Result() (int64, error) { return r.count, r.err }
