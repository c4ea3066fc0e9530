package framing

import "errors"

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with a nil stream.
	ErrNilIO = errors.New("framing: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrData indicates malformed or desynchronized framing: a header whose
	// self-reported width disagrees with the width implied by the declared
	// capacity, a declared payload length larger than the receive window,
	// an unexpected end-of-stream mid-frame, or an empty payload view.
	ErrData = errors.New("framing: malformed or desynchronized frame")

	// ErrWrite indicates that the underlying stream reported a write failure.
	// The stream's own error is wrapped and can be recovered with errors.Is/As.
	ErrWrite = errors.New("framing: stream write failed")

	// ErrRead indicates that the underlying stream reported a read failure.
	// The stream's own error is wrapped and can be recovered with errors.Is/As.
	ErrRead = errors.New("framing: stream read failed")

	// ErrTooBig indicates a payload length that cannot be represented in the
	// header width implied by the negotiated capacity.
	ErrTooBig = errors.New("framing: payload does not fit the negotiated header width")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid count from Write.
	ErrInvalidWrite = errors.New("framing: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid count from Read.
	ErrInvalidRead = errors.New("framing: reader returned invalid count from Read")
)
