package framing

// View is a borrowed read-only window over contiguous bytes owned by some
// container. A view is only valid for the duration of the call it is
// passed to; the framing core never retains one.
//
// *bytes.Buffer satisfies View as-is, so growable send buffers need no
// adapter. Slices and arrays adapt through Slice.
type View interface {
	// Bytes returns the viewed bytes without copying.
	Bytes() []byte
}

// MutableView is a borrowed writable window with a fixed capacity for one
// receive call. Bytes returns the full writable region; Capacity is its
// length and determines the header width the receiver expects.
type MutableView interface {
	View
	Capacity() int
}

// Slice adapts a byte slice (or an array, via arr[:]) to both view
// capabilities without copying.
type Slice []byte

func (s Slice) Bytes() []byte { return s }

func (s Slice) Capacity() int { return len(s) }
