package framing

import "sync"

// CoalesceSize is the frame size up to which Writer merges header and
// payload into one pooled buffer so the frame reaches the stream as a
// single write. 4KB covers common small-message traffic without holding
// large slices in the pool.
const CoalesceSize = 4096

var framePool = sync.Pool{
	New: func() any {
		b := make([]byte, CoalesceSize)
		return &b
	},
}
