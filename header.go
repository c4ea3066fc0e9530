package framing

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// MaxHeaderSize is the largest possible header width: one size byte plus
// the eight base-256 digits needed for a full 64-bit payload length.
const MaxHeaderSize = 9

// HeaderSize returns the total header width in bytes for a stream whose
// receive window holds capacity bytes: one size byte plus the minimal
// number of base-256 digits needed to represent capacity. The width is
// derived from the negotiated capacity, not from any particular payload,
// so both peers compute it independently. Negative capacities (Go slice
// lengths are signed) are treated as zero.
func HeaderSize[T constraints.Integer](capacity T) uint8 {
	size := uint8(1)
	if capacity <= 0 {
		return size
	}
	for v := uint64(capacity); v > 0; v >>= 8 {
		size++
	}
	return size
}

// Header describes one frame: its own encoded width and the length of the
// payload that follows it on the wire.
//
// Encoded layout: byte 0 is Width (a self-check for the receiver), bytes
// 1..Width-1 are the little-endian base-256 digits of Length.
type Header struct {
	Width  uint8  // total header bytes, including the width byte itself
	Length uint64 // payload byte count
}

// HeaderFor builds the header for sending one payload of the given length
// over a stream negotiated to the given capacity. It fails with ErrTooBig
// when the length cannot be represented in the width the capacity implies.
func HeaderFor(capacity, length uint64) (Header, error) {
	h := Header{Width: HeaderSize(capacity), Length: length}
	if !h.fits() {
		return Header{}, fmt.Errorf("%w: payload length %d, receive capacity %d", ErrTooBig, length, capacity)
	}
	return h, nil
}

// fits reports whether Length is representable in Width-1 base-256 digits.
func (h Header) fits() bool {
	digits := int(h.Width) - 1
	if digits >= 8 {
		return true
	}
	return h.Length < uint64(1)<<(8*digits)
}

// Size returns the encoded size of the header in bytes.
func (h Header) Size() int { return int(h.Width) }

// MarshalTo encodes the header into buf without allocating. It returns
// io.ErrShortWrite if buf cannot hold Size() bytes and ErrTooBig if
// Length does not fit in Width-1 digits.
func (h Header) MarshalTo(buf []byte) (int, error) {
	if len(buf) < h.Size() {
		return 0, io.ErrShortWrite
	}
	if !h.fits() {
		return 0, fmt.Errorf("%w: payload length %d needs more than %d length bytes", ErrTooBig, h.Length, h.Width-1)
	}
	buf[0] = h.Width
	for i := 0; i < int(h.Width)-1; i++ {
		buf[1+i] = byte(h.Length >> (8 * i))
	}
	return h.Size(), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
// It allocates; the send path uses MarshalTo with a stack buffer instead.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, h.Size())
	if _, err := h.MarshalTo(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It is a pure
// decode with no I/O: the width byte is taken at face value, and checking
// it against the width the receiver expects is the caller's job.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty header", ErrData)
	}
	width := data[0]
	if width < 1 || width > MaxHeaderSize {
		return fmt.Errorf("%w: header reports impossible width %d", ErrData, width)
	}
	if len(data) < int(width) {
		return fmt.Errorf("%w: header reports width %d but only %d bytes present", ErrData, width, len(data))
	}
	var length uint64
	for i := 0; i < int(width)-1; i++ {
		length |= uint64(data[1+i]) << (8 * i)
	}
	h.Width = width
	h.Length = length
	return nil
}
