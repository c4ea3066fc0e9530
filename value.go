package framing

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the high performance cost of reflection in binary.Size
// on every frame. The map is concurrent-safe, so Writers and Readers on
// different streams share it freely.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// sizeOf returns the fixed binary size of T, cached per type.
//
// Constraint: T must not contain variable-size fields like slices, maps,
// or strings; such types have no fixed size and fail with ErrData.
func sizeOf[T any]() (int, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	size, ok := sizeCache.Load(t)
	if !ok {
		var v T
		size = binary.Size(&v)
		sizeCache.Store(t, size)
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: %s has no fixed binary size", ErrData, t)
	}
	return size, nil
}

// SendValue encodes a fixed-size struct as one frame payload,
// little-endian like the rest of the wire.
func SendValue[T any](w *Writer, v *T) error {
	if w.err != nil {
		return w.err
	}
	size, err := sizeOf[T]()
	if err != nil {
		return w.setError(err)
	}

	bp := framePool.Get().(*[]byte)
	defer framePool.Put(bp)
	buf := *bp
	if size > len(buf) {
		buf = make([]byte, size)
	}
	if _, err := binary.Encode(buf[:size], binary.LittleEndian, v); err != nil {
		return w.setError(fmt.Errorf("%w: encoding %s: %w", ErrData, reflect.TypeOf(v).Elem(), err))
	}
	return w.WriteFrame(buf[:size])
}

// ReceiveValue reads one frame and decodes it into a fixed-size struct.
// A payload whose length differs from T's binary size is ErrData; the
// stream is still at a frame boundary in that case, so the Reader does
// not latch it.
func ReceiveValue[T any](r *Reader, v *T) error {
	size, err := sizeOf[T]()
	if err != nil {
		return err
	}
	p, err := r.ReadFrame()
	if err != nil {
		return err
	}
	if len(p) != size {
		return fmt.Errorf("%w: frame holds %d bytes, %s needs %d", ErrData, len(p), reflect.TypeOf(v).Elem(), size)
	}
	if _, err := binary.Decode(p, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("%w: decoding %s: %w", ErrData, reflect.TypeOf(v).Elem(), err)
	}
	return nil
}
