package framing

import (
	"bytes"
	"io"
	"testing"
)

func BenchmarkHeaderMarshalTo(b *testing.B) {
	h := Header{Width: 3, Length: 0x1234}
	var buf [MaxHeaderSize]byte
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.MarshalTo(buf[:])
	}
}

func BenchmarkSend(b *testing.B) {
	payload := Slice(bytes.Repeat([]byte{0xAB}, 256))
	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Send(io.Discard, payload, 1024)
	}
}

func BenchmarkWriteFrameCoalesced(b *testing.B) {
	writer, _ := NewWriter(io.Discard, 1024)
	payload := bytes.Repeat([]byte{0xAB}, 256)
	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = writer.WriteFrame(payload)
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	const capacity = 1024
	payload := bytes.Repeat([]byte{0xAB}, 256)
	stream := &bytes.Buffer{}
	buf := make(Slice, capacity)
	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stream.Reset()
		if err := Send(stream, Slice(payload), capacity); err != nil {
			b.Fatal(err)
		}
		if _, err := Receive(stream, buf); err != nil {
			b.Fatal(err)
		}
	}
}

// Baseline comparison against raw stream writes, to see the overhead of
// the framing layer.
func BenchmarkBaselineRawWrite(b *testing.B) {
	payload := bytes.Repeat([]byte{0xAB}, 256)
	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = io.Discard.Write(payload)
	}
}
