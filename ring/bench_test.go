package ring_test

import (
	"testing"

	"github.com/smallnest/ringbuffer"

	"github.com/momentics/hioload-ring/ring"
)

func BenchmarkMaskingEnqueue(b *testing.B) {
	r, _ := ring.NewMaskingHeap[int](1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Enqueue(i)
	}
}

func BenchmarkSparseMaskingEnqueue(b *testing.B) {
	r, _ := ring.NewSparseMaskingHeap[int](1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Enqueue(i)
	}
}

func BenchmarkSubtractingEnqueue(b *testing.B) {
	r, _ := ring.NewSubtractingHeap[int](1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Enqueue(i)
	}
}

func BenchmarkMaskingInlineByteRoundTrip(b *testing.B) {
	r := ring.NewMaskingInline[byte, [1024]byte]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Enqueue(byte(i))
		r.Dequeue()
	}
}

// Baseline: the io-oriented byte ring used elsewhere for audio buffering.
func BenchmarkSmallnestByteRoundTrip(b *testing.B) {
	rb := ringbuffer.New(1024)
	var buf [1]byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf[0] = byte(i)
		_, _ = rb.Write(buf[:])
		_, _ = rb.TryRead(buf[:])
	}
}
