package bench

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/kelerion/memx"
	"github.com/kelerion/memx/arch"
)

const (
	// Test data sizes for benchmarks
	tinySize   = 8
	smallSize  = 1 << 6  // 64B
	mediumSize = 1 << 10 // 1KB
	largeSize  = 1 << 16 // 64KB
	hugeSize   = 1 << 20 // 1MB
)

var (
	// Global sink to prevent compiler optimizations
	sink unsafe.Pointer

	benchSizes = []int{tinySize, smallSize, mediumSize, largeSize, hugeSize}
)

// alignedBuf returns a word-aligned buffer with headroom for offset runs.
func alignedBuf(n int) []byte {
	raw := make([]byte, n+2*arch.WordSize)
	off := 0
	for !arch.IsWordAligned(uintptr(unsafe.Pointer(&raw[off]))) {
		off++
	}
	return raw[off:]
}

func BenchmarkCopyAligned(b *testing.B) {
	b.Logf("widest transfer kind: %s", arch.KindName(arch.WidestKind()))

	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			src := alignedBuf(size)
			dst := alignedBuf(size)

			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink = memx.Copy(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), uintptr(size))
			}
		})
	}
}

// BenchmarkCopyMisaligned measures the cost of the narrower tiers when the
// two pointers fall in different word-alignment classes.
func BenchmarkCopyMisaligned(b *testing.B) {
	offsets := []struct {
		name string
		s, d int
	}{
		{"same class", 1, 1},
		{"halfword class", 0, 2},
		{"odd delta", 0, 1},
	}

	for _, off := range offsets {
		b.Run(off.name, func(b *testing.B) {
			src := alignedBuf(largeSize + arch.WordSize)
			dst := alignedBuf(largeSize + arch.WordSize)

			b.SetBytes(largeSize)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink = memx.Copy(unsafe.Pointer(&dst[off.d]), unsafe.Pointer(&src[off.s]), largeSize)
			}
		})
	}
}

func BenchmarkMoveOverlapping(b *testing.B) {
	shifts := []struct {
		name  string
		shift int
	}{
		{"forward", -16},
		{"backward", 16},
	}

	for _, tt := range shifts {
		b.Run(tt.name, func(b *testing.B) {
			buf := alignedBuf(largeSize + 64)
			s := 32
			d := s + tt.shift

			b.SetBytes(largeSize)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink = memx.Move(unsafe.Pointer(&buf[d]), unsafe.Pointer(&buf[s]), largeSize)
			}
		})
	}
}

func BenchmarkCopyWords(b *testing.B) {
	for _, size := range []int{smallSize, mediumSize, largeSize} {
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			src := alignedBuf(size)
			dst := alignedBuf(size)

			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink = memx.CopyWords(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), uintptr(size))
			}
		})
	}
}

func BenchmarkFill(b *testing.B) {
	for _, size := range []int{smallSize, mediumSize, largeSize} {
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			dst := alignedBuf(size)

			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink = memx.Fill(unsafe.Pointer(&dst[0]), uintptr(size), 0x55)
			}
		})
	}
}

// BenchmarkBuiltinCopy is the baseline: Go's own copy on the same buffers.
func BenchmarkBuiltinCopy(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			src := alignedBuf(size)
			dst := alignedBuf(size)

			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(dst[:size], src[:size])
			}
		})
	}
}
