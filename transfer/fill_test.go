package transfer

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/kelerion/memx/arch"
)

func TestFill(t *testing.T) {
	const maxLen = 100

	for _, b := range []byte{0x00, 0x5A, 0xFF} {
		t.Run(fmt.Sprintf("value%#02x", b), func(t *testing.T) {
			for off := 0; off < arch.WordSize; off++ {
				for n := 0; n <= maxLen; n++ {
					dst := alignedBuf(maxLen + 2*guard)
					for i := range dst {
						dst[i] = canary
					}

					Fill(unsafe.Pointer(&dst[guard+off]), uintptr(n), b)

					for i := 0; i < n; i++ {
						if dst[guard+off+i] != b {
							t.Fatalf("off %d len %d: byte %d is %#02x, want %#02x",
								off, n, i, dst[guard+off+i], b)
						}
					}
					for i := 0; i < guard+off; i++ {
						if dst[i] != canary {
							t.Fatalf("off %d len %d: byte before region clobbered", off, n)
						}
					}
					for i := guard + off + n; i < len(dst); i++ {
						if dst[i] != canary {
							t.Fatalf("off %d len %d: byte after region clobbered", off, n)
						}
					}
				}
			}
		})
	}
}

func TestFillTierBoundaries(t *testing.T) {
	for _, n := range []int{5, 6, 7, 31, 32, 33} {
		t.Run(fmt.Sprintf("len%d", n), func(t *testing.T) {
			dst := alignedBuf(n + 2*guard)
			for i := range dst {
				dst[i] = canary
			}

			Fill(unsafe.Pointer(&dst[guard]), uintptr(n), 0x7E)

			for i := 0; i < n; i++ {
				if dst[guard+i] != 0x7E {
					t.Fatalf("byte %d not filled", i)
				}
			}
		})
	}
}

func TestZeroClears(t *testing.T) {
	dst := alignedBuf(64)
	for i := range dst {
		dst[i] = canary
	}

	Zero(unsafe.Pointer(&dst[0]), uintptr(len(dst)))

	for i, b := range dst {
		if b != 0 {
			t.Fatalf("byte %d is %#02x after Zero", i, b)
		}
	}
}
