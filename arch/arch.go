// Package arch describes the memory-access rules the transfer engine has to
// respect: the access widths that exist, how an address classifies against
// each width, and whether the host tolerates unaligned word access.
package arch

import "runtime"

// Access widths. The word is fixed at 4 bytes and the bulk block at 8 words:
// the engine is tuned for targets whose wide-transfer hardware moves 32-byte
// groups, and nothing in it benefits from tracking the host pointer size.
const (
	// HalfSize is the halfword access width in bytes.
	HalfSize = 2
	// WordSize is the word access width in bytes.
	WordSize = 4
	// BlockSize is the bulk block width in bytes (8 words).
	BlockSize = 32
)

// UnalignedOK reports whether the host architecture permits word accesses at
// unaligned addresses without faulting. When true the engine may keep the
// word tier even if source and destination fall in different word-alignment
// classes; when false it must degrade to narrower tiers. Correctness never
// depends on this flag, only throughput.
const UnalignedOK = runtime.GOARCH == "386" ||
	runtime.GOARCH == "amd64" ||
	runtime.GOARCH == "arm64" ||
	runtime.GOARCH == "ppc64" ||
	runtime.GOARCH == "ppc64le" ||
	runtime.GOARCH == "s390x" ||
	runtime.GOARCH == "wasm"

// WordOffset returns the address's offset within its word (p mod 4).
func WordOffset(p uintptr) uintptr {
	return p & (WordSize - 1)
}

// HalfOffset returns the address's offset within its halfword (p mod 2).
func HalfOffset(p uintptr) uintptr {
	return p & (HalfSize - 1)
}

// AlignWord rounds an address down to its word boundary.
func AlignWord(p uintptr) uintptr {
	return p &^ (WordSize - 1)
}

// IsWordAligned reports whether an address sits on a word boundary.
func IsWordAligned(p uintptr) bool {
	return p&(WordSize-1) == 0
}

// IsHalfAligned reports whether an address sits on a halfword boundary.
func IsHalfAligned(p uintptr) bool {
	return p&(HalfSize-1) == 0
}

// SameWordClass reports whether two addresses share a word-alignment class,
// i.e. their difference is a multiple of the word size. Only then can both be
// brought to a word boundary by the same head fix-up.
func SameWordClass(a, b uintptr) bool {
	return (a-b)&(WordSize-1) == 0
}

// SameHalfClass reports whether two addresses agree on even/odd parity.
func SameHalfClass(a, b uintptr) bool {
	return (a-b)&(HalfSize-1) == 0
}
