package transfer

import "unsafe"

// Move copies n bytes from src to dst where the two regions may overlap
// arbitrarily, leaving dst equal to the bytes src held before the call.
//
// The address comparison is the entire overlap argument: copying low-to-high
// is safe when dst does not start after src, because the destination's
// leading edge never reaches a source byte before it has been read; when dst
// starts after src the transfer runs high-to-low for the mirrored reason.
// Forward and Backward themselves have no overlap awareness.
func Move(dst, src unsafe.Pointer, n uintptr) {
	if uintptr(dst) <= uintptr(src) {
		Forward(dst, src, n)
	} else {
		Backward(dst, src, n)
	}
}

// MoveWords is the word-granularity Move: same direction choice, word-tier
// transfer routines. Nonconforming calls degrade to the generic tiers
// inside ForwardWords/BackwardWords.
func MoveWords(dst, src unsafe.Pointer, n uintptr) {
	if uintptr(dst) <= uintptr(src) {
		ForwardWords(dst, src, n)
	} else {
		BackwardWords(dst, src, n)
	}
}
