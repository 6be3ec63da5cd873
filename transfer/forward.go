// Package transfer implements the width-tiered copy engine: byte, halfword,
// word and 32-byte block tiers, selected per call from the alignment
// relationship of the two addresses and the remaining length.
//
// All routines in this package are leaf primitives. They allocate nothing,
// never touch memory outside [dst,dst+n) and [src,src+n), and report no
// errors: invalid pointers are a caller precondition, not a runtime check.
// Only Move is overlap-aware; Forward and Backward must not be handed
// overlapping regions except through Move's direction choice.
package transfer

import (
	"unsafe"

	"github.com/kelerion/memx/arch"
)

// smallMin is the length below which the alignment analysis costs more than
// it can save. Shorter transfers go straight to the byte loop.
const smallMin = 6

// copyBytes copies n bytes from src to dst, low to high, one byte at a time.
// No alignment precondition; n == 0 is a no-op.
func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	for ; n > 0; n-- {
		*(*byte)(dst) = *(*byte)(src)
		dst = unsafe.Add(dst, 1)
		src = unsafe.Add(src, 1)
	}
}

// copyHalves copies in 2-byte units while n >= 2, then hands any odd final
// byte to copyBytes. Precondition: dst and src are both halfword-aligned, or
// the host tolerates unaligned access.
func copyHalves(dst, src unsafe.Pointer, n uintptr) {
	for ; n >= arch.HalfSize; n -= arch.HalfSize {
		*(*uint16)(dst) = *(*uint16)(src)
		dst = unsafe.Add(dst, arch.HalfSize)
		src = unsafe.Add(src, arch.HalfSize)
	}
	copyBytes(dst, src, n)
}

// Forward copies n bytes from src to dst, low address to high, using the
// widest access width the alignment of both pointers permits.
//
// The alignment relationship (dst-src) mod 4 is classified once: it cannot
// change during the call because both pointers advance by equal amounts in
// every tier.
func Forward(dst, src unsafe.Pointer, n uintptr) {
	if n < smallMin {
		copyBytes(dst, src, n)
		return
	}

	d := uintptr(dst)
	s := uintptr(src)
	if !arch.UnalignedOK && !arch.SameWordClass(d, s) {
		// Word accesses can never be made safe for both sides. If the
		// addresses at least agree on parity, one byte brings both to an
		// even boundary and the halfword tier carries the rest; otherwise
		// no width above a byte is ever legal.
		if !arch.SameHalfClass(d, s) {
			copyBytes(dst, src, n)
			return
		}
		if !arch.IsHalfAligned(d) {
			*(*byte)(dst) = *(*byte)(src)
			dst = unsafe.Add(dst, 1)
			src = unsafe.Add(src, 1)
			n--
		}
		copyHalves(dst, src, n)
		return
	}

	// Word path. Align dst to a word boundary: byte fix first, halfword fix
	// second. The order matters: the halfword fix assumes the byte fix has
	// already normalized parity. When the classes match, src lands on a word
	// boundary at the same moment; when they differ (unaligned-tolerant
	// hosts only), src simply stays unaligned.
	if !arch.IsHalfAligned(uintptr(dst)) {
		*(*byte)(dst) = *(*byte)(src)
		dst = unsafe.Add(dst, 1)
		src = unsafe.Add(src, 1)
		n--
	}
	if !arch.IsWordAligned(uintptr(dst)) {
		*(*uint16)(dst) = *(*uint16)(src)
		dst = unsafe.Add(dst, arch.HalfSize)
		src = unsafe.Add(src, arch.HalfSize)
		n -= arch.HalfSize
	}

	// Bulk block tier: one unrolled 8-word group per iteration.
	for ; n >= arch.BlockSize; n -= arch.BlockSize {
		dw := (*[8]uint32)(dst)
		sw := (*[8]uint32)(src)
		dw[0] = sw[0]
		dw[1] = sw[1]
		dw[2] = sw[2]
		dw[3] = sw[3]
		dw[4] = sw[4]
		dw[5] = sw[5]
		dw[6] = sw[6]
		dw[7] = sw[7]
		dst = unsafe.Add(dst, arch.BlockSize)
		src = unsafe.Add(src, arch.BlockSize)
	}

	// Word tier.
	for ; n >= arch.WordSize; n -= arch.WordSize {
		*(*uint32)(dst) = *(*uint32)(src)
		dst = unsafe.Add(dst, arch.WordSize)
		src = unsafe.Add(src, arch.WordSize)
	}

	// Tail: at most 3 bytes remain.
	if n >= arch.HalfSize {
		*(*uint16)(dst) = *(*uint16)(src)
		dst = unsafe.Add(dst, arch.HalfSize)
		src = unsafe.Add(src, arch.HalfSize)
		n -= arch.HalfSize
	}
	if n != 0 {
		*(*byte)(dst) = *(*byte)(src)
	}
}

// ForwardWords copies n bytes low to high assuming the caller has already
// guaranteed word-aligned pointers and a word-multiple length, skipping the
// classification and fix-up phases. A nonconforming call silently degrades
// to the generic Forward path.
func ForwardWords(dst, src unsafe.Pointer, n uintptr) {
	if !wordsConforming(uintptr(dst), uintptr(src), n) {
		Forward(dst, src, n)
		return
	}
	for ; n >= arch.BlockSize; n -= arch.BlockSize {
		dw := (*[8]uint32)(dst)
		sw := (*[8]uint32)(src)
		dw[0] = sw[0]
		dw[1] = sw[1]
		dw[2] = sw[2]
		dw[3] = sw[3]
		dw[4] = sw[4]
		dw[5] = sw[5]
		dw[6] = sw[6]
		dw[7] = sw[7]
		dst = unsafe.Add(dst, arch.BlockSize)
		src = unsafe.Add(src, arch.BlockSize)
	}
	for ; n > 0; n -= arch.WordSize {
		*(*uint32)(dst) = *(*uint32)(src)
		dst = unsafe.Add(dst, arch.WordSize)
		src = unsafe.Add(src, arch.WordSize)
	}
}

// wordsConforming reports whether a word-granularity entry point may skip
// the generic alignment analysis.
func wordsConforming(d, s, n uintptr) bool {
	return arch.IsWordAligned(d) && arch.IsWordAligned(s) && n%arch.WordSize == 0
}
