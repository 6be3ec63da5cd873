package transfer

import (
	"unsafe"

	"github.com/kelerion/memx/arch"
)

// Fill sets n bytes at dst to b using the same tiering as Forward: byte and
// halfword fixes to reach a word boundary, then 8-word blocks of the
// replicated byte, then words, then the tail. Only dst needs aligning, so
// there is no alignment-class fallback.
func Fill(dst unsafe.Pointer, n uintptr, b byte) {
	if n < smallMin {
		fillBytes(dst, n, b)
		return
	}

	w := uint32(b) * 0x01010101

	if !arch.IsHalfAligned(uintptr(dst)) {
		*(*byte)(dst) = b
		dst = unsafe.Add(dst, 1)
		n--
	}
	if !arch.IsWordAligned(uintptr(dst)) {
		*(*uint16)(dst) = uint16(w)
		dst = unsafe.Add(dst, arch.HalfSize)
		n -= arch.HalfSize
	}

	for ; n >= arch.BlockSize; n -= arch.BlockSize {
		dw := (*[8]uint32)(dst)
		dw[0] = w
		dw[1] = w
		dw[2] = w
		dw[3] = w
		dw[4] = w
		dw[5] = w
		dw[6] = w
		dw[7] = w
		dst = unsafe.Add(dst, arch.BlockSize)
	}

	for ; n >= arch.WordSize; n -= arch.WordSize {
		*(*uint32)(dst) = w
		dst = unsafe.Add(dst, arch.WordSize)
	}

	if n >= arch.HalfSize {
		*(*uint16)(dst) = uint16(w)
		dst = unsafe.Add(dst, arch.HalfSize)
		n -= arch.HalfSize
	}
	if n != 0 {
		*(*byte)(dst) = b
	}
}

// Zero sets n bytes at dst to zero.
func Zero(dst unsafe.Pointer, n uintptr) {
	Fill(dst, n, 0)
}

func fillBytes(dst unsafe.Pointer, n uintptr, b byte) {
	for ; n > 0; n-- {
		*(*byte)(dst) = b
		dst = unsafe.Add(dst, 1)
	}
}
