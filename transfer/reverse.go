package transfer

import (
	"unsafe"

	"github.com/kelerion/memx/arch"
)

// copyBytesBackward copies n bytes from src to dst one byte at a time,
// starting at the high end and working down.
func copyBytesBackward(dst, src unsafe.Pointer, n uintptr) {
	dst = unsafe.Add(dst, n)
	src = unsafe.Add(src, n)
	for ; n > 0; n-- {
		dst = unsafe.Add(dst, -1)
		src = unsafe.Add(src, -1)
		*(*byte)(dst) = *(*byte)(src)
	}
}

// copyHalvesBackward copies in 2-byte units from the high end down while
// n >= 2, then hands any leading odd byte to copyBytesBackward.
// Precondition mirrors copyHalves: both top addresses halfword-aligned, or
// an unaligned-tolerant host.
func copyHalvesBackward(dst, src unsafe.Pointer, n uintptr) {
	dtop := unsafe.Add(dst, n)
	stop := unsafe.Add(src, n)
	for ; n >= arch.HalfSize; n -= arch.HalfSize {
		dtop = unsafe.Add(dtop, -arch.HalfSize)
		stop = unsafe.Add(stop, -arch.HalfSize)
		*(*uint16)(dtop) = *(*uint16)(stop)
	}
	copyBytesBackward(dst, src, n)
}

// Backward copies n bytes from src to dst, high address to low, with the
// same tiering as Forward. It exists so Move can run overlapping transfers
// in whichever direction reads every byte before overwriting it.
//
// The classification works on the one-past-the-end addresses; their
// difference mod 4 equals that of the base addresses, so the same alignment
// argument applies.
func Backward(dst, src unsafe.Pointer, n uintptr) {
	if n < smallMin {
		copyBytesBackward(dst, src, n)
		return
	}

	dtop := unsafe.Add(dst, n)
	stop := unsafe.Add(src, n)
	if !arch.UnalignedOK && !arch.SameWordClass(uintptr(dtop), uintptr(stop)) {
		if !arch.SameHalfClass(uintptr(dtop), uintptr(stop)) {
			copyBytesBackward(dst, src, n)
			return
		}
		if !arch.IsHalfAligned(uintptr(dtop)) {
			dtop = unsafe.Add(dtop, -1)
			stop = unsafe.Add(stop, -1)
			*(*byte)(dtop) = *(*byte)(stop)
			n--
		}
		copyHalvesBackward(dst, src, n)
		return
	}

	// Word path from the top. Byte fix before halfword fix, as in Forward.
	if !arch.IsHalfAligned(uintptr(dtop)) {
		dtop = unsafe.Add(dtop, -1)
		stop = unsafe.Add(stop, -1)
		*(*byte)(dtop) = *(*byte)(stop)
		n--
	}
	if !arch.IsWordAligned(uintptr(dtop)) {
		dtop = unsafe.Add(dtop, -arch.HalfSize)
		stop = unsafe.Add(stop, -arch.HalfSize)
		*(*uint16)(dtop) = *(*uint16)(stop)
		n -= arch.HalfSize
	}

	for ; n >= arch.BlockSize; n -= arch.BlockSize {
		dtop = unsafe.Add(dtop, -arch.BlockSize)
		stop = unsafe.Add(stop, -arch.BlockSize)
		dw := (*[8]uint32)(dtop)
		sw := (*[8]uint32)(stop)
		dw[7] = sw[7]
		dw[6] = sw[6]
		dw[5] = sw[5]
		dw[4] = sw[4]
		dw[3] = sw[3]
		dw[2] = sw[2]
		dw[1] = sw[1]
		dw[0] = sw[0]
	}

	for ; n >= arch.WordSize; n -= arch.WordSize {
		dtop = unsafe.Add(dtop, -arch.WordSize)
		stop = unsafe.Add(stop, -arch.WordSize)
		*(*uint32)(dtop) = *(*uint32)(stop)
	}

	if n >= arch.HalfSize {
		dtop = unsafe.Add(dtop, -arch.HalfSize)
		stop = unsafe.Add(stop, -arch.HalfSize)
		*(*uint16)(dtop) = *(*uint16)(stop)
		n -= arch.HalfSize
	}
	if n != 0 {
		*(*byte)(dst) = *(*byte)(src)
	}
}

// BackwardWords is the word-granularity counterpart of ForwardWords,
// transferring from the high end downward. Nonconforming calls silently
// degrade to the generic Backward path.
func BackwardWords(dst, src unsafe.Pointer, n uintptr) {
	if !wordsConforming(uintptr(dst), uintptr(src), n) {
		Backward(dst, src, n)
		return
	}
	dtop := unsafe.Add(dst, n)
	stop := unsafe.Add(src, n)
	for ; n >= arch.BlockSize; n -= arch.BlockSize {
		dtop = unsafe.Add(dtop, -arch.BlockSize)
		stop = unsafe.Add(stop, -arch.BlockSize)
		dw := (*[8]uint32)(dtop)
		sw := (*[8]uint32)(stop)
		dw[7] = sw[7]
		dw[6] = sw[6]
		dw[5] = sw[5]
		dw[4] = sw[4]
		dw[3] = sw[3]
		dw[2] = sw[2]
		dw[1] = sw[1]
		dw[0] = sw[0]
	}
	for ; n > 0; n -= arch.WordSize {
		dtop = unsafe.Add(dtop, -arch.WordSize)
		stop = unsafe.Add(stop, -arch.WordSize)
		*(*uint32)(dtop) = *(*uint32)(stop)
	}
}
