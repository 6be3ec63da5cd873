// Package memx provides width-tiered copy, move and fill primitives for raw
// memory, in the tradition of memcpy/memmove: given two addresses and a
// length, transfer the bytes with the fewest possible accesses the current
// alignment permits, and pick a direction that keeps overlapping moves
// correct.
//
// The pointer-based entry points mirror the conventional C contract and
// return the destination pointer. The slice-based entry points are the
// bounds-clamped convenience surface for Go callers.
package memx

import (
	"unsafe"

	"github.com/kelerion/memx/transfer"
)

// Copy copies n bytes from src to dst and returns dst.
// The regions must not overlap; use Move when they might.
func Copy(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	transfer.Forward(dst, src, n)
	return dst
}

// Move copies n bytes from src to dst and returns dst. The regions may
// overlap arbitrarily; dst ends up holding the bytes src held before the
// call.
func Move(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	transfer.Move(dst, src, n)
	return dst
}

// CopyWords is Copy for callers that guarantee word-aligned pointers and a
// length that is a multiple of the word size, skipping the alignment
// analysis. A call that does not meet the guarantee silently degrades to the
// generic path; that degradation is a convenience, not a contract.
func CopyWords(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	transfer.ForwardWords(dst, src, n)
	return dst
}

// MoveWords is Move under the same word-granularity guarantee as CopyWords.
func MoveWords(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	transfer.MoveWords(dst, src, n)
	return dst
}

// Fill sets n bytes at dst to b and returns dst.
func Fill(dst unsafe.Pointer, n uintptr, b byte) unsafe.Pointer {
	transfer.Fill(dst, n, b)
	return dst
}

// Zero sets n bytes at dst to zero and returns dst.
func Zero(dst unsafe.Pointer, n uintptr) unsafe.Pointer {
	transfer.Zero(dst, n)
	return dst
}

// CopyBytes copies min(len(dst), len(src)) bytes from src to dst and returns
// the count. The slices must not share memory; use MoveBytes when they
// might.
func CopyBytes(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	transfer.Forward(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), uintptr(n))
	return n
}

// MoveBytes copies min(len(dst), len(src)) bytes from src to dst and returns
// the count. The slices may overlap, including views of the same array.
func MoveBytes(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	transfer.Move(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), uintptr(n))
	return n
}

// FillBytes sets every byte of dst to b.
func FillBytes(dst []byte, b byte) {
	if len(dst) == 0 {
		return
	}
	transfer.Fill(unsafe.Pointer(&dst[0]), uintptr(len(dst)), b)
}
