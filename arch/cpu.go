package arch

import (
	"runtime"
	"sync"
)

// CPU architecture and feature detection
var (
	// Architecture flags
	isAMD64 = runtime.GOARCH == "amd64"
	isARM64 = runtime.GOARCH == "arm64"

	// Feature flags
	hasSSE2 bool
	hasAVX2 bool
	hasNEON bool

	// Initialization
	detectOnce sync.Once
)

// Transfer kinds, narrowest to widest.
const (
	KindWord      = iota // scalar word accesses, available everywhere
	KindBlock            // unrolled 8-word block groups
	KindVector128        // 128-bit vector transfers (SSE2 / NEON)
	KindVector256        // 256-bit vector transfers (AVX2)
)

// Features represents the transfer-relevant CPU feature flags.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool
}

// DetectFeatures initializes CPU feature detection and returns the result.
func DetectFeatures() Features {
	detectOnce.Do(detectFeaturesImpl)

	return Features{
		HasSSE2: hasSSE2,
		HasAVX2: hasAVX2,
		HasNEON: hasNEON,
	}
}

// WidestKind returns the widest transfer kind available on this CPU. The
// engine's portable tiers only require KindWord; wider kinds inform callers
// and benchmarks what the host could sustain.
func WidestKind() int {
	DetectFeatures()

	if isAMD64 {
		if hasAVX2 {
			return KindVector256
		}
		if hasSSE2 {
			return KindVector128
		}
	}

	if isARM64 && hasNEON {
		return KindVector128
	}

	return KindBlock
}

// KindName returns a string name for the transfer kind.
func KindName(kind int) string {
	switch kind {
	case KindWord:
		return "Word"
	case KindBlock:
		return "Block"
	case KindVector128:
		return "Vector128"
	case KindVector256:
		return "Vector256"
	default:
		return "Unknown"
	}
}
