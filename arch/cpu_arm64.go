//go:build arm64
// +build arm64

package arch

import "golang.org/x/sys/cpu"

// detectFeaturesImpl provides ARM64 specific CPU feature detection.
func detectFeaturesImpl() {
	// Advanced SIMD is mandatory on ARM64, so this is effectively always true.
	hasNEON = cpu.ARM64.HasASIMD
}
