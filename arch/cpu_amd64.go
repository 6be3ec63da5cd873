//go:build amd64
// +build amd64

package arch

import "golang.org/x/sys/cpu"

// detectFeaturesImpl provides x86-64 specific CPU feature detection.
func detectFeaturesImpl() {
	// SSE2 is part of the x86-64 baseline, but read it from the kernel's
	// view anyway rather than assuming.
	hasSSE2 = cpu.X86.HasSSE2
	hasAVX2 = cpu.X86.HasAVX2
}
