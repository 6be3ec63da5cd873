//go:build !amd64 && !arm64
// +build !amd64,!arm64

package arch

// detectFeaturesImpl is a fallback implementation
// for architectures without a vector transfer path.
func detectFeaturesImpl() {
	// No vector features; the word and block tiers still apply.
}
