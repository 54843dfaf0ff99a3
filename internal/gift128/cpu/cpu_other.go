//go:build !amd64

package cpu

// HasAVX2 is always false on architectures without an AVX2 concept; the
// table-driven PermBits formulation is used unconditionally.
var HasAVX2 = false
