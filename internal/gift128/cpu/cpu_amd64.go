//go:build amd64

// Package cpu reports the CPU feature used to select between PermBits
// formulations. It is a thin wrapper over golang.org/x/sys/cpu so the rest
// of internal/gift128 doesn't need per-architecture build tags of its own.
package cpu

import "golang.org/x/sys/cpu"

// HasAVX2 reports whether the running CPU supports AVX2, the feature the
// reference implementation gates its vectorized PermBits path on.
var HasAVX2 = cpu.X86.HasAVX2
