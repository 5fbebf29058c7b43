// Package platgo provides platform capability discovery and aligned-memory
// primitives for Go.
//
// Two independent building blocks live in their own packages:
//
//   - cpuid: runtime CPU instruction-set feature probing (SSE through
//     AVX-512). On non-x86 targets every probe reports false.
//   - mem: aligned allocation beyond the Go allocator's guarantee, both
//     GC-managed slices and manually owned off-heap blocks.
//
// The root package is a thin facade: Detect bundles the probe results into
// a single snapshot for logging and dispatch-table setup.
//
//	caps := platgo.Detect()
//	slog.Info("host capabilities", "caps", caps)
//	useAVX2 := caps.AsmCapable && caps.Features["avx2"]
package platgo
