//go:build amd64 && !noasm

package cpuid

// AsmCapable reports whether this build may contain x86-64 assembly or
// intrinsics-backed code paths. It reflects the build, not the hardware:
// dispatchers must intersect it with the runtime predicates before using an
// accelerated path.
const AsmCapable = true
