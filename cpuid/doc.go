// Package cpuid reports which instruction-set extensions the host CPU
// supports, by issuing CPUID queries at call time.
//
// # Supported Platforms
//
//   - x86-64: every probe runs the CPUID instruction directly.
//   - Everything else: the query primitive does not exist, so every
//     predicate reports false. This is not an error condition.
//
// # Usage
//
// Each feature has a zero-argument predicate:
//
//	if cpuid.HasAVX2() {
//	    // dispatch to the AVX2 kernel
//	}
//
// Predicates are stateless and deterministic for the process lifetime;
// callers that probe on a hot path should cache the result themselves.
//
// Runtime support is independent of what the build was compiled for.
// Dispatch code must intersect AsmCapable (build permits assembly) with the
// runtime predicate before selecting an accelerated path. Build with
// -tags noasm to force AsmCapable off.
package cpuid
