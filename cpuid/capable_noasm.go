//go:build !amd64 || noasm

package cpuid

// AsmCapable is false: either the target is not x86-64 or the build was
// made with -tags noasm. Runtime predicates still report the actual
// hardware; only the build-side permission is off.
const AsmCapable = false
