//go:build amd64

package cpuid

// cpuidAsm executes the CPUID instruction. Implemented in cpuid_amd64.s.
func cpuidAsm(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

func hwQuery(leaf, subleaf uint32) Result {
	eax, ebx, ecx, edx := cpuidAsm(leaf, subleaf)
	return Result{EAX: eax, EBX: ebx, ECX: ecx, EDX: edx}
}
