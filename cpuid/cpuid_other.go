//go:build !amd64

package cpuid

// hwQuery returns the zero Result: the CPUID instruction does not exist on
// this architecture, so no feature bit can be set. Absence of the query
// mechanism means absence of the features, not an error.
func hwQuery(leaf, subleaf uint32) Result {
	return Result{}
}
