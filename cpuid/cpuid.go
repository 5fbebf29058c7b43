package cpuid

import "strings"

// Result holds the four 32-bit words returned by one CPUID query.
// It is produced and consumed within a single predicate call and never
// cached by this package.
type Result struct {
	EAX, EBX, ECX, EDX uint32
}

// word returns the register selected by index (EAX=0, EBX=1, ECX=2, EDX=3).
func (r Result) word(i uint8) uint32 {
	switch i {
	case 0:
		return r.EAX
	case 1:
		return r.EBX
	case 2:
		return r.ECX
	default:
		return r.EDX
	}
}

// Feature identifies one probeable instruction-set extension.
type Feature uint8

const (
	SSE2 Feature = iota
	SSE3
	SSSE3
	FMA
	SSE41
	SSE42
	POPCNT
	AVX
	F16C
	RDRAND
	AVX2
	AVX512F
	AVX512DQ
	AVX512IFMA
	AVX512PF
	AVX512ER
	AVX512CD
	AVX512BW
	AVX512VL

	featureCount
)

var featureNames = [featureCount]string{
	SSE2:       "sse2",
	SSE3:       "sse3",
	SSSE3:      "ssse3",
	FMA:        "fma",
	SSE41:      "sse41",
	SSE42:      "sse42",
	POPCNT:     "popcnt",
	AVX:        "avx",
	F16C:       "f16c",
	RDRAND:     "rdrand",
	AVX2:       "avx2",
	AVX512F:    "avx512f",
	AVX512DQ:   "avx512dq",
	AVX512IFMA: "avx512ifma",
	AVX512PF:   "avx512pf",
	AVX512ER:   "avx512er",
	AVX512CD:   "avx512cd",
	AVX512BW:   "avx512bw",
	AVX512VL:   "avx512vl",
}

// String returns the canonical lower-case feature name.
func (f Feature) String() string {
	if f < featureCount {
		return featureNames[f]
	}
	return "unknown"
}

// ParseFeature parses a canonical feature name.
func ParseFeature(s string) (Feature, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range featureNames {
		if name == s {
			return Feature(f), true
		}
	}
	return 0, false
}

// probe describes where one feature bit lives: which CPUID leaf/sub-leaf to
// query, which word of the result to inspect (EAX=0, EBX=1, ECX=2, EDX=3),
// and which bit within that word.
type probe struct {
	leaf, subleaf uint32
	word          uint8
	bit           uint8
}

// probes is the fixed feature-bit table. AVX512ER (the Knights-Landing-only
// extension) intentionally has no entry: it is reported false everywhere and
// never probed.
var probes = map[Feature]probe{
	SSE2:       {leaf: 1, subleaf: 0, word: 3, bit: 26},
	SSE3:       {leaf: 1, subleaf: 0, word: 2, bit: 0},
	SSSE3:      {leaf: 1, subleaf: 0, word: 2, bit: 9},
	FMA:        {leaf: 1, subleaf: 0, word: 2, bit: 12},
	SSE41:      {leaf: 1, subleaf: 0, word: 2, bit: 19},
	SSE42:      {leaf: 1, subleaf: 0, word: 2, bit: 20},
	POPCNT:     {leaf: 1, subleaf: 0, word: 2, bit: 23},
	AVX:        {leaf: 1, subleaf: 0, word: 2, bit: 28},
	F16C:       {leaf: 1, subleaf: 0, word: 2, bit: 29},
	RDRAND:     {leaf: 1, subleaf: 0, word: 2, bit: 30},
	AVX2:       {leaf: 7, subleaf: 0, word: 1, bit: 5},
	AVX512F:    {leaf: 7, subleaf: 0, word: 1, bit: 16},
	AVX512DQ:   {leaf: 7, subleaf: 0, word: 1, bit: 17},
	AVX512IFMA: {leaf: 7, subleaf: 0, word: 1, bit: 21},
	AVX512PF:   {leaf: 7, subleaf: 0, word: 1, bit: 26},
	AVX512CD:   {leaf: 7, subleaf: 0, word: 1, bit: 28},
	AVX512BW:   {leaf: 7, subleaf: 0, word: 1, bit: 30},
	AVX512VL:   {leaf: 7, subleaf: 0, word: 1, bit: 31},
}

// queryFunc is the active CPUID primitive. Tests swap it to inject
// synthetic results; production code never touches it.
var queryFunc = hwQuery

// Query issues one raw CPUID query for the given leaf and sub-leaf.
// On architectures without the CPUID instruction it returns the zero Result.
func Query(leaf, subleaf uint32) Result {
	return queryFunc(leaf, subleaf)
}

// Has reports whether the host CPU supports f.
// It issues the query for f's leaf every call; see the package comment on
// caching.
func Has(f Feature) bool {
	p, ok := probes[f]
	if !ok {
		return false
	}
	r := queryFunc(p.leaf, p.subleaf)
	return r.word(p.word)&(1<<p.bit) != 0
}

// All returns every known feature in declaration order.
func All() []Feature {
	out := make([]Feature, featureCount)
	for f := Feature(0); f < featureCount; f++ {
		out[f] = f
	}
	return out
}

// Features returns the support state of every known feature.
func Features() map[Feature]bool {
	m := make(map[Feature]bool, featureCount)
	for f := Feature(0); f < featureCount; f++ {
		m[f] = Has(f)
	}
	return m
}

// Supported returns the supported features in declaration order.
func Supported() []Feature {
	var out []Feature
	for f := Feature(0); f < featureCount; f++ {
		if Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Named predicates, one per table row. Downstream dispatch code branches on
// these by name.

func HasSSE2() bool { return Has(SSE2) }
func HasSSE3() bool { return Has(SSE3) }
func HasSSSE3() bool { return Has(SSSE3) }
func HasFMA() bool { return Has(FMA) }
func HasSSE41() bool { return Has(SSE41) }
func HasSSE42() bool { return Has(SSE42) }
func HasPOPCNT() bool { return Has(POPCNT) }
func HasAVX() bool { return Has(AVX) }
func HasF16C() bool { return Has(F16C) }
func HasRDRAND() bool { return Has(RDRAND) }
func HasAVX2() bool { return Has(AVX2) }
func HasAVX512F() bool { return Has(AVX512F) }
func HasAVX512DQ() bool { return Has(AVX512DQ) }
func HasAVX512IFMA() bool { return Has(AVX512IFMA) }
func HasAVX512PF() bool { return Has(AVX512PF) }

// HasAVX512ER always reports false. The instructions only ever shipped on
// Knights Landing and are not worth probing for.
func HasAVX512ER() bool { return false }

func HasAVX512CD() bool { return Has(AVX512CD) }
func HasAVX512BW() bool { return Has(AVX512BW) }
func HasAVX512VL() bool { return Has(AVX512VL) }
