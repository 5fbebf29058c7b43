package platgo

import (
	"log/slog"
	"runtime"
	"sort"

	"github.com/hupe1980/platgo/cpuid"
)

// Capabilities is a point-in-time snapshot of what the host CPU supports
// and what this build is permitted to use. CPU capability is immutable for
// the process lifetime, so one snapshot can be kept for the life of the
// program.
type Capabilities struct {
	// GOARCH is the architecture this binary runs on.
	GOARCH string

	// AsmCapable reports whether the build permits assembly-backed paths
	// (amd64, not built with -tags noasm). Independent of the hardware
	// flags below; dispatchers intersect the two.
	AsmCapable bool

	// Features maps each canonical feature name ("sse2" … "avx512vl") to
	// its runtime support state.
	Features map[string]bool
}

// Detect probes the host CPU and returns its capability snapshot.
func Detect() Capabilities {
	features := make(map[string]bool)
	for f, ok := range cpuid.Features() {
		features[f.String()] = ok
	}
	return Capabilities{
		GOARCH:     runtime.GOARCH,
		AsmCapable: cpuid.AsmCapable,
		Features:   features,
	}
}

// Supported returns the supported feature names in sorted order.
func (c Capabilities) Supported() []string {
	var out []string
	for name, ok := range c.Features {
		if ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// LogValue implements slog.LogValuer so a snapshot can be attached to log
// records without formatting every flag.
func (c Capabilities) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("goarch", c.GOARCH),
		slog.Bool("asm_capable", c.AsmCapable),
		slog.Any("supported", c.Supported()),
	)
}
