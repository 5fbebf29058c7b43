package platgo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/platgo/cpuid"
)

func TestDetect(t *testing.T) {
	caps := Detect()

	assert.Equal(t, runtime.GOARCH, caps.GOARCH)
	assert.Equal(t, cpuid.AsmCapable, caps.AsmCapable)

	// One entry per known feature, consistent with the predicates.
	require.Len(t, caps.Features, len(cpuid.Features()))
	assert.Equal(t, cpuid.HasAVX2(), caps.Features["avx2"])
	assert.Equal(t, cpuid.HasSSE2(), caps.Features["sse2"])

	// Permanently-off feature never shows up as supported.
	assert.False(t, caps.Features["avx512er"])

	if runtime.GOARCH != "amd64" {
		assert.Empty(t, caps.Supported())
	}
}

func TestSupportedSorted(t *testing.T) {
	caps := Capabilities{Features: map[string]bool{
		"sse42": true,
		"avx2":  true,
		"fma":   false,
	}}

	assert.Equal(t, []string{"avx2", "sse42"}, caps.Supported())
}

func TestLogValue(t *testing.T) {
	caps := Detect()
	v := caps.LogValue()

	attrs := v.Group()
	require.Len(t, attrs, 3)
	assert.Equal(t, "goarch", attrs[0].Key)
}
