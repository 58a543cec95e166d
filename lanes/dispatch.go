package lanes

import (
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set detected at startup.
//
// The core kernel is portable Go at every level; the level decides how
// many lanes batch-oriented callers (see package bulk) should process per
// step and whether accelerated slice kernels are used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
var currentWidth = 16

// hasFMA reports hardware fused multiply-add.
var hasFMA bool

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// HasFMA reports whether the CPU fuses multiply-add in hardware. MulAdd
// results do not depend on it.
func HasFMA() bool {
	return hasFMA
}

// PreferredLanes32 returns how many float32 lanes fit the current register
// width, capped at 8 (the widest batch type).
func PreferredLanes32() int {
	return min(currentWidth/4, 8)
}

// PreferredLanes64 returns how many float64 lanes fit the current register
// width, capped at 4.
func PreferredLanes64() int {
	return max(min(currentWidth/8, 4), 2)
}

// NoSimdEnv checks if the LANES_NO_SIMD environment variable is set.
// When set, detection reports scalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	return envBool("LANES_NO_SIMD")
}

func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte batches even in scalar mode for consistency
}
