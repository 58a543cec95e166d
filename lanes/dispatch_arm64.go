//go:build arm64 && !purego

package lanes

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARMv8-A always has scalar FMADD. NEON (ASIMD) is part of the base
	// architecture too; we still check the cpu package for consistency.
	hasFMA = true
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
	} else {
		setScalarMode()
	}

	// SVE width is implementation defined; batches stay at 128 bits until
	// the vector length is probed.
	if cpu.ARM64.HasSVE {
		currentLevel = DispatchSVE
	}
}
