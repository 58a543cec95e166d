package lanes

// Capabilities describes the build- and run-time options in effect. Each
// option is independent; none of them changes the result of core
// arithmetic.
type Capabilities struct {
	Level DispatchLevel `json:"-" yaml:"-"`
	// LevelName is Level.String(), kept for encoders.
	LevelName       string `json:"level" yaml:"level"`
	Width           int    `json:"width" yaml:"width"`
	Lanes32         int    `json:"lanes32" yaml:"lanes32"`
	Lanes64         int    `json:"lanes64" yaml:"lanes64"`
	Backend         string `json:"backend" yaml:"backend"`
	FMA             bool   `json:"fma" yaml:"fma"`
	// WideKernels reports hardware instructions behind F32x8 and F64x4
	// Add, Sub, Mul and Sqrt.
	WideKernels     bool   `json:"wideKernels" yaml:"wideKernels"`
	DebugAssertions bool   `json:"debugAssertions" yaml:"debugAssertions"`
	Serialization   bool   `json:"serialization" yaml:"serialization"`
}

// CurrentCapabilities returns a snapshot of the active capabilities.
func CurrentCapabilities() Capabilities {
	return Capabilities{
		Level:           currentLevel,
		LevelName:       currentLevel.String(),
		Width:           currentWidth,
		Lanes32:         PreferredLanes32(),
		Lanes64:         PreferredLanes64(),
		Backend:         Backend,
		FMA:             hasFMA,
		WideKernels:     WideAccelerated(),
		DebugAssertions: DebugAssertions(),
		Serialization:   Serialization,
	}
}
