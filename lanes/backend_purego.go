//go:build purego

package lanes

// Backend names the build flavor: "native" allows accelerated slice
// kernels (vek assembly, archsimd), "purego" forbids them.
const Backend = "purego"
