//go:build purego || !(amd64 || arm64)

package lanes

func init() {
	// purego builds and architectures without detection run in scalar mode.
	setScalarMode()
}
