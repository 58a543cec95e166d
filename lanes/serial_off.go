//go:build lanes_noserial

package lanes

// Serialization reports whether JSON/YAML encoding methods are compiled in.
const Serialization = false
