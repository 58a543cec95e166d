//go:build lanesdebug

package lanes

const debugBuild = true
