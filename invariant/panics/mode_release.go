//go:build release

package panics

const debugBuild = false
