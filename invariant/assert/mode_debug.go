//go:build !release

package assert

const debugBuild = true
