// Package highlight renders code-like strings with a color per token kind.
//
// Colors live in a ColorTable. The process-wide table backs Render and
// RenderFunction and may be updated from any goroutine; each render works
// from a snapshot taken when it starts.
package highlight
