// Package core implements the falling-block puzzle rules: the background
// matrix, the active brick with rotation and kicks, hold/swap, the 7-bag
// generator, line clears, scoring and the fall-speed curve.
//
// The package has no UI or storage dependencies. Hosts drive it through
// Controller and consume the ViewData/DownData values it returns. Every
// Matrix handed across the package boundary is a deep copy, so callers may
// mutate what they receive without corrupting engine state.
//
// Nothing here is safe for concurrent use. The host must serialize timer
// ticks and input commands onto a single call path.
package core
