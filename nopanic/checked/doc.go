// Package checked wraps Go slices with bounds checks whose failure paths
// are nopanic violations: eliminated by the compiler when provably dead,
// link errors in strict builds otherwise, reported panics in debug builds.
package checked
