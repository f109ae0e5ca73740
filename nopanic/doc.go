// Package nopanic turns selected runtime panics into link-time proof
// obligations.
//
// In the default (strict) build, every violation path calls a function that
// is declared but defined nowhere, so a binary only links when the compiler
// has proven those paths unreachable. Building with -tags nopanic_debug
// swaps the undefined call for a reported runtime panic carrying the same
// message, which keeps normal debugging workflows intact.
package nopanic
