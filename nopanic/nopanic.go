package nopanic

// Violation sources, recorded as the nopanic.source attribute when a debug
// build reports a violation.
const (
	sourceUnreachable = "unreachable"
	sourceAssert      = "assert"
	sourceGroup       = "group"
	sourceProtect     = "protect"
)

// Unreachable marks a code path the caller believes can never execute.
//
// In a strict build the call compiles into a reference to an undefined
// symbol, so the obligation is discharged only when the compiler eliminates
// the path. In a debug build it reports the violation and panics with the
// formatted message.
//
// Example:
//
//	switch state {
//	case stateOpen, stateClosed:
//		return handle(state)
//	default:
//		nopanic.Unreachable("state %d is neither open nor closed", state)
//		return nil
//	}
func Unreachable(format string, args ...any) {
	trap(sourceUnreachable, format, args...)
}

// Assert checks an invariant that the surrounding code is supposed to make
// hold. When cond is false the violation path is taken; in a strict build
// that path must be proven dead for the program to link.
//
// The condition should be cheap: in a strict build it is expected to fold
// away entirely, and in a debug build it runs on every call.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		trap(sourceAssert, format, args...)
	}
}
