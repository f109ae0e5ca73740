package nopanic

// Protect runs fn and returns its result, treating a panic that unwinds out
// of fn as a violation.
//
// Debug builds run fn directly, so a panic propagates to the caller and
// keeps its original stack. Strict builds install a guard that routes the
// unwind to the undefined symbol; Go gives the optimizer no way to prove
// that fn cannot panic, so in a strict build a reachable Protect call is an
// obligation that only an eliminated call discharges.
func Protect[T any](fn func() T) T {
	if Debug {
		return fn()
	}

	committed := false
	defer func() {
		if !committed {
			trap(sourceProtect, "panic escaped protected call")
		}
	}()

	v := fn()
	committed = true

	return v
}
