//go:build !nopanic_debug

package nopanic

// Debug reports whether the binary was built with the nopanic_debug tag.
const Debug = false

// panicCalledWhereShouldnt is declared but defined nowhere, in any build.
// The empty stub.s file makes the compiler accept the bodyless declaration
// and defer resolution to the linker, which runs dead-code elimination
// before resolving relocations. A call the compiler eliminated leaves no
// relocation behind and the binary links; a surviving call fails the link
// naming this symbol and the function that kept it alive.
func panicCalledWhereShouldnt()

func trap(source, format string, args ...any) {
	panicCalledWhereShouldnt()
}
