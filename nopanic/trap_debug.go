//go:build nopanic_debug

package nopanic

import (
	"context"
	"fmt"
)

// Debug reports whether the binary was built with the nopanic_debug tag.
const Debug = true

func trap(source, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	reportViolation(context.Background(), source, msg)
	panic(msg)
}
