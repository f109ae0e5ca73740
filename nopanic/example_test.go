//go:build unit

package nopanic

import (
	"fmt"

	"go.uber.org/zap"
)

func ExampleSetLogger() {
	logger := zap.NewNop().Sugar()

	SetLogger(logger)
	defer SetLogger(nil)

	fmt.Println(GetLogger() != nil)
	// Output: true
}
