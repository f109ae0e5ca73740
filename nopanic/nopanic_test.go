//go:build unit && nopanic_debug

package nopanic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugBuildFlag(t *testing.T) {
	t.Parallel()

	require.True(t, Debug)
}

func TestUnreachablePanicsWithFormattedMessage(t *testing.T) {
	logs := setObservedLogger(t)

	require.PanicsWithValue(t, "state 3 is neither open nor closed", func() {
		Unreachable("state %d is neither open nor closed", 3)
	})

	entries := logs.All()
	require.NotEmpty(t, entries)
	require.Contains(t, entries[0].Message, "violation: state 3 is neither open nor closed")
	require.Contains(t, entries[0].Message, "source=unreachable")
}

func TestAssertHoldsWithoutSideEffect(t *testing.T) {
	logs := setObservedLogger(t)

	require.NotPanics(t, func() {
		Assert(true, "size != 0")
	})

	require.Empty(t, logs.All())
}

func TestAssertViolationPanicsWithMessage(t *testing.T) {
	logs := setObservedLogger(t)

	require.PanicsWithValue(t, "size != 0", func() {
		Assert(false, "size != 0")
	})

	entries := logs.All()
	require.NotEmpty(t, entries)
	require.Contains(t, entries[0].Message, "violation: size != 0")
	require.Contains(t, entries[0].Message, "source=assert")
	require.Contains(t, entries[0].Message, "stack trace:")
}
