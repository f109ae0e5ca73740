//go:build unit

package checked

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromRawSharesBackingArray(t *testing.T) {
	t.Parallel()

	s := []int{10, 20, 30, 40}
	raw := From(s).Raw()

	require.Equal(t, s, raw)
	require.Same(t, &s[0], &raw[0])
	require.Len(t, raw, len(s))
}

func TestLenAndIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		len   int
		empty bool
	}{
		{name: "nil slice", input: nil, len: 0, empty: true},
		{name: "empty slice", input: []string{}, len: 0, empty: true},
		{name: "populated slice", input: []string{"a", "b"}, len: 2, empty: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := From(tt.input)
			require.Equal(t, tt.len, s.Len())
			require.Equal(t, tt.empty, s.IsEmpty())
		})
	}
}

func TestFirst(t *testing.T) {
	t.Parallel()

	s := []int{10, 20, 30, 40}

	first, ok := From(s).First()
	require.True(t, ok)
	require.Same(t, &s[0], first)

	*first = 11
	require.Equal(t, 11, s[0])

	none, ok := From([]int(nil)).First()
	require.False(t, ok)
	require.Nil(t, none)
}

func TestSplitFirst(t *testing.T) {
	t.Parallel()

	s := []int{10, 20, 30, 40}

	first, rest, ok := From(s).SplitFirst()
	require.True(t, ok)
	require.Same(t, &s[0], first)
	require.Equal(t, []int{20, 30, 40}, rest)
	require.Same(t, &s[1], &rest[0])

	_, _, ok = From([]int{}).SplitFirst()
	require.False(t, ok)
}

func TestSplitLast(t *testing.T) {
	t.Parallel()

	s := []int{10, 20, 30, 40}

	last, rest, ok := From(s).SplitLast()
	require.True(t, ok)
	require.Same(t, &s[3], last)
	require.Equal(t, []int{10, 20, 30}, rest)
	require.Same(t, &s[0], &rest[0])

	_, _, ok = From([]int{}).SplitLast()
	require.False(t, ok)
}

func TestSplitSingleElement(t *testing.T) {
	t.Parallel()

	s := []int{7}

	first, rest, ok := From(s).SplitFirst()
	require.True(t, ok)
	require.Same(t, &s[0], first)
	require.Empty(t, rest)

	last, before, ok := From(s).SplitLast()
	require.True(t, ok)
	require.Same(t, &s[0], last)
	require.Empty(t, before)
}
