package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueCountsOrder(t *testing.T) {
	counts := ValueCounts([]string{"b", "a", "c", "b", "a", "d", "b"})
	assert.Equal(t, []Count[string]{
		{Value: "b", Count: 3},
		{Value: "a", Count: 2},
		{Value: "c", Count: 1},
		{Value: "d", Count: 1},
	}, counts)
}

func TestModeTieBreaksToLowestValue(t *testing.T) {
	mode, ok := Mode([]int{6, 2, 6, 2, 9})
	require.True(t, ok)
	assert.Equal(t, Count[int]{Value: 2, Count: 2}, mode)
}

func TestModeEmpty(t *testing.T) {
	_, ok := Mode([]int(nil))
	assert.False(t, ok)
}

func TestMinMax(t *testing.T) {
	lo, hi, ok := MinMax([]int{1985, 1950, 2001, 1990})
	require.True(t, ok)
	assert.Equal(t, 1950, lo)
	assert.Equal(t, 2001, hi)

	_, _, ok = MinMax([]int{})
	assert.False(t, ok)
}
