package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    float64
		n    int
		want int
	}{
		{name: "zero", r: 0, n: 4, want: 0},
		{name: "just below quarter", r: 0.2499, n: 4, want: 0},
		{name: "quarter", r: 0.25, n: 4, want: 1},
		{name: "upper bound", r: 0.9999, n: 4, want: 3},
		{name: "one is clamped", r: 1, n: 4, want: 3},
		{name: "single element", r: 0.7, n: 1, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, UniformIndex(tc.r, tc.n))
		})
	}
}

func TestLegacyIndexRoundsOverLastIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, LegacyIndex(0.1, 4))
	assert.Equal(t, 1, LegacyIndex(0.2, 4))
	assert.Equal(t, 3, LegacyIndex(0.9, 4))
	assert.Equal(t, 0, LegacyIndex(0.9, 1))
}

func TestUniformIndexCoversEveryIndexEvenly(t *testing.T) {
	t.Parallel()

	const n = 5
	const steps = 1000
	counts := make([]int, n)
	for i := 0; i < steps; i++ {
		counts[UniformIndex((float64(i)+0.5)/steps, n)]++
	}

	for index, count := range counts {
		assert.Equal(t, steps/n, count, "index %d", index)
	}
}

func TestNewIndexPickerUsesMode(t *testing.T) {
	t.Parallel()

	source := func() float64 { return 0.6 }

	assert.Equal(t, 2, NewIndexPicker(DrawModeUniform, source)(4))
	assert.Equal(t, 2, NewIndexPicker(DrawModeLegacy, source)(4))
	assert.Equal(t, 1, NewIndexPicker(DrawModeUniform, source)(2))
	assert.Equal(t, 1, NewIndexPicker(DrawModeLegacy, source)(2))
	assert.Equal(t, 1, NewIndexPicker(DrawModeUniform, func() float64 { return 0.3 })(4))
	assert.Equal(t, 1, NewIndexPicker(DrawModeLegacy, func() float64 { return 0.3 })(4))
}

func TestParseDrawMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseDrawMode("")
	require.NoError(t, err)
	assert.Equal(t, DrawModeUniform, mode)

	mode, err = ParseDrawMode("legacy")
	require.NoError(t, err)
	assert.Equal(t, DrawModeLegacy, mode)

	_, err = ParseDrawMode("weighted")
	assert.ErrorContains(t, err, "unsupported draw mode")
}
