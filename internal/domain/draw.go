package domain

import (
	"fmt"
	"math"
)

type DrawMode string

const (
	// DrawModeUniform picks floor(r * n), every index equally likely.
	DrawModeUniform DrawMode = "uniform"
	// DrawModeLegacy picks round(r * (n-1)), which halves the weight of
	// the first and last index. Kept for parity with older sessions.
	DrawModeLegacy DrawMode = "legacy"
)

func ParseDrawMode(raw string) (DrawMode, error) {
	switch DrawMode(raw) {
	case "", DrawModeUniform:
		return DrawModeUniform, nil
	case DrawModeLegacy:
		return DrawModeLegacy, nil
	default:
		return "", fmt.Errorf("unsupported draw mode %q", raw)
	}
}

// IndexPicker maps a pool size n > 0 to an index in [0, n-1].
type IndexPicker func(n int) int

// NewIndexPicker adapts a source of floats in [0, 1) to the given mode.
func NewIndexPicker(mode DrawMode, float func() float64) IndexPicker {
	if mode == DrawModeLegacy {
		return func(n int) int {
			return LegacyIndex(float(), n)
		}
	}

	return func(n int) int {
		return UniformIndex(float(), n)
	}
}

func UniformIndex(r float64, n int) int {
	return clampIndex(int(math.Floor(r*float64(n))), n)
}

func LegacyIndex(r float64, n int) int {
	return clampIndex(int(math.Round(r*float64(n-1))), n)
}

func clampIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n-1 {
		return n - 1
	}

	return index
}
