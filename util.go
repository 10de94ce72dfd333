package csscolor

import "math"

func fuzzyEquals(a, b float64) bool {
	return math.Abs(a-b) < fuzzyEpsilon
}

func fuzzyGreaterEquals(a, b float64) bool {
	return a > b || fuzzyEquals(a, b)
}

func fuzzyLessEquals(a, b float64) bool {
	return a < b || fuzzyEquals(a, b)
}

func fuzzyInRange(v, min, max float64) bool {
	return fuzzyGreaterEquals(v, min) && fuzzyLessEquals(v, max)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// normalizeHue reduces an angle in degrees to [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
