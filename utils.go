package wallcut

import (
	"math"
	"strconv"
)

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / math.Pi) * radians
}

// finite maps NaN and infinities to 0, the value an empty or garbled
// form field coerces to.
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// clampDim returns the geometry length used for a dimension field.
func clampDim(x float64) float64 {
	return math.Max(finite(x), 1)
}

// FormatMM formats a millimetre value for a dimension label, e.g. "12.5 mm".
func FormatMM(v float64) string {
	if v == 0 {
		v = 0 // -0 reads as 0
	}
	return strconv.FormatFloat(finite(v), 'f', -1, 64) + " mm"
}
