package config

import "math"

// PointsPerTenthMM converts tenths of a millimeter to PDF points
// (1 mm = 2.83464567 pt).
const PointsPerTenthMM = 0.283464567

// TenthsToPoints converts a length in tenths of a millimeter to whole points,
// rounding to the nearest integer. 1580 tenths (158 mm) is 448 pt.
func TenthsToPoints(tenths int) float64 {
	return math.Round(float64(tenths) * PointsPerTenthMM)
}
