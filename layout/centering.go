package layout

// Baseline correction table for numbers centered in a cell. Glyph ascent and
// descent are not symmetric, and the asymmetry grows with the font size, so
// the baseline sits fontSize*k below the cell center with k tuned by eye:
// flat up to 22 pt, then falling linearly by 0.05 over the next 6 pt and by
// another 0.05 every 8 pt after that.
const (
	correctionBase      = 0.35
	correctionKnee      = 22.0
	correctionMid       = 0.30
	correctionMidSize   = 28.0
	correctionFirstRun  = 6.0
	correctionSecondRun = 8.0
	correctionStep      = 0.05
)

// VerticalCorrection returns the factor k for fontSize.
func VerticalCorrection(fontSize float64) float64 {
	switch {
	case fontSize <= correctionKnee:
		return correctionBase
	case fontSize <= correctionMidSize:
		return correctionBase - (fontSize-correctionKnee)*(correctionStep/correctionFirstRun)
	default:
		return correctionMid - (fontSize-correctionMidSize)*(correctionStep/correctionSecondRun)
	}
}

// Baseline returns the text baseline that vertically centers a line of
// fontSize points on centerY.
func Baseline(centerY, fontSize float64) float64 {
	return centerY - fontSize*VerticalCorrection(fontSize)
}
