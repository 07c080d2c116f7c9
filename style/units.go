package style

import "math"

// Unit conversions shared by all rendering pipelines. Word processor values
// are integral (half-points and twentieths of a point), screen values are
// CSS pixels at 96 DPI.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm

	// CSS reference pixel density.
	PxPerInch = 96.0
	PtPerInch = 72.0
	MmPerInch = 25.4

	// A4 geometry.
	PageWidthMm  = 210.0
	PageHeightMm = 297.0
)

// PtToPx converts points to CSS pixels.
func PtToPx(pt float64) float64 {
	return pt * PxPerInch / PtPerInch
}

// MmToPx converts millimeters to CSS pixels.
func MmToPx(mm float64) float64 {
	return mm * PxPerInch / MmPerInch
}

// PageWidthPx and PageHeightPx are the A4 footprint at 96 DPI, rounded the
// way CSS engines round the "210mm"/"297mm" lengths.
const (
	PageWidthPx  = 794
	PageHeightPx = 1123
)

// HalfPoints converts a point size to the word processor run size unit.
func HalfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

// Twips converts points to twentieths of a point.
func Twips(pt float64) int {
	return int(math.Floor(pt * 20))
}

// MmToTwips converts millimeters to twentieths of a point.
func MmToTwips(mm float64) int {
	return int(math.Round(mm * MmToPt * 20))
}

// LineSpacingTwips converts a line height multiplier to the word processor
// "auto" line rule value (240ths of a line).
func LineSpacingTwips(lineHeight float64) int {
	return int(math.Floor(lineHeight * 240))
}
