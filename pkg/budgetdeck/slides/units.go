package slides

// EMUPerInch is the number of EMUs (English Metric Units) per inch.
const EMUPerInch = 914400

// EMUPerPoint is the number of EMUs per typographic point (1/72 inch).
const EMUPerPoint = EMUPerInch / 72

// Inches converts a length in inches to EMU.
func Inches(in float64) int64 {
	return int64(in * EMUPerInch)
}
