/*Package analyze runs the advisory consistency checks of Moody's method.
None of the checks alter computed values or abort a run; they produce
warnings and a pass/fail judgment for the operator.
*/
package analyze

import (
	"fmt"
	"math"

	"github.com/platekit/moody"
	"github.com/platekit/moody/worksheet"
)

// Moody's acceptance threshold for the center line self-check: 100
// micro-inch = 2.54 micron.
const (
	metricTolerance   = 2.54 // microns
	imperialTolerance = 10.0 // 1e-5 inch
)

// pythagorasTolerance is the accepted deviation of the diagonal station
// count from the perimeter counts. A literal contract from the method,
// not a tunable.
const pythagorasTolerance = 1.5

// legTriples lists the station-count groups expected to agree: a perimeter
// leg, the opposite leg, and the center line parallel to them.
var legTriples = [2][3]moody.Name{
	{moody.NENW, moody.SESW, moody.EW},
	{moody.NESE, moody.NWSW, moody.NS},
}

// diagonalLegs pairs each diagonal with the two perimeter legs it spans.
var diagonalLegs = [2][3]moody.Name{
	{moody.NENW, moody.NESE, moody.NWSE},
	{moody.SESW, moody.NWSW, moody.NESW},
}

// StationCounts warns when the station counts of lines that should agree
// do not: the two diagonals, and each leg/leg/center triple.
func StationCounts(set *worksheet.Set) []string {
	var warnings []string

	if set[moody.NWSE].N != set[moody.NESW].N {
		warnings = append(warnings, fmt.Sprintf(
			"the number of stations along the %s and %s diagonals "+
				"are expected to be the same, but are not",
			moody.NWSE, moody.NESW,
		))
	}

	for _, triple := range legTriples {
		a, b, c := set[triple[0]].N, set[triple[1]].N, set[triple[2]].N
		if a != b || b != c {
			warnings = append(warnings, fmt.Sprintf(
				"the number of stations along the three lines "+
					"%s, %s and %s are expected to be the same, but are not",
				triple[0], triple[1], triple[2],
			))
		}
	}

	return warnings
}

// Pythagoras warns when a diagonal's station count deviates from the
// count implied by its two perimeter legs, sqrt(x^2 + y^2), by more than
// the tolerance. A sanity check on station density, not geometry proper.
func Pythagoras(set *worksheet.Set) []string {
	var warnings []string

	for _, legs := range diagonalLegs {
		x := float64(set[legs[0]].N)
		y := float64(set[legs[1]].N)
		z := float64(set[legs[2]].N)

		if math.Abs(math.Hypot(x, y)-z) > pythagorasTolerance {
			warnings = append(warnings, fmt.Sprintf(
				"the number of stations along the perimeter lines and "+
					"diagonal lines deviates from Pythagoras' theorem "+
					"x^2 + y^2 = z^2 for x = %d, y = %d and z = %d",
				int(x), int(y), int(z),
			))
		}
	}

	return warnings
}

// CenterError is the measurement-error estimate for one center line: the
// computed height at the middle of the line, which would be zero for a
// perfect survey.
type CenterError struct {
	Line moody.Name
	// Display is the height in the display unit: microns for metric runs,
	// micro-inches for imperial runs.
	Display float64
	// Acceptable reports whether the magnitude is within Moody's 100
	// micro-inch = 2.54 micron threshold.
	Acceptable bool
}

// CenterErrors judges the measurement error of both center lines. The
// pipeline must have completed. The second return value is true when both
// lines are acceptable.
func CenterErrors(set *worksheet.Set, conv moody.Conversion) ([]CenterError, bool) {
	ok := true
	var errs []CenterError

	for _, ln := range moody.Lines() {
		if ln.Role != moody.Center {
			continue
		}
		s := set[ln.Name]
		height := worksheet.MidValue(s.Corrected) * moody.Arcsec *
			conv.ScaledSpacing()

		var ce CenterError
		if conv.Unit == moody.Metric {
			ce = CenterError{
				Line:       ln.Name,
				Display:    height,
				Acceptable: math.Abs(height) <= metricTolerance,
			}
		} else {
			// height is in 1e-5 inch; display in micro-inches.
			ce = CenterError{
				Line:       ln.Name,
				Display:    10 * height,
				Acceptable: math.Abs(height) <= imperialTolerance,
			}
		}
		if !ce.Acceptable {
			ok = false
		}
		errs = append(errs, ce)
	}

	return errs, ok
}
