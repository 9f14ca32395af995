/*Package worksheet implements Moody's leveling worksheets: per-line tables
of raw autocollimator readings and the derived columns that turn them into
absolute plate heights.

Column names follow Moody's worksheet semantics rather than his column
numbers: Raw is column 2, Delta column 3, CumDelta column 4, Correction
column 5, Corrected column 6, Centered column 6a (center lines only),
Normalized column 7 and Physical column 8.
*/
package worksheet

import (
	"fmt"

	"github.com/platekit/moody"
)

// Sheet is the worksheet for a single measurement line. A line with N
// measured intervals has N+1 rows indexed 0..N; row 0 is the synthetic
// starting station, real readings occupy rows 1..N.
type Sheet struct {
	Line moody.Line
	// N is the number of measured intervals (= number of readings).
	N int

	// Station holds the display labels 1..N+1.
	Station []int
	// Raw holds the readings in arc seconds; Raw[0] is unused.
	Raw []float64
	// Delta is the reading relative to the first reading.
	Delta []float64
	// CumDelta is the running sum of Delta: the uncorrected profile.
	CumDelta []float64
	// Correction removes the systematic closure error.
	Correction []float64
	// Corrected is the closed, boundary-anchored height in arc seconds.
	Corrected []float64
	// Centered is Corrected minus the line's own mid value. Only center
	// lines carry it; nil otherwise.
	Centered []float64
	// Normalized is the height above the plate's lowest point.
	Normalized []float64
	// Physical is Normalized converted to the output length unit.
	Physical []float64
}

// InsufficientDataError reports a line with too few readings to close a
// worksheet.
type InsufficientDataError struct {
	Line  moody.Name
	Count int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf(
		"read %d values for line %s, but need at least 3 to fill a worksheet",
		e.Count, e.Line,
	)
}

// CapacityExceededError reports a line with more readings than the
// configured station cap.
type CapacityExceededError struct {
	Line       moody.Name
	Count, Max int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"read %d values for line %s, but at most %d stations are allowed",
		e.Count, e.Line, e.Max,
	)
}

// New creates the worksheet for a line from its raw readings, in order
// along the line. maxStations bounds the accepted reading count.
func New(name moody.Name, raw []float64, maxStations int) (*Sheet, error) {
	n := len(raw)
	if n < 3 {
		return nil, &InsufficientDataError{name, n}
	}
	if n > maxStations {
		return nil, &CapacityExceededError{name, n, maxStations}
	}

	s := &Sheet{Line: moody.Get(name), N: n}
	rows := n + 1

	s.Station = make([]int, rows)
	s.Raw = make([]float64, rows)
	s.Delta = make([]float64, rows)
	s.CumDelta = make([]float64, rows)
	s.Correction = make([]float64, rows)
	s.Corrected = make([]float64, rows)
	s.Normalized = make([]float64, rows)
	s.Physical = make([]float64, rows)
	if s.Line.Role == moody.Center {
		s.Centered = make([]float64, rows)
	}

	copy(s.Raw[1:], raw)
	return s, nil
}

// Set holds the eight worksheets in processing order, indexed by line name.
type Set [moody.LineCount]*Sheet

// NewSet creates the full worksheet set from the eight raw reading
// sequences, indexed by line name.
func NewSet(raw [moody.LineCount][]float64, maxStations int) (*Set, error) {
	set := new(Set)
	for _, ln := range moody.Lines() {
		s, err := New(ln.Name, raw[ln.Name], maxStations)
		if err != nil {
			return nil, err
		}
		set[ln.Name] = s
	}
	return set, nil
}

// Counts returns the interval count of every line.
func (set *Set) Counts() [moody.LineCount]int {
	var counts [moody.LineCount]int
	for i, s := range set {
		counts[i] = s.N
	}
	return counts
}
