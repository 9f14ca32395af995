package worksheet

import (
	"github.com/platekit/moody"
)

// MidValue returns the central value of a worksheet column. For a column
// spanning N intervals (N+1 rows), an even N selects row N/2 and an odd N
// averages rows (N-1)/2 and (N+1)/2. The parity test is on the interval
// count, not the row count.
func MidValue(col []float64) float64 {
	n := len(col) - 1
	if n%2 == 0 {
		return col[n/2]
	}
	a := col[(n-1)/2]
	b := col[(n+1)/2]
	return 0.5 * (a + b)
}

// BaseColumns fills the station labels, the per-station angular
// displacements and their running sum. Displacements are taken relative to
// the first reading, so Delta[1] and CumDelta[1] are zero by construction.
func (s *Sheet) BaseColumns() {
	for j := 0; j <= s.N; j++ {
		s.Station[j] = j + 1
	}
	for j := 1; j <= s.N; j++ {
		s.Delta[j] = s.Raw[j] - s.Raw[1]
	}
	s.CumDelta[0], s.CumDelta[1] = 0, 0
	for j := 2; j <= s.N; j++ {
		s.CumDelta[j] = s.CumDelta[j-1] + s.Delta[j]
	}
}

// CloseDiagonal applies the closure correction for a diagonal line: a
// linear ramp that cancels the net angular drift and centers the profile
// on its own mid value. Afterwards both endpoints sit at
// 0.5*CumDelta[N] - MidValue(CumDelta) and MidValue(Corrected) is zero,
// which pins the plate center at height zero.
func (s *Sheet) CloseDiagonal() {
	total := s.CumDelta[s.N]
	a := -total / float64(s.N)
	b := 0.5*total - MidValue(s.CumDelta)
	for j := 0; j <= s.N; j++ {
		s.Correction[j] = a*float64(j) + b
		s.Corrected[j] = s.CumDelta[j] + s.Correction[j]
	}
}

// SetBounds anchors the two boundary rows to externally determined heights
// before shift correction: plate corners for perimeter lines, perimeter
// mid values for center lines.
func (s *Sheet) SetBounds(start, end float64) {
	s.Correction[0] = start
	s.Corrected[0] = start
	s.Corrected[s.N] = end
}

// ShiftCorrect distributes the mismatch between the anchored boundary rows
// linearly across the interior stations. SetBounds must have been called
// first. For center lines the Centered column is also filled: the profile
// relative to its own mid value, which is Moody's measurement-error
// signal.
func (s *Sheet) ShiftCorrect() {
	s.Correction[s.N] = s.Corrected[s.N] - s.CumDelta[s.N]
	factor := (s.Correction[0] - s.Correction[s.N]) / float64(s.N)
	for j := s.N - 1; j > 0; j-- {
		s.Correction[j] = s.Correction[j+1] + factor
		s.Corrected[j] = s.Correction[j] + s.CumDelta[j]
	}

	if s.Line.Role == moody.Center {
		mid := MidValue(s.Corrected)
		for j := 0; j <= s.N; j++ {
			s.Centered[j] = s.Corrected[j] - mid
		}
	}
}

// Corners returns the heights of the four plate corners, defined by the
// endpoints of the closed diagonals. CloseDiagonal must have run on both
// diagonals first.
func (set *Set) Corners() map[string]float64 {
	corners := map[string]float64{}
	for _, ln := range moody.Lines() {
		if ln.Role != moody.Diagonal {
			continue
		}
		s := set[ln.Name]
		corners[ln.Start] = s.Corrected[0]
		corners[ln.End] = s.Corrected[s.N]
	}
	return corners
}

// PropagateCorners anchors each perimeter line's boundary rows to the
// corner heights of the two diagonal endpoints it connects.
func (set *Set) PropagateCorners() {
	corners := set.Corners()
	for _, ln := range moody.Lines() {
		if ln.Role != moody.Perimeter {
			continue
		}
		set[ln.Name].SetBounds(corners[ln.Start], corners[ln.End])
	}
}

// PropagateMidpoints anchors each center line's boundary rows to the
// corrected mid values of the two perimeter lines it joins. The perimeter
// lines must already be shift-corrected.
func (set *Set) PropagateMidpoints() {
	mids := map[string]float64{}
	for _, ln := range moody.Lines() {
		if ln.Role != moody.Perimeter {
			continue
		}
		mids[ln.Mid] = MidValue(set[ln.Name].Corrected)
	}
	for _, ln := range moody.Lines() {
		if ln.Role != moody.Center {
			continue
		}
		set[ln.Name].SetBounds(mids[ln.Start], mids[ln.End])
	}
}

// heightSource is the column the global datum is taken from: Centered for
// center lines, Corrected for everything else.
func (s *Sheet) heightSource() []float64 {
	if s.Line.Role == moody.Center {
		return s.Centered
	}
	return s.Corrected
}

// HeightRange returns the lowest and highest height across all eight
// worksheets, in arc seconds.
func (set *Set) HeightRange() (min, max float64) {
	min = set[0].Corrected[0]
	max = set[0].Corrected[0]
	for _, s := range set {
		for _, h := range s.heightSource() {
			if h < min {
				min = h
			}
			if h > max {
				max = h
			}
		}
	}
	return min, max
}

// Normalize rebases every worksheet onto a shared datum at the plate's
// lowest point, so that Normalized is non-negative everywhere and exactly
// zero somewhere.
func (set *Set) Normalize() {
	min, _ := set.HeightRange()
	for _, s := range set {
		src := s.heightSource()
		for j := 0; j <= s.N; j++ {
			s.Normalized[j] = src[j] - min
		}
	}
}

// ConvertUnits fills the Physical column from Normalized.
func (set *Set) ConvertUnits(conv moody.Conversion) {
	for _, s := range set {
		for j := 0; j <= s.N; j++ {
			s.Physical[j] = conv.Height(s.Normalized[j])
		}
	}
}

// Run executes the full column pipeline in dependency order: base columns,
// diagonal closure, corner propagation, perimeter shift correction, center
// line anchoring and shift correction, global normalization and unit
// conversion. It returns the overall plate height, peak above lowest
// point, in the output unit.
func (set *Set) Run(conv moody.Conversion) (peak float64) {
	for _, s := range set {
		s.BaseColumns()
	}
	for _, ln := range moody.Lines() {
		if ln.Role == moody.Diagonal {
			set[ln.Name].CloseDiagonal()
		}
	}

	set.PropagateCorners()
	for _, ln := range moody.Lines() {
		if ln.Role == moody.Perimeter {
			set[ln.Name].ShiftCorrect()
		}
	}

	set.PropagateMidpoints()
	for _, ln := range moody.Lines() {
		if ln.Role == moody.Center {
			set[ln.Name].ShiftCorrect()
		}
	}

	min, max := set.HeightRange()
	set.Normalize()
	set.ConvertUnits(conv)

	return conv.Height(max - min)
}
