package worksheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platekit/moody"
)

// closureTol is the acceptable floating point error of the closure
// properties, in arc seconds.
const closureTol = 1e-4

func TestMidValue(t *testing.T) {
	// Length 5: four intervals, even, so the exact middle row.
	assert.Equal(t, 3.0, MidValue([]float64{1, 2, 3, 4, 5}))
	// Length 4: three intervals, odd, so the average of the two central
	// rows.
	assert.Equal(t, 2.5, MidValue([]float64{1, 2, 3, 4}))
}

func TestBaseColumns(t *testing.T) {
	s, err := New(moody.NWSE, []float64{20.5, 20.0, 19.5, 21.0}, 126)
	require.NoError(t, err)
	s.BaseColumns()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Station)
	assert.Equal(t, 0.0, s.Delta[1])
	assert.Equal(t, 0.0, s.CumDelta[1])
	assert.InDeltaSlice(t, []float64{0, 0, -0.5, -1.0, 0.5}, s.Delta, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, -0.5, -1.5, -1.0}, s.CumDelta, 1e-12)
}

func TestCloseDiagonal(t *testing.T) {
	s, err := New(moody.NESW, []float64{0, 10, 0}, 126)
	require.NoError(t, err)
	s.BaseColumns()

	assert.InDeltaSlice(t, []float64{0, 0, 10, 0}, s.Delta, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 10, 10}, s.CumDelta, 1e-12)

	s.CloseDiagonal()

	// The ramp must be doing real work for a drifting profile.
	nonzero := false
	for _, c := range s.Correction {
		if c != 0 {
			nonzero = true
		}
	}
	assert.True(t, nonzero)

	// Both endpoints land at 0.5*total - mid and the corrected mid value
	// is pinned to zero: the closed-loop constraint of a diagonal run.
	b := 0.5*s.CumDelta[s.N] - MidValue(s.CumDelta)
	assert.InDelta(t, b, s.Corrected[0], closureTol)
	assert.InDelta(t, b, s.Corrected[s.N], closureTol)
	assert.InDelta(t, 0, MidValue(s.Corrected), closureTol)
}

func TestCloseDiagonalLongProfile(t *testing.T) {
	raw := []float64{3.2, 3.0, 2.5, 2.9, 3.4, 3.1, 2.8, 3.0}
	s, err := New(moody.NWSE, raw, 126)
	require.NoError(t, err)
	s.BaseColumns()
	s.CloseDiagonal()

	b := 0.5*s.CumDelta[s.N] - MidValue(s.CumDelta)
	assert.InDelta(t, b, s.Corrected[0], closureTol)
	assert.InDelta(t, b, s.Corrected[s.N], closureTol)
	assert.InDelta(t, 0, MidValue(s.Corrected), closureTol)
}

func TestShiftCorrectAnchorsBounds(t *testing.T) {
	s, err := New(moody.NENW, []float64{1.0, 2.0, 0.5, 1.5, 2.5}, 126)
	require.NoError(t, err)
	s.BaseColumns()

	s.SetBounds(1.5, -2.0)
	s.ShiftCorrect()

	assert.InDelta(t, 1.5, s.Corrected[0], closureTol)
	assert.InDelta(t, -2.0, s.Corrected[s.N], closureTol)

	// The correction column is a linear ramp between its endpoints.
	factor := (s.Correction[0] - s.Correction[s.N]) / float64(s.N)
	for j := 1; j <= s.N; j++ {
		assert.InDelta(t, factor, s.Correction[j-1]-s.Correction[j], closureTol)
	}
}

func TestShiftCorrectCenteredColumn(t *testing.T) {
	s, err := New(moody.EW, []float64{0.5, 1.0, -0.5, 0.0}, 126)
	require.NoError(t, err)
	s.BaseColumns()

	s.SetBounds(0.25, -0.75)
	s.ShiftCorrect()

	require.NotNil(t, s.Centered)
	mid := MidValue(s.Corrected)
	for j := 0; j <= s.N; j++ {
		assert.InDelta(t, s.Corrected[j]-mid, s.Centered[j], closureTol)
	}
	assert.InDelta(t, 0, MidValue(s.Centered), closureTol)
}

// surveySet builds a set with mild non-zero readings on every line.
func surveySet(t *testing.T) *Set {
	var raw [moody.LineCount][]float64
	counts := [moody.LineCount]int{10, 10, 7, 7, 7, 7, 7, 7}
	for i, n := range counts {
		raw[i] = make([]float64, n)
		for j := range raw[i] {
			// A deterministic wobble, different per line.
			raw[i][j] = float64((j*(i+3))%5) * 0.5
		}
	}
	set, err := NewSet(raw, moody.MaxStationsDefault)
	require.NoError(t, err)
	return set
}

func TestPropagateCorners(t *testing.T) {
	set := surveySet(t)
	for _, s := range set {
		s.BaseColumns()
	}
	set[moody.NWSE].CloseDiagonal()
	set[moody.NESW].CloseDiagonal()
	set.PropagateCorners()

	nwse, nesw := set[moody.NWSE], set[moody.NESW]
	ne, sw := nesw.Corrected[0], nesw.Corrected[nesw.N]
	nw, se := nwse.Corrected[0], nwse.Corrected[nwse.N]

	assert.Equal(t, ne, set[moody.NENW].Corrected[0])
	assert.Equal(t, ne, set[moody.NESE].Corrected[0])
	assert.Equal(t, nw, set[moody.NENW].Corrected[set[moody.NENW].N])
	assert.Equal(t, nw, set[moody.NWSW].Corrected[0])
	assert.Equal(t, se, set[moody.NESE].Corrected[set[moody.NESE].N])
	assert.Equal(t, se, set[moody.SESW].Corrected[0])
	assert.Equal(t, sw, set[moody.SESW].Corrected[set[moody.SESW].N])
	assert.Equal(t, sw, set[moody.NWSW].Corrected[set[moody.NWSW].N])

	// Start-row corrections are anchored along with the heights.
	assert.Equal(t, ne, set[moody.NENW].Correction[0])
	assert.Equal(t, se, set[moody.SESW].Correction[0])
}

func TestPropagateMidpoints(t *testing.T) {
	set := surveySet(t)
	for _, s := range set {
		s.BaseColumns()
	}
	set[moody.NWSE].CloseDiagonal()
	set[moody.NESW].CloseDiagonal()
	set.PropagateCorners()
	for _, ln := range moody.Lines() {
		if ln.Role == moody.Perimeter {
			set[ln.Name].ShiftCorrect()
		}
	}
	set.PropagateMidpoints()

	ew, ns := set[moody.EW], set[moody.NS]
	assert.Equal(t, MidValue(set[moody.NESE].Corrected), ew.Corrected[0])
	assert.Equal(t, MidValue(set[moody.NWSW].Corrected), ew.Corrected[ew.N])
	assert.Equal(t, MidValue(set[moody.NENW].Corrected), ns.Corrected[0])
	assert.Equal(t, MidValue(set[moody.SESW].Corrected), ns.Corrected[ns.N])
}

func TestRunNormalization(t *testing.T) {
	set := surveySet(t)
	conv := moody.Conversion{Unit: moody.Metric, FootSpacing: 66.0}
	peak := set.Run(conv)

	min := set[0].Normalized[0]
	for _, s := range set {
		for j := 0; j <= s.N; j++ {
			assert.True(t, s.Normalized[j] >= 0,
				"normalized height must be non-negative")
			if s.Normalized[j] < min {
				min = s.Normalized[j]
			}
		}
	}
	assert.InDelta(t, 0, min, closureTol,
		"the lowest point anchors the datum at exactly zero")

	lo, hi := set.HeightRange()
	assert.InDelta(t, conv.Height(hi-lo), peak, closureTol)
}

func TestRunBoundaryAnchorsSurvive(t *testing.T) {
	set := surveySet(t)
	set.Run(moody.Conversion{Unit: moody.Metric, FootSpacing: 66.0})

	corners := set.Corners()
	for _, ln := range moody.Lines() {
		if ln.Role != moody.Perimeter {
			continue
		}
		s := set[ln.Name]
		assert.InDelta(t, corners[ln.Start], s.Corrected[0], closureTol)
		assert.InDelta(t, corners[ln.End], s.Corrected[s.N], closureTol)
	}
}

func TestRunAllZeros(t *testing.T) {
	set := zeroSet(t, [moody.LineCount]int{10, 10, 7, 7, 7, 7, 7, 7})
	peak := set.Run(moody.Conversion{Unit: moody.Metric, FootSpacing: 66.0})

	assert.Equal(t, 0.0, peak)
	for _, s := range set {
		for j := 0; j <= s.N; j++ {
			assert.Equal(t, 0.0, s.Corrected[j])
			assert.Equal(t, 0.0, s.Normalized[j])
			assert.Equal(t, 0.0, s.Physical[j])
		}
		if s.Centered != nil {
			for j := 0; j <= s.N; j++ {
				assert.Equal(t, 0.0, s.Centered[j])
			}
		}
	}
}

func TestConvertUnitsLinearInSpacing(t *testing.T) {
	single := surveySet(t)
	double := surveySet(t)

	single.Run(moody.Conversion{Unit: moody.Imperial, FootSpacing: 4.0})
	double.Run(moody.Conversion{Unit: moody.Imperial, FootSpacing: 8.0})

	for i := range single {
		for j := 0; j <= single[i].N; j++ {
			assert.InDelta(t,
				2*single[i].Physical[j], double[i].Physical[j], closureTol,
			)
		}
	}
}
