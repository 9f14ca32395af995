package worksheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platekit/moody"
)

func TestNewTooFewReadings(t *testing.T) {
	_, err := New(moody.NWSE, []float64{1, 2}, 126)
	require.Error(t, err)

	insufficient, ok := err.(*InsufficientDataError)
	require.True(t, ok, "expected InsufficientDataError, got %T", err)
	assert.Equal(t, moody.NWSE, insufficient.Line)
	assert.Equal(t, 2, insufficient.Count)
}

func TestNewTooManyReadings(t *testing.T) {
	_, err := New(moody.EW, []float64{1, 2, 3, 4, 5}, 4)
	require.Error(t, err)

	exceeded, ok := err.(*CapacityExceededError)
	require.True(t, ok, "expected CapacityExceededError, got %T", err)
	assert.Equal(t, moody.EW, exceeded.Line)
	assert.Equal(t, 5, exceeded.Count)
	assert.Equal(t, 4, exceeded.Max)
}

func TestNewLayout(t *testing.T) {
	s, err := New(moody.NENW, []float64{3, 1, 4}, 126)
	require.NoError(t, err)

	assert.Equal(t, 3, s.N)
	assert.Equal(t, 4, len(s.Raw), "rows are 0..N")
	// Row 0 is the synthetic starting station.
	assert.Equal(t, 0.0, s.Raw[0])
	assert.Equal(t, []float64{0, 3, 1, 4}, s.Raw)
	assert.Nil(t, s.Centered, "only center lines carry the 6a column")

	c, err := New(moody.NS, []float64{3, 1, 4}, 126)
	require.NoError(t, err)
	assert.NotNil(t, c.Centered)
}

// zeroSet builds a worksheet set with all-zero readings and the given
// interval counts.
func zeroSet(t *testing.T, counts [moody.LineCount]int) *Set {
	var raw [moody.LineCount][]float64
	for i, n := range counts {
		raw[i] = make([]float64, n)
	}
	set, err := NewSet(raw, moody.MaxStationsDefault)
	require.NoError(t, err)
	return set
}

func TestNewSetCounts(t *testing.T) {
	counts := [moody.LineCount]int{10, 10, 7, 7, 7, 7, 7, 7}
	set := zeroSet(t, counts)
	assert.Equal(t, counts, set.Counts())
}

func TestNewSetPropagatesFailure(t *testing.T) {
	var raw [moody.LineCount][]float64
	for i := range raw {
		raw[i] = make([]float64, 5)
	}
	raw[moody.SESW] = []float64{1}

	_, err := NewSet(raw, moody.MaxStationsDefault)
	require.Error(t, err)
	_, ok := err.(*InsufficientDataError)
	assert.True(t, ok)
}
