package io

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platekit/moody"
)

func writeConfig(t *testing.T, body string) string {
	fname := path.Join(t.TempDir(), "Config.ini")
	require.NoError(t, os.WriteFile(fname, []byte(body), 0666))
	return fname
}

func TestReadPlateConfig(t *testing.T) {
	fname := writeConfig(t, `[Plate]
# A four inch reflector base.
Units = Imperial
FootSpacing = 4.0
ExcelFile = worksheets.xlsx
`)

	con, err := ReadPlateConfig(fname)
	require.NoError(t, err)

	assert.Equal(t, moody.Imperial, con.Unit())
	assert.Equal(t, 4.0, con.FootSpacing)
	assert.Equal(t, "worksheets.xlsx", con.ExcelFile)

	// Optional values keep their defaults.
	assert.Equal(t, ".", con.DataDir)
	assert.Equal(t, moody.MaxStationsDefault, con.MaxStations)
	assert.Equal(t, "gnuplot", con.GnuplotPrefix)
	assert.Equal(t, "", con.ProfileFile)

	conv := con.Conversion()
	assert.Equal(t, moody.Imperial, conv.Unit)
	assert.Equal(t, 400000.0, conv.ScaledSpacing())
}

func TestReadPlateConfigBadUnits(t *testing.T) {
	fname := writeConfig(t, `[Plate]
Units = Furlongs
FootSpacing = 4.0
`)

	_, err := ReadPlateConfig(fname)
	require.Error(t, err)
	malformed, ok := err.(*MalformedInputError)
	require.True(t, ok, "expected MalformedInputError, got %T", err)
	assert.Equal(t, fname, malformed.File)
}

func TestReadPlateConfigMissingSpacing(t *testing.T) {
	fname := writeConfig(t, `[Plate]
Units = Metric
`)

	_, err := ReadPlateConfig(fname)
	require.Error(t, err)
	_, ok := err.(*MalformedInputError)
	assert.True(t, ok)
}

func TestReadPlateConfigMissingFile(t *testing.T) {
	_, err := ReadPlateConfig(path.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}
