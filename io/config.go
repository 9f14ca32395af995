/*Package io reads the survey configuration and raw data files and writes
every output artifact: the printed worksheets, the gnuplot surface files,
the xlsx workbook and the matplotlib profile script.
*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/platekit/moody"
)

const ExamplePlateFile = `[Plate]

#######################
# Required Parameters #
#######################

# Units must be either Metric or Imperial. Metric runs take the foot
# spacing in mm and report heights in microns; Imperial runs take the foot
# spacing in inches and report heights in 1/100,000 of an inch.
Units = Metric

# Spacing between the reflector feet, in mm or inches to match Units.
FootSpacing = 66.0

#######################
# Optional Parameters #
#######################

# Directory containing the eight data files NW_SE.txt, NE_SW.txt, NE_NW.txt,
# NE_SE.txt, SE_SW.txt, NW_SW.txt, E_W.txt and N_S.txt. Each file holds one
# autocollimator reading in arc seconds per line; blank lines and lines
# starting with # are skipped. Default is the working directory.
# DataDir = .

# Maximum number of stations accepted along a single line.
# MaxStations = 126

# Prefix for the gnuplot surface files. The command file is written to
# <prefix>.cmd and the data file to <prefix>.dat.
# GnuplotPrefix = gnuplot

# Write the eight completed worksheets to an xlsx workbook, one sheet per
# line. No workbook is written when unset.
# ExcelFile = worksheets.xlsx

# Render a matplotlib plot of the eight height profiles to this image.
# Requires python with matplotlib. No plot is rendered when unset.
# ProfileFile = profiles.png`

// MalformedInputError reports an input file whose contents could not be
// interpreted: a bad units or spacing declaration, or an unparseable data
// value.
type MalformedInputError struct {
	File   string
	Detail string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("unable to parse input file %s: %s", e.File, e.Detail)
}

// PlateConfig describes a survey run: the measurement units and geometry
// plus the optional output artifacts.
type PlateConfig struct {
	// Required
	Units       string
	FootSpacing float64

	// Optional
	DataDir       string
	MaxStations   int
	GnuplotPrefix string
	ExcelFile     string
	ProfileFile   string
}

// PlateWrapper is the gcfg section wrapper for PlateConfig.
type PlateWrapper struct {
	Plate PlateConfig
}

// DefaultPlateWrapper returns a wrapper with the optional values at their
// defaults.
func DefaultPlateWrapper() *PlateWrapper {
	con := PlateConfig{}
	con.DataDir = "."
	con.MaxStations = moody.MaxStationsDefault
	con.GnuplotPrefix = "gnuplot"
	return &PlateWrapper{con}
}

func (con *PlateConfig) ValidUnits() bool {
	return con.Units == "Metric" || con.Units == "Imperial"
}

func (con *PlateConfig) ValidFootSpacing() bool {
	return con.FootSpacing > 0
}

func (con *PlateConfig) ValidMaxStations() bool {
	return con.MaxStations >= 3
}

// Unit returns the parsed Units value. Only meaningful when ValidUnits.
func (con *PlateConfig) Unit() moody.Unit {
	if con.Units == "Imperial" {
		return moody.Imperial
	}
	return moody.Metric
}

// Conversion returns the angle-to-height conversion the config describes.
func (con *PlateConfig) Conversion() moody.Conversion {
	return moody.Conversion{Unit: con.Unit(), FootSpacing: con.FootSpacing}
}

// ReadPlateConfig reads and validates a [Plate] configuration file.
// Validation failures are MalformedInputErrors: the run cannot proceed
// without units and spacing.
func ReadPlateConfig(fname string) (*PlateConfig, error) {
	wrap := DefaultPlateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, &MalformedInputError{fname, err.Error()}
	}
	con := &wrap.Plate

	if !con.ValidUnits() {
		return nil, &MalformedInputError{
			fname, "'Units' must be either Metric or Imperial",
		}
	}
	if !con.ValidFootSpacing() {
		return nil, &MalformedInputError{
			fname, "'FootSpacing' must be a positive spacing in mm or inches",
		}
	}
	if !con.ValidMaxStations() {
		return nil, &MalformedInputError{
			fname, "'MaxStations' must be at least 3",
		}
	}

	return con, nil
}
