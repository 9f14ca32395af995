/*Package moody holds the shared types for surface plate leveling analysis
following J.C. Moody's method ("How to calibrate a surface plate in the
plant", The Tool Engineer, October 1955).

A plate survey consists of eight measurement lines laid out in a "Union
Jack" pattern: two diagonals, four perimeter lines, and two center lines.
Autocollimator readings taken along each line are reduced to absolute
heights by the worksheet pipeline in the worksheet package.
*/
package moody

import (
	"math"
)

// Arcsec is one arc second in radians.
const Arcsec = 2 * math.Pi / (360 * 60 * 60)

// MaxStationsDefault bounds the number of readings accepted along a single
// line unless the configuration says otherwise.
const MaxStationsDefault = 126

// Role classifies a measurement line within the Union Jack layout.
type Role int

const (
	Diagonal Role = iota
	Perimeter
	Center
)

// Name identifies one of the eight measurement lines. The constants are in
// processing order: diagonals first, then perimeter lines, then center
// lines. Data files are named after the line, e.g. NW_SE.txt.
type Name int

const (
	NWSE Name = iota
	NESW
	NENW
	NESE
	SESW
	NWSW
	EW
	NS
	LineCount
)

var names = [LineCount]string{
	"NW_SE", "NE_SW", "NE_NW", "NE_SE", "SE_SW", "NW_SW", "E_W", "N_S",
}

func (n Name) String() string { return names[n] }

// FileName returns the name of the raw data file for this line.
func (n Name) FileName() string { return names[n] + ".txt" }

// Line describes one measurement path across the plate. Start and End name
// the endpoints in reading order: plate corners (NE, NW, SE, SW) for
// diagonals and perimeter lines, edge midpoints (N, S, E, W) for center
// lines. Mid names the edge midpoint a perimeter line passes through.
type Line struct {
	Name       Name
	Role       Role
	Start, End string
	Mid        string
}

var lines = [LineCount]Line{
	{NWSE, Diagonal, "NW", "SE", ""},
	{NESW, Diagonal, "NE", "SW", ""},
	{NENW, Perimeter, "NE", "NW", "N"},
	{NESE, Perimeter, "NE", "SE", "E"},
	{SESW, Perimeter, "SE", "SW", "S"},
	{NWSW, Perimeter, "NW", "SW", "W"},
	{EW, Center, "E", "W", ""},
	{NS, Center, "N", "S", ""},
}

// Lines returns the eight lines in processing order.
func Lines() [LineCount]Line { return lines }

// Get returns the Line record for a given name.
func Get(n Name) Line { return lines[n] }

// Unit selects between metric and imperial input/output conventions.
type Unit int

const (
	Metric   Unit = iota // spacing in mm, heights in microns
	Imperial             // spacing in inches, heights in 1e-5 inch
)

// Scale converts a foot spacing into the output length unit: mm to
// microns, or inches to hundred-thousandths of an inch.
func (u Unit) Scale() float64 {
	if u == Metric {
		return 1000.0
	}
	return 100000.0
}

// SpacingLabel names the unit the foot spacing is given in.
func (u Unit) SpacingLabel() string {
	if u == Metric {
		return "mm"
	}
	return "inch"
}

// HeightLabel names the unit of the final height column.
func (u Unit) HeightLabel() string {
	if u == Metric {
		return "micron"
	}
	return "10^-5in"
}

// Conversion fixes the angle-to-height scaling for a single run. Small
// angles are assumed: a deviation of one arc second over one foot spacing
// is Arcsec*spacing of height.
type Conversion struct {
	Unit        Unit
	FootSpacing float64
}

// ScaledSpacing is the foot spacing expressed in the output length unit.
func (c Conversion) ScaledSpacing() float64 {
	return c.FootSpacing * c.Unit.Scale()
}

// Height converts an angular height in arc seconds to a physical height in
// the output unit.
func (c Conversion) Height(arcsecs float64) float64 {
	return arcsecs * Arcsec * c.ScaledSpacing()
}
