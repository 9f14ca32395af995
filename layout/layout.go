/*Package layout maps the stations of the eight measurement lines to plate
plane coordinates, pairing each with its physical height for visualization.
The x axis runs west to east, the y axis south to north, and z is the
height above the plate's lowest point in the output unit.
*/
package layout

import (
	"github.com/platekit/moody"
	"github.com/platekit/moody/worksheet"
)

// Point is a single station in plate coordinates.
type Point struct {
	X, Y, Z float64
}

// Polyline is the station sequence of one line. Lines are independent;
// no interpolation happens between them.
type Polyline struct {
	Line   moody.Name
	Points []Point
}

// Label is an annotation placed just outside the plate edge.
type Label struct {
	Text    string
	X, Y, Z float64
}

// Plate is the projected survey: one polyline per measurement line plus
// the plot bounding box and the compass labels.
type Plate struct {
	// MaxX and MaxY are the plate extent in stations, MaxZ the height
	// ceiling in output units.
	MaxX, MaxY, MaxZ int
	Lines            []Polyline
	Labels           []Label
}

// anchor returns the plate coordinate of a named endpoint: a corner or an
// edge midpoint.
func anchor(end string, maxX, maxY float64) (x, y float64) {
	switch end {
	case "NE":
		return maxX, maxY
	case "NW":
		return 0, maxY
	case "SE":
		return maxX, 0
	case "SW":
		return 0, 0
	case "N":
		return 0.5 * maxX, maxY
	case "S":
		return 0.5 * maxX, 0
	case "E":
		return maxX, 0.5 * maxY
	case "W":
		return 0, 0.5 * maxY
	}
	panic("unknown endpoint " + end)
}

func max3(a, b, c int) int {
	max := a
	if b > max {
		max = b
	}
	if c > max {
		max = c
	}
	return max
}

// Project computes plate coordinates for every station of every line. The
// pipeline must have completed so that the Physical column is filled; peak
// is the overall plate height returned by the pipeline.
func Project(set *worksheet.Set, peak float64) *Plate {
	// The widest of the three west-east runs sets the plate width; the
	// three north-south runs set the depth.
	maxX := max3(set[moody.NENW].N, set[moody.SESW].N, set[moody.EW].N)
	maxY := max3(set[moody.NESE].N, set[moody.NWSW].N, set[moody.NS].N)

	p := &Plate{
		MaxX: maxX,
		MaxY: maxY,
		MaxZ: int(1.0 + peak),
	}
	fx, fy := float64(maxX), float64(maxY)

	for _, ln := range moody.Lines() {
		s := set[ln.Name]
		x0, y0 := anchor(ln.Start, fx, fy)
		x1, y1 := anchor(ln.End, fx, fy)

		pts := make([]Point, s.N+1)
		for j := 0; j <= s.N; j++ {
			t := float64(j) / float64(s.N)
			pts[j] = Point{
				X: x0 + (x1-x0)*t,
				Y: y0 + (y1-y0)*t,
				Z: s.Physical[j],
			}
		}
		p.Lines = append(p.Lines, Polyline{Line: ln.Name, Points: pts})
	}

	p.Labels = []Label{
		{"N", 0.5 * fx, 1.1 * fy, 0},
		{"S", 0.5 * fx, -0.1 * fy, 0},
		{"E", 1.1 * fx, 0.5 * fy, 0},
		{"W", -0.1 * fx, 0.5 * fy, 0},
	}

	return p
}
