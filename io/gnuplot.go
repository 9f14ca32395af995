package io

import (
	"fmt"
	"os"
	"path"

	"github.com/platekit/moody"
	"github.com/platekit/moody/layout"
)

// zLabels is the gnuplot z-axis label per unit, with embedded gnuplot
// line breaks.
var zLabels = map[moody.Unit]string{
	moody.Metric:   `height\nin\nmicrons`,
	moody.Imperial: `height\nin\ntens of\nmicroinch`,
}

// WriteGnuplot writes a gnuplot command file <prefix>.cmd and data file
// <prefix>.dat that render the surveyed surface as a 3-d wire plot.
func WriteGnuplot(prefix string, p *layout.Plate, unit moody.Unit) error {
	cmdName, datName := prefix+".cmd", prefix+".dat"

	cmd, err := os.Create(cmdName)
	if err != nil {
		return err
	}
	defer cmd.Close()

	fmt.Fprintf(cmd,
		"# The following command file can be used with gnuplot to produce\n"+
			"# a 3-dimensional plot of the surface plate. The associated data\n"+
			"# file is called %q and can be found in this directory.\n"+
			"#\n"+
			"# On typical Unix/Linux/Mac systems, invoke gnuplot with:\n"+
			"# gnuplot -c %s\n"+
			"\n"+
			"set term X11 enhanced\n"+
			"set xyplane at 0\n",
		path.Base(datName), path.Base(cmdName),
	)
	for _, l := range p.Labels {
		fmt.Fprintf(cmd, "set label %q at %f, %f, %f\n", l.Text, l.X, l.Y, l.Z)
	}
	fmt.Fprintf(cmd,
		"set zrange [0:%d]\n"+
			"set zlabel \"%s\"\n"+
			"set key off\n"+
			"splot [0:%d][0:%d][0:%d] %q using 1:2:3 with lines\n"+
			"pause -1\n",
		p.MaxZ, zLabels[unit], p.MaxX, p.MaxY, p.MaxZ, path.Base(datName),
	)

	dat, err := os.Create(datName)
	if err != nil {
		return err
	}
	defer dat.Close()

	fmt.Fprintf(dat,
		"# This is a data file for use with gnuplot.\n"+
			"# The corresponding command file in this directory\n"+
			"# is called %q. Together these can be\n"+
			"# used to generate a 3-d plot of the surface plate height.\n"+
			"\n\n",
		path.Base(cmdName),
	)

	// One polyline per measurement line, separated by blank records so
	// gnuplot does not connect them.
	for _, pl := range p.Lines {
		fmt.Fprintf(dat, "# %s\n", pl.Line.FileName())
		for _, pt := range pl.Points {
			fmt.Fprintf(dat, "%f %f %f\n", pt.X, pt.Y, pt.Z)
		}
		fmt.Fprint(dat, "\n\n")
	}

	return nil
}
