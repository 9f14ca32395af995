package io

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/platekit/moody"
	"github.com/platekit/moody/worksheet"
)

var profileColors = []string{
	"DarkSlateBlue", "DarkSlateGray", "DarkTurquoise", "DarkViolet",
	"DeepPink", "DimGray", "DarkOrange", "DarkGreen",
}

// WriteProfiles renders the height profile of every measurement line into
// a single matplotlib figure saved at fname. Requires python with
// matplotlib on the host.
func WriteProfiles(fname string, set *worksheet.Set, unit moody.Unit) {
	plt.Reset()
	plt.Figure()

	for i, ln := range moody.Lines() {
		s := set[ln.Name]
		xs := make([]float64, s.N+1)
		zs := make([]float64, s.N+1)
		for j := 0; j <= s.N; j++ {
			xs[j] = float64(s.Station[j])
			zs[j] = s.Physical[j]
		}
		plt.Plot(xs, zs, plt.LW(2), plt.C(profileColors[i]))
	}

	plt.Title("Height profiles along the eight measurement lines")
	plt.XLabel("station number", plt.FontSize(16))
	plt.YLabel(fmt.Sprintf("height [%s]", unit.HeightLabel()), plt.FontSize(16))
	plt.SaveFig(fname)

	plt.Execute()
}
