package io

import (
	"fmt"
	goio "io"

	"github.com/platekit/moody"
	"github.com/platekit/moody/worksheet"
)

// Worksheet table headers, Moody's column numbering. Center lines carry
// the extra 6a column. Printing assumes a fixed character width and
// avoids tabs.
const (
	headerImperial = "" +
		"   1       2       3       4       5       6       7       8   \n" +
		"---------------------------------------------------------------\n" +
		"Station  Auto-   Angle  Sum of   Cumul   Delta   Delta   Delta \n" +
		" Num-    Corr    Displ   Displ   Corr    Datum    Base    Base \n" +
		" ber    ArcSec  ArcSec  ArcSec   Factor  ArcSec  ArcSec 10^-5in\n" +
		"---------------------------------------------------------------\n"

	headerImperialCenter = "" +
		"   1       2       3       4       5       6       6a      7       8   \n" +
		"-----------------------------------------------------------------------\n" +
		"Station  Auto-   Angle  Sum of   Cumul   Delta    Error  Delta   Delta \n" +
		" Num-    Corr    Displ   Displ   Corr    Datum    Shift   Base    Base \n" +
		" ber    ArcSec  ArcSec  ArcSec   Factor  ArcSec    Out   ArcSec 10^-5in\n" +
		"-----------------------------------------------------------------------\n"

	headerMetric = "" +
		"   1       2       3       4       5       6       7       8   \n" +
		"---------------------------------------------------------------\n" +
		"Station  Auto-   Angle  Sum of   Cumul   Delta   Delta   Delta \n" +
		" Num-    Corr    Displ   Displ   Corr    Datum    Base    Base \n" +
		" ber    ArcSec  ArcSec  ArcSec   Factor  ArcSec  ArcSec  micron\n" +
		"---------------------------------------------------------------\n"

	headerMetricCenter = "" +
		"   1       2       3       4       5       6       6a      7       8   \n" +
		"-----------------------------------------------------------------------\n" +
		"Station  Auto-   Angle  Sum of   Cumul   Delta    Error  Delta   Delta \n" +
		" Num-    Corr    Displ   Displ   Corr    Datum    Shift   Base    Base \n" +
		" ber    ArcSec  ArcSec  ArcSec   Factor  ArcSec    Out   ArcSec  micron\n" +
		"-----------------------------------------------------------------------\n"
)

// PrintWorksheet writes one completed worksheet as a fixed-width table.
func PrintWorksheet(w goio.Writer, s *worksheet.Sheet, unit moody.Unit) {
	center := s.Line.Role == moody.Center

	var header string
	switch {
	case center && unit == moody.Metric:
		header = headerMetricCenter
	case center:
		header = headerImperialCenter
	case unit == moody.Metric:
		header = headerMetric
	default:
		header = headerImperial
	}

	fmt.Fprintf(w, "\nTABLE %s\n", s.Line.Name.FileName())
	fmt.Fprint(w, header)

	for j := 0; j <= s.N; j++ {
		fmt.Fprintf(w, "%6d", s.Station[j])
		fmt.Fprintf(w, "%8.1f", s.Raw[j])
		fmt.Fprintf(w, "%8.1f", s.Delta[j])
		fmt.Fprintf(w, "%8.1f", s.CumDelta[j])
		fmt.Fprintf(w, "%8.1f", s.Correction[j])
		fmt.Fprintf(w, "%8.1f", s.Corrected[j])
		if center {
			fmt.Fprintf(w, "%8.1f", s.Centered[j])
		}
		fmt.Fprintf(w, "%8.1f", s.Normalized[j])
		fmt.Fprintf(w, "%8.1f", s.Physical[j])
		fmt.Fprintln(w)
	}
}

// PrintSummary writes the overall plate height with its unit.
func PrintSummary(w goio.Writer, peak float64, unit moody.Unit) {
	fmt.Fprintf(w,
		"\nOverall plate height above the lowest point: %.2f %s\n",
		peak, unit.HeightLabel(),
	)
}
