package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/platekit/moody"
	"github.com/platekit/moody/analyze"
	"github.com/platekit/moody/io"
	"github.com/platekit/moody/layout"
	"github.com/platekit/moody/worksheet"
)

func main() {
	var (
		configPath, dataDir string
		exampleConfig       bool
	)

	flag.StringVar(
		&configPath, "Config", "Config.ini",
		"Configuration file with the [Plate] section: units, foot spacing, "+
			"and output options.",
	)
	flag.StringVar(
		&dataDir, "DataDir", "",
		"Directory containing the eight data files. Overrides the DataDir "+
			"value from the config file.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout and exits.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExamplePlateFile)
		return
	}

	con, err := io.ReadPlateConfig(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}
	if dataDir != "" {
		con.DataDir = dataDir
	}

	fmt.Printf("From file %s: using a %.2f %s foot spacing.\n\n",
		configPath, con.FootSpacing, con.Unit().SpacingLabel())

	set, err := io.ReadSet(con.DataDir, con.MaxStations)
	if err != nil {
		log.Fatal(err.Error())
	}
	fmt.Println()

	// Pre-pipeline advisories. These never abort the run.
	for _, w := range analyze.StationCounts(set) {
		fmt.Println("Warning:", w)
	}
	for _, w := range analyze.Pythagoras(set) {
		fmt.Println("Warning:", w)
	}
	fmt.Println()

	conv := con.Conversion()
	peak := set.Run(conv)

	printCenterErrors(set, conv)

	for _, ln := range moody.Lines() {
		io.PrintWorksheet(os.Stdout, set[ln.Name], conv.Unit)
	}
	io.PrintSummary(os.Stdout, peak, conv.Unit)

	plate := layout.Project(set, peak)
	if err := io.WriteGnuplot(con.GnuplotPrefix, plate, conv.Unit); err != nil {
		log.Fatal(err.Error())
	}

	if con.ExcelFile != "" {
		if err := io.WriteWorkbook(con.ExcelFile, set, conv.Unit); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote worksheets to %s", con.ExcelFile)
	}

	if con.ProfileFile != "" {
		io.WriteProfiles(con.ProfileFile, set, conv.Unit)
		log.Printf("Wrote height profiles to %s", con.ProfileFile)
	}
}

// printCenterErrors reports the measurement-error estimate from the
// middle of the two center lines, with Moody's pass/fail judgment.
func printCenterErrors(set *worksheet.Set, conv moody.Conversion) {
	fmt.Println(
		"================================================================\n" +
			"Measurement errors are estimated from the computed\n" +
			"heights at the middle of the two center lines. Absent any\n" +
			"measurement errors, these computed heights would be zero.",
	)

	unit := "microns"
	if conv.Unit == moody.Imperial {
		unit = "micro-inches"
	}

	errs, ok := analyze.CenterErrors(set, conv)
	for _, ce := range errs {
		fmt.Printf("Computed height at the center of the %s line: %4.2f %s.\n",
			ce.Line.FileName(), ce.Display, unit)
	}

	if ok {
		fmt.Println(
			"According to Moody these errors are acceptable, because their\n" +
				"magnitude is less than 100 micro-inch = 2.54 microns.",
		)
	} else {
		fmt.Println(
			"Warning: measurement errors are larger than Moody considers\n" +
				"acceptable (100 micro-inch = 2.54 microns). " +
				"The job must be done over!",
		)
	}
	fmt.Println(
		"================================================================",
	)
}
