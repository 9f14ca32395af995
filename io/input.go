package io

import (
	"fmt"
	"log"
	"path"

	"github.com/phil-mansfield/table"

	"github.com/platekit/moody"
	"github.com/platekit/moody/worksheet"
)

// ReadAngles reads the raw autocollimator readings for one line from the
// given file: one arc-second value per line, comments and blank lines
// skipped. The table package reports read and parse failures by
// panicking; recover them into MalformedInputError.
func ReadAngles(fname string) (angles []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			angles = nil
			err = &MalformedInputError{fname, fmt.Sprint(r)}
		}
	}()
	cols := table.TextFile(fname).ReadFloat64s([]int{0})
	return cols[0], nil
}

// ReadSet reads the eight data files from dir and creates the worksheet
// set. Any read, parse, or station-count failure aborts with an error
// naming the offending file; no partial set is returned.
func ReadSet(dir string, maxStations int) (*worksheet.Set, error) {
	var raw [moody.LineCount][]float64

	for _, ln := range moody.Lines() {
		fname := path.Join(dir, ln.Name.FileName())
		angles, err := ReadAngles(fname)
		if err != nil {
			return nil, err
		}
		log.Printf("Read %d data entries from %s", len(angles), fname)
		raw[ln.Name] = angles
	}

	return worksheet.NewSet(raw, maxStations)
}
