package io

import (
	"github.com/xuri/excelize/v2"

	"github.com/platekit/moody"
	"github.com/platekit/moody/worksheet"
)

// WriteWorkbook writes the eight completed worksheets to a single xlsx
// workbook, one sheet per measurement line, columns in Moody's order.
func WriteWorkbook(fname string, set *worksheet.Set, unit moody.Unit) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, ln := range moody.Lines() {
		s := set[ln.Name]
		sheet := ln.Name.String()

		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}

		header := []interface{}{
			"Station",
			"Reading (arcsec)",
			"Angular displ (arcsec)",
			"Sum of displ (arcsec)",
			"Cumul corr factor",
			"Height from datum (arcsec)",
		}
		if s.Line.Role == moody.Center {
			header = append(header, "Error shift out (arcsec)")
		}
		header = append(header,
			"Height from base (arcsec)",
			"Height from base ("+unit.HeightLabel()+")",
		)

		if err := setRow(f, sheet, 1, header); err != nil {
			return err
		}

		for j := 0; j <= s.N; j++ {
			row := []interface{}{
				s.Station[j], s.Raw[j], s.Delta[j], s.CumDelta[j],
				s.Correction[j], s.Corrected[j],
			}
			if s.Line.Role == moody.Center {
				row = append(row, s.Centered[j])
			}
			row = append(row, s.Normalized[j], s.Physical[j])

			if err := setRow(f, sheet, j+2, row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(fname)
}

func setRow(f *excelize.File, sheet string, row int, vals []interface{}) error {
	for i, v := range vals {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
