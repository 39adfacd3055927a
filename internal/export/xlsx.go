package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/zakriahayder/airfoil-selection-tool/internal/polar"
)

const summarySheet = "Summary"

var rowHeader = []any{"alpha", "CL", "CD", "CDp", "CM", "Top_Xtr", "Bot_Xtr", "CL/CD"}

// WriteXLSX writes a workbook with a summary sheet in the given order and
// one "Polar N" sheet per record holding its full table.
func WriteXLSX(w io.Writer, records []*polar.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}

	for i, rec := range records {
		var re any = ""
		if rec.Reynolds != nil {
			re = *rec.Reynolds
		}
		row := []any{i + 1, rec.Name, re, rec.BestAlpha, rec.BestCL, rec.BestCD, rec.BestRatio, rec.Path}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
		if err := writePolarSheet(f, fmt.Sprintf("Polar %d", i+1), rec); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writePolarSheet(f *excelize.File, sheet string, rec *polar.Record) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	title := []any{rec.Name, "Re", rec.ReynoldsString()}
	if err := f.SetSheetRow(sheet, "A1", &title); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A2", &rowHeader); err != nil {
		return err
	}
	for i, r := range rec.Rows {
		// Zero-drag rows have no finite ratio; leave the cell empty.
		var ratio any = ""
		if v := rec.Ratios[i]; !math.IsNaN(v) && !math.IsInf(v, 0) {
			ratio = v
		}
		row := []any{r.Alpha, r.CL, r.CD, r.CDp, r.CM, r.TopXtr, r.BotXtr, ratio}
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
