package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/zakriahayder/airfoil-selection-tool/internal/polar"
)

// AirfoilSummary is the exported view of one parsed polar.
type AirfoilSummary struct {
	Name      string      `json:"name"`
	Path      string      `json:"path"`
	Reynolds  *float64    `json:"reynolds"`
	BestAlpha float64     `json:"best_alpha"`
	BestCL    float64     `json:"best_cl"`
	BestCD    float64     `json:"best_cd"`
	MaxCLCD   float64     `json:"max_cl_cd"`
	Rows      []polar.Row `json:"rows,omitempty"`
}

func summarize(rec *polar.Record, withRows bool) AirfoilSummary {
	s := AirfoilSummary{
		Name:      rec.Name,
		Path:      rec.Path,
		Reynolds:  rec.Reynolds,
		BestAlpha: rec.BestAlpha,
		BestCL:    rec.BestCL,
		BestCD:    rec.BestCD,
		MaxCLCD:   rec.BestRatio,
	}
	if withRows {
		s.Rows = rec.Rows
	}
	return s
}

// WriteJSON writes one summary per record, in the given order.
func WriteJSON(w io.Writer, records []*polar.Record, withRows bool) error {
	data := make([]AirfoilSummary, len(records))
	for i, rec := range records {
		data[i] = summarize(rec, withRows)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

var csvHeader = []string{"rank", "name", "reynolds", "best_alpha", "best_cl", "best_cd", "max_cl_cd", "path"}

// WriteCSV writes one row per record; an unknown Reynolds number is empty.
func WriteCSV(w io.Writer, records []*polar.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i, rec := range records {
		re := ""
		if rec.Reynolds != nil {
			re = strconv.FormatFloat(*rec.Reynolds, 'g', -1, 64)
		}
		row := []string{
			strconv.Itoa(i + 1),
			rec.Name,
			re,
			strconv.FormatFloat(rec.BestAlpha, 'f', 6, 64),
			strconv.FormatFloat(rec.BestCL, 'f', 6, 64),
			strconv.FormatFloat(rec.BestCD, 'f', 6, 64),
			strconv.FormatFloat(rec.BestRatio, 'f', 6, 64),
			rec.Path,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
