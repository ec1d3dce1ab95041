package importer

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"Potable/internal/calc/quality"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("empty sheet")

// Sample is one spreadsheet row of raw water measurements.
type Sample struct {
	Row     int             `json:"row"`
	Label   string          `json:"label,omitempty"`
	Quality quality.Quality `json:"quality"`
}

// RowError reports a row that could not be read. Parsing continues past it.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type field func(q *quality.Quality) *float64

// columns maps accepted header names, English and Spanish, to fields.
var columns = map[string]field{
	"ph":                 func(q *quality.Quality) *float64 { return &q.PH },
	"turbidity":          func(q *quality.Quality) *float64 { return &q.Turbidity },
	"turbiedad":          func(q *quality.Quality) *float64 { return &q.Turbidity },
	"color":              func(q *quality.Quality) *float64 { return &q.Color },
	"total_coliforms":    func(q *quality.Quality) *float64 { return &q.TotalColiforms },
	"coliformes_totales": func(q *quality.Quality) *float64 { return &q.TotalColiforms },
	"fecal_coliforms":    func(q *quality.Quality) *float64 { return &q.FecalColiforms },
	"coliformes_fecales": func(q *quality.Quality) *float64 { return &q.FecalColiforms },
	"iron":               func(q *quality.Quality) *float64 { return &q.Iron },
	"hierro":             func(q *quality.Quality) *float64 { return &q.Iron },
	"alkalinity":         func(q *quality.Quality) *float64 { return &q.Alkalinity },
	"alcalinidad":        func(q *quality.Quality) *float64 { return &q.Alkalinity },
	"hardness":           func(q *quality.Quality) *float64 { return &q.Hardness },
	"dureza":             func(q *quality.Quality) *float64 { return &q.Hardness },
}

var labelColumns = map[string]bool{"sample": true, "muestra": true, "label": true}

// ReadSamples reads the first sheet of an .xlsx workbook. The first row is a
// header; columns may come in any order and unknown ones are ignored.
func ReadSamples(r io.Reader) ([]Sample, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, ErrEmptySheet
	}

	header := make([]field, len(rows[0]))
	label := -1
	for i, name := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(name))
		if labelColumns[key] {
			label = i
			continue
		}
		header[i] = columns[key]
	}

	var samples []Sample
	var bad []RowError
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		s := Sample{Row: i + 1}
		if label >= 0 && label < len(row) {
			s.Label = strings.TrimSpace(row[label])
		}
		if err := fill(&s.Quality, header, row); err != nil {
			bad = append(bad, RowError{Row: i + 1, Reason: err.Error()})
			continue
		}
		if !s.Quality.Valid() {
			bad = append(bad, RowError{Row: i + 1, Reason: "not a finite non-negative number"})
			continue
		}
		samples = append(samples, s)
	}
	return samples, bad, nil
}

func fill(q *quality.Quality, header []field, row []string) error {
	for i, cell := range row {
		if i >= len(header) || header[i] == nil {
			continue
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		v, err := toFloat(cell)
		if err != nil {
			return fmt.Errorf("column %d: %q is not a number", i+1, cell)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("column %d: %q is not a finite non-negative number", i+1, cell)
		}
		*header[i](q) = v
	}
	return nil
}

// toFloat accepts both decimal points and decimal commas.
func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
