package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"Potable/internal/calc/compliance"
	"Potable/internal/calc/memo"

	"github.com/phpdave11/gofpdf"
)

type Document struct {
	Project   string            `json:"project"`
	Author    string            `json:"author"`
	Title     string            `json:"title"`
	Notes     string            `json:"notes"`
	Date      time.Time         `json:"date"`
	Memoranda []memo.Memorandum `json:"memoranda"`
}

const defaultTitle = "Memoria de cálculo - Planta de potabilización"

// Render writes doc as an A4 PDF: a cover block followed by one section per
// memorandum with its derivation steps, results, checks and filter media.
func Render(w io.Writer, doc Document) error {
	if doc.Title == "" {
		doc.Title = defaultTitle
	}
	if doc.Date.IsZero() {
		doc.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Proyecto: %s", doc.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Autor: %s", doc.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Fecha: %s", doc.Date.Format("2006-01-02")))
	pdf.Ln(10)
	if doc.Notes != "" {
		pdf.MultiCell(0, 6, tr(doc.Notes), "", "L", false)
		pdf.Ln(4)
	}

	for _, m := range doc.Memoranda {
		section(pdf, tr, m)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, m memo.Memorandum) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(m.ModuleName))
	pdf.Ln(10)

	header := func(cols []string, widths []float64) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(225, 235, 245)
		for i, c := range cols {
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	stepW := []float64{25, 95, 35, 25}
	header([]string{"Variable", "Descripción", "Valor", "Unidad"}, stepW)
	for _, s := range m.Steps {
		pdf.CellFormat(stepW[0], 6, tr(s.Variable), "1", 0, "L", false, 0, "")
		pdf.CellFormat(stepW[1], 6, tr(s.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(stepW[2], 6, formatValue(s.Value), "1", 0, "R", false, 0, "")
		pdf.CellFormat(stepW[3], 6, tr(s.Unit), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	if len(m.Results) > 0 {
		names := make([]string, 0, len(m.Results))
		for k := range m.Results {
			names = append(names, k)
		}
		sort.Strings(names)
		resW := []float64{90, 40}
		header([]string{"Resultado", "Valor"}, resW)
		for _, k := range names {
			pdf.CellFormat(resW[0], 6, k, "1", 0, "L", false, 0, "")
			pdf.CellFormat(resW[1], 6, formatValue(m.Results[k]), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	if len(m.Compliance) > 0 {
		header([]string{"Verificación", "Estado"}, []float64{150, 30})
		for _, c := range m.Compliance {
			checkRow(pdf, tr, c)
		}
		pdf.Ln(4)
	}

	if len(m.Granulometry) > 0 {
		granW := []float64{70, 35, 75}
		header([]string{"Capa", "Espesor (m)", "Granulometría"}, granW)
		for _, l := range m.Granulometry {
			pdf.CellFormat(granW[0], 6, tr(l.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(granW[1], 6, fmt.Sprintf("%.2f", l.ThicknessM), "1", 0, "R", false, 0, "")
			pdf.CellFormat(granW[2], 6, tr(l.GrainSize), "1", 0, "L", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}
}

func checkRow(pdf *gofpdf.Fpdf, tr func(string) string, c compliance.Check) {
	status := "CUMPLE"
	if !c.Compliant {
		status = "NO CUMPLE"
		pdf.SetTextColor(170, 20, 20)
	}
	pdf.CellFormat(150, 6, tr(c.Observation), "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, status, "1", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(-1)
}

func formatValue(v float64) string {
	switch {
	case v == 0:
		return "0"
	case v >= 1000 || v < 0.01:
		return fmt.Sprintf("%.4g", v)
	default:
		return fmt.Sprintf("%.4f", v)
	}
}
