package cli

import (
	"fmt"
	"io"

	"Potable/internal/calc/design"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newDesignCmd() *cobra.Command {
	var file, format string
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Run a full plant design from a YAML request",
		Example: `  potable design -f vereda.yaml
  potable design -f vereda.yaml --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			in, err := loadDesign(file)
			if err != nil {
				return err
			}
			res := design.Run(in)
			if format == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			renderDesign(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "design request (YAML or JSON)")
	cmd.Flags().StringVar(&format, "format", FormatTable, "output format: table or json")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func renderDesign(w io.Writer, res design.Result) {
	fmt.Fprintln(w, res.Notes)
	if res.Selection.Advisory != "" {
		fmt.Fprintln(w, res.Selection.Advisory)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Etapas")
	t.AppendHeader(table.Row{"Etapa", "Unidades", "Área/unidad (m2)", "Ancho (m)", "Largo (m)", "Turbiedad (UNT)", "Log acumulado"})
	for i, s := range res.Stages {
		row := table.Row{s.Stage, "-", "-", "-", "-", "-", "-"}
		if s.Sizing != nil {
			row[1], row[2], row[3], row[4] = s.Sizing.Units, s.Sizing.AreaPerUnitM2, s.Sizing.WidthM, s.Sizing.LengthM
		}
		if i < len(res.Trace.Steps) {
			step := res.Trace.Steps[i]
			row[5], row[6] = step.Output.Turbidity, step.CumulativeLog
		}
		t.AppendRow(row)
	}
	t.Render()

	c := table.NewWriter()
	c.SetOutputMirror(w)
	c.SetStyle(table.StyleLight)
	c.SetTitle("Verificación normativa")
	c.AppendHeader(table.Row{"Regla", "Valor", "Límite", "Observación"})
	for _, chk := range res.Compliance.Checks {
		c.AppendRow(table.Row{chk.Rule, chk.Value, chk.Limit, chk.Observation})
	}
	c.AppendFooter(table.Row{"", "", "Cumple", yesNo(res.Compliance.Compliant)})
	c.Render()
}

func yesNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}
