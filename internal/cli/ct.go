package cli

import (
	"fmt"

	"Potable/internal/calc/compliance"
	"Potable/internal/calc/recommend"

	"github.com/spf13/cobra"
)

func newCTCmd() *cobra.Command {
	var ph, temp, dose, contact float64
	var format string
	cmd := &cobra.Command{
		Use:   "ct",
		Short: "Look up the required CT, optionally solving for contact time or dose",
		Example: `  potable ct --ph 7.5 --temp 20
  potable ct --ph 7.5 --temp 15 --dose 1.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dose <= 0 && contact <= 0 {
				l := compliance.LookupCT(ph, temp)
				if format == FormatJSON {
					return writeJSON(out, l)
				}
				fmt.Fprintf(out, "CT requerido: %g mg·min/L (banda pH %g, %g °C)\n", l.Required, l.PHBand, l.TempBand)
				if l.Snapped {
					fmt.Fprintln(out, "Valores ajustados a la banda más cercana de la tabla.")
				}
				return nil
			}
			res, err := recommend.CT(recommend.CTInput{PH: ph, TemperatureC: temp, DoseMgL: dose, ContactMin: contact})
			if err != nil {
				return err
			}
			if format == FormatJSON {
				return writeJSON(out, res)
			}
			fmt.Fprintf(out, "CT requerido: %g mg·min/L\n%s\n", res.Lookup.Required, res.Notes)
			return nil
		},
	}
	cmd.Flags().Float64Var(&ph, "ph", 7, "water pH")
	cmd.Flags().Float64Var(&temp, "temp", 15, "water temperature (°C)")
	cmd.Flags().Float64Var(&dose, "dose", 0, "chlorine dose (mg/L)")
	cmd.Flags().Float64Var(&contact, "contact", 0, "contact time (min)")
	cmd.Flags().StringVar(&format, "format", FormatTable, "output format: table or json")
	return cmd
}
