package cli

import (
	"fmt"
	"io"

	"Potable/internal/calc/selection"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	var (
		origin, profile, format string
		flow, turbidity         float64
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the technology catalog, scored when a source is given",
		Example: `  potable catalog
  potable catalog --origin surface_stream --profile rural --flow 5 --turbidity 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			res := selection.Result{Catalog: selection.Catalog()}
			if origin != "" || profile != "" {
				in := selection.Input{
					Origin:    selection.Origin(origin),
					Profile:   selection.UserProfile(profile),
					FlowLps:   flow,
					Turbidity: turbidity,
				}
				if !in.Origin.Valid() || !in.Profile.Valid() {
					return fmt.Errorf("invalid origin %q or profile %q", origin, profile)
				}
				res = selection.Score(in)
			}
			if format == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			renderCatalog(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&origin, "origin", "", "water source: surface_stream, well, rainwater, seawater")
	cmd.Flags().StringVar(&profile, "profile", "", "user profile: rural, municipal, residential, industrial")
	cmd.Flags().Float64Var(&flow, "flow", 0, "design flow (L/s)")
	cmd.Flags().Float64Var(&turbidity, "turbidity", 0, "raw turbidity (UNT)")
	cmd.Flags().StringVar(&format, "format", FormatTable, "output format: table or json")
	return cmd
}

func renderCatalog(w io.Writer, res selection.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Tecnología", "Calidad", "Costo", "Simplicidad", "Robustez", "Energía", "Media", "Caudal (L/s)"})
	for _, tech := range res.Catalog {
		s := tech.Scores
		t.AppendRow(table.Row{
			tech.ID, tech.Name, s.Quality, s.Cost, s.Simplicity, s.Robustness, s.Energy,
			fmt.Sprintf("%.1f", tech.Mean), fmt.Sprintf("%g-%g", tech.MinFlowLps, tech.MaxFlowLps),
		})
	}
	t.Render()
	if res.Best != nil {
		fmt.Fprintf(w, "Recomendada: %s\n%s\n", res.Best.Name, res.Rationale)
	}
	if res.Advisory != "" {
		fmt.Fprintln(w, res.Advisory)
	}
}
