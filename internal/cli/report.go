package cli

import (
	"fmt"
	"os"

	"Potable/internal/calc/design"
	"Potable/internal/calc/report"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var file, out, project, author string
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Render the calculation memoranda of a design as PDF",
		Example: `  potable report -f vereda.yaml -o memoria.pdf --project "Vereda El Salitre"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := loadDesign(file)
			if err != nil {
				return err
			}
			res := design.Run(in)
			if len(res.Memoranda) == 0 {
				return fmt.Errorf("design produced no memoranda: %s", res.Notes)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			err = report.Render(f, report.Document{
				Project:   project,
				Author:    author,
				Notes:     res.Selection.Rationale + " " + res.Notes,
				Memoranda: res.Memoranda,
			})
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d memorias\n", out, len(res.Memoranda))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "design request (YAML or JSON)")
	cmd.Flags().StringVarP(&out, "out", "o", "memoria.pdf", "output PDF path")
	cmd.Flags().StringVar(&project, "project", "", "project name for the cover")
	cmd.Flags().StringVar(&author, "author", "", "author for the cover")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
