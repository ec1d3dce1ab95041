// Package cli is the offline command-line front end to the design engine.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"Potable/internal/calc/design"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "potable",
		Short:         "Water treatment plant pre-design",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newDesignCmd(), newCTCmd(), newCatalogCmd(), newReportCmd())
	return root
}

// loadDesign reads a design request from YAML; JSON parses too since it is
// a YAML subset.
func loadDesign(path string) (design.Input, error) {
	var in design.Input
	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}

func checkFormat(format string) error {
	if format != FormatTable && format != FormatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatTable, FormatJSON)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
