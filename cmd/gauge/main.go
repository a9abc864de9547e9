// Command gauge inspects tolerance specifications and evaluates measurements
// from the command line, using the embedded reference snapshot instead of a
// live database.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/camco-mfg/gauge/internal/evaluation"
	"github.com/camco-mfg/gauge/internal/tolerances"
)

var threshold float64

var rootCmd = &cobra.Command{
	Use:           "gauge",
	Short:         "Fit and tolerance lookups for Camco part measurements",
	Long:          "Inspect ISO fit tolerance specifications and check part measurements against the Camco standard designations.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	checkCmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "nominal resolution threshold override (0 uses the default)")

	rootCmd.AddCommand(tolerancesCmd)
	rootCmd.AddCommand(standardCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// systems builds the tolerance and evaluation systems over the embedded snapshot.
func systems() (tolerances.System, evaluation.System, error) {
	table, err := tolerances.LoadSnapshot()
	if err != nil {
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}

	provider := tolerances.NewStatic(table)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return tolerances.New(provider, logger), evaluation.New(provider, 0, logger), nil
}
