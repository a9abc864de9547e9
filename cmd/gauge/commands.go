package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/camco-mfg/gauge/internal/evaluation"
	"github.com/camco-mfg/gauge/internal/tolerances"
	"github.com/camco-mfg/gauge/pkg/formatting"
)

var tolerancesCmd = &cobra.Command{
	Use:   "tolerances <category> [designation]",
	Short: "List tolerance specifications for a category",
	Long:  "Prints every designation row-set for a category, or a single designation's rows when one is named.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runTolerances,
}

var standardCmd = &cobra.Command{
	Use:   "standard <category>",
	Short: "Show the Camco standard specification for a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runStandard,
}

var checkCmd = &cobra.Command{
	Use:   "check <category> <measurement>",
	Short: "Check one measurement against the Camco standard",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

var batchCmd = &cobra.Command{
	Use:   "batch <category> <measurement>...",
	Short: "Check a measurement batch for spec and IT-grade compliance",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runBatch,
}

func runTolerances(cmd *cobra.Command, args []string) error {
	category, err := tolerances.ParseCategory(args[0])
	if err != nil {
		return err
	}

	sys, _, err := systems()
	if err != nil {
		return err
	}

	if len(args) == 2 {
		spec, err := sys.Designation(category, args[1])
		if err != nil {
			return err
		}
		return printJSON(spec)
	}

	all, err := sys.All(category)
	if err != nil {
		return err
	}
	return printJSON(all)
}

func runStandard(cmd *cobra.Command, args []string) error {
	category, err := tolerances.ParseCategory(args[0])
	if err != nil {
		return err
	}

	sys, _, err := systems()
	if err != nil {
		return err
	}

	spec, err := sys.CamcoStandard(category)
	if err != nil {
		return err
	}
	return printJSON(spec)
}

func runCheck(cmd *cobra.Command, args []string) error {
	category, err := tolerances.ParseCategory(args[0])
	if err != nil {
		return err
	}

	measurement, err := formatting.ParseMeasurement(args[1])
	if err != nil {
		return err
	}

	_, sys, err := systems()
	if err != nil {
		return err
	}

	result, err := sys.Evaluate(category, evaluation.EvaluateCommand{
		Measurement: measurement,
		Threshold:   threshold,
	})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runBatch(cmd *cobra.Command, args []string) error {
	category, err := tolerances.ParseCategory(args[0])
	if err != nil {
		return err
	}

	measurements := make([]float64, 0, len(args)-1)
	for _, arg := range args[1:] {
		m, err := formatting.ParseMeasurement(arg)
		if err != nil {
			return err
		}
		measurements = append(measurements, m)
	}

	_, sys, err := systems()
	if err != nil {
		return err
	}

	result, err := sys.EvaluateBatch(category, evaluation.EvaluateBatchCommand{
		Measurements: measurements,
	})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
