package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hummbl-dev/hummbl-prototype/eval"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Run the structural evaluation suite",
	Long: `Evaluate the decomposition operator against a dataset of statements
with known structural outcomes. Without --dataset the builtin
structural dataset is used; with --dataset, cases are loaded from an
XLSX file (see eval.LoadXLSXDataset for the column layout).`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().String("dataset", "", "XLSX dataset file (default: builtin structural cases)")
	evalCmd.Flags().Float64("fail-under", 1.0, "exit non-zero when accuracy falls below this fraction")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	datasetPath, _ := cmd.Flags().GetString("dataset")
	failUnder, _ := cmd.Flags().GetFloat64("fail-under")

	ds := eval.StructuralDataset()
	if datasetPath != "" {
		var err error
		ds, err = eval.LoadXLSXDataset(datasetPath)
		if err != nil {
			return err
		}
	}

	summary := eval.New(operatorConfig()).Run(ds)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return err
	}

	if summary.Accuracy < failUnder {
		return fmt.Errorf("accuracy %.2f below required %.2f", summary.Accuracy, failUnder)
	}
	return nil
}
