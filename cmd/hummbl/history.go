package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hummbl-dev/hummbl-prototype/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously logged decomposition runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().String("log-db", "", "SQLite run log path (required)")
	historyCmd.Flags().Int("limit", 20, "maximum runs to list")
	historyCmd.Flags().Int64("id", 0, "show one run with its full result")
	_ = historyCmd.MarkFlagRequired("log-db")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	logDB, _ := cmd.Flags().GetString("log-db")
	limit, _ := cmd.Flags().GetInt("limit")
	id, _ := cmd.Flags().GetInt64("id")

	s, err := store.New(logDB)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer s.Close()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if id > 0 {
		run, err := s.GetRun(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("loading run %d: %w", id, err)
		}
		return enc.Encode(run)
	}

	runs, err := s.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	return enc.Encode(runs)
}
