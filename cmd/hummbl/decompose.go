package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	hummbl "github.com/hummbl-dev/hummbl-prototype"
	"github.com/hummbl-dev/hummbl-prototype/parser"
	"github.com/hummbl-dev/hummbl-prototype/store"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose [statement]",
	Short: "Decompose a problem statement into components",
	Long: `Decompose a problem statement given as an argument, or every
statement found in a file (--file). Supported file formats: txt, md,
pdf, xlsx.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecompose,
}

func init() {
	decomposeCmd.Flags().String("file", "", "read statements from a file instead of the argument")
	decomposeCmd.Flags().StringArray("constraint", nil, "explicit constraint (repeatable)")
	decomposeCmd.Flags().StringArray("context", nil, "context entry as key=value (repeatable)")
	decomposeCmd.Flags().String("log-db", "", "append runs to a SQLite log at this path")
	rootCmd.AddCommand(decomposeCmd)
}

func runDecompose(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	constraints, _ := cmd.Flags().GetStringArray("constraint")
	contextPairs, _ := cmd.Flags().GetStringArray("context")
	logDB, _ := cmd.Flags().GetString("log-db")

	statements, err := gatherStatements(cmd.Context(), args, file)
	if err != nil {
		return err
	}

	var opts []hummbl.DecomposeOption
	if len(constraints) > 0 {
		opts = append(opts, hummbl.WithConstraints(constraints...))
	}
	if ctx := parseContextPairs(contextPairs); len(ctx) > 0 {
		opts = append(opts, hummbl.WithContext(ctx))
	}

	var runLog *store.Store
	if logDB != "" {
		runLog, err = store.New(logDB)
		if err != nil {
			return fmt.Errorf("opening run log: %w", err)
		}
		defer runLog.Close()
	}

	op := hummbl.New(operatorConfig())
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, statement := range statements {
		result, err := op.Decompose(statement, opts...)
		if err != nil {
			return err
		}
		if err := enc.Encode(result); err != nil {
			return err
		}
		if runLog != nil {
			if err := logRun(cmd.Context(), runLog, statement, len(constraints), result); err != nil {
				return fmt.Errorf("logging run: %w", err)
			}
		}
	}
	return nil
}

// gatherStatements returns either the single argument statement or all
// statements loaded from the file.
func gatherStatements(ctx context.Context, args []string, file string) ([]string, error) {
	if file == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("provide a statement argument or --file")
		}
		return []string{args[0]}, nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("provide a statement argument or --file, not both")
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	loader, err := parser.NewRegistry().Get(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", hummbl.ErrUnsupportedFormat, format)
	}
	loaded, err := loader.Load(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", hummbl.ErrParsingFailed, err)
	}

	statements := make([]string, 0, len(loaded.Statements))
	for _, s := range loaded.Statements {
		statements = append(statements, s.Text)
	}
	if len(statements) == 0 {
		return nil, fmt.Errorf("%w: no statements in %s", hummbl.ErrParsingFailed, file)
	}
	return statements, nil
}

func parseContextPairs(pairs []string) map[string]any {
	if len(pairs) == 0 {
		return nil
	}
	ctx := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		ctx[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return ctx
}

func logRun(ctx context.Context, s *store.Store, statement string, constraintCount int, result *hummbl.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = s.LogRun(ctx, store.Run{
		Statement:       statement,
		ConstraintCount: constraintCount,
		ComponentCount:  len(result.Components),
		Complexity:      result.Metadata.EstimatedComplexity,
		Confidence:      result.Metadata.Confidence,
		WarningCount:    len(result.Warnings),
		ResultJSON:      string(payload),
	})
	return err
}
