package eval

import (
	"fmt"
	"log/slog"
	"strings"

	hummbl "github.com/hummbl-dev/hummbl-prototype"
)

// CaseResult reports the outcome of one evaluation case.
type CaseResult struct {
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`

	Components int     `json:"components"`
	Complexity float64 `json:"complexity"`
	Confidence float64 `json:"confidence"`
}

// Summary aggregates a full dataset run.
type Summary struct {
	Dataset  string       `json:"dataset"`
	Total    int          `json:"total"`
	Passed   int          `json:"passed"`
	Accuracy float64      `json:"accuracy"`
	Results  []CaseResult `json:"results"`
}

// Evaluator runs datasets against a decomposition operator.
type Evaluator struct {
	op  *hummbl.Operator
	cfg hummbl.Config
}

// New creates an Evaluator around an operator with the given config.
// The config is needed to know the low-confidence threshold the
// ExpectLowConfidence check compares against.
func New(cfg hummbl.Config) *Evaluator {
	if cfg.LowConfidenceThreshold == 0 {
		cfg.LowConfidenceThreshold = hummbl.DefaultConfig().LowConfidenceThreshold
	}
	return &Evaluator{op: hummbl.New(cfg), cfg: cfg}
}

// Run evaluates every case in the dataset and returns the summary.
func (e *Evaluator) Run(ds Dataset) Summary {
	summary := Summary{Dataset: ds.Name, Total: len(ds.Cases)}
	for _, c := range ds.Cases {
		r := e.runCase(c)
		if r.Passed {
			summary.Passed++
		}
		summary.Results = append(summary.Results, r)
		slog.Info("eval: case finished", "case", c.Name, "passed", r.Passed,
			"components", r.Components, "confidence", r.Confidence)
	}
	if summary.Total > 0 {
		summary.Accuracy = float64(summary.Passed) / float64(summary.Total)
	}
	return summary
}

func (e *Evaluator) runCase(c Case) CaseResult {
	r := CaseResult{Name: c.Name}

	var opts []hummbl.DecomposeOption
	if c.Context != nil {
		opts = append(opts, hummbl.WithContext(c.Context))
	}
	if len(c.Constraints) > 0 {
		opts = append(opts, hummbl.WithConstraints(c.Constraints...))
	}

	res, err := e.op.Decompose(c.Statement, opts...)
	if err != nil {
		r.Failures = append(r.Failures, fmt.Sprintf("decompose failed: %v", err))
		return r
	}

	r.Components = len(res.Components)
	r.Complexity = res.Metadata.EstimatedComplexity
	r.Confidence = res.Metadata.Confidence

	check := func(name string, want, got int) {
		if want != 0 && want != got {
			r.Failures = append(r.Failures, fmt.Sprintf("%s: want %d, got %d", name, want, got))
		}
	}
	check("components", c.ExpectComponents, len(res.Components))
	check("constraint components", c.ExpectConstraints, res.Metadata.ConstraintCount)
	check("depends_on edges", c.ExpectDependsOn, countKind(res.Relationships, "depends_on"))
	check("parallel_with edges", c.ExpectParallelWith, countKind(res.Relationships, "parallel_with"))
	check("critical path length", c.ExpectPathLen, len(res.CriticalPath))

	if c.ExpectLowConfidence && res.Metadata.Confidence >= e.cfg.LowConfidenceThreshold {
		r.Failures = append(r.Failures, fmt.Sprintf(
			"confidence: want below %.2f, got %.2f", e.cfg.LowConfidenceThreshold, res.Metadata.Confidence))
	}
	if c.ExpectWarning != "" && !hasWarning(res.Warnings, c.ExpectWarning) {
		r.Failures = append(r.Failures, fmt.Sprintf("warnings: none mention %q", c.ExpectWarning))
	}

	r.Passed = len(r.Failures) == 0
	return r
}

func countKind(rels []hummbl.Relationship, kind string) int {
	n := 0
	for _, rel := range rels {
		if rel.Kind == kind {
			n++
		}
	}
	return n
}

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(strings.ToLower(w), strings.ToLower(substr)) {
			return true
		}
	}
	return false
}
