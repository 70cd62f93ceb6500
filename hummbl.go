// Package hummbl implements the HUMMBL decomposition operator: it turns
// a free-text problem statement, plus optional structured context and
// constraints, into typed components, dependency and parallelism
// relationships, a critical path, complexity and confidence estimates,
// and a step-by-step reasoning trace.
//
// The pipeline is synchronous and allocation-local: one call runs
// tokenizer -> signal -> component -> relation -> score -> report with
// no shared state, so callers may run any number of decompositions
// concurrently.
package hummbl

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hummbl-dev/hummbl-prototype/component"
	"github.com/hummbl-dev/hummbl-prototype/relation"
	"github.com/hummbl-dev/hummbl-prototype/report"
	"github.com/hummbl-dev/hummbl-prototype/score"
	"github.com/hummbl-dev/hummbl-prototype/signal"
	"github.com/hummbl-dev/hummbl-prototype/tokenizer"
)

// Operator runs the decomposition pipeline. It is stateless between
// calls and safe for concurrent use.
type Operator struct {
	cfg       Config
	extractor *signal.Extractor
}

// New creates an Operator. Zero-value Config fields fall back to
// DefaultConfig values.
func New(cfg Config) *Operator {
	return &Operator{
		cfg:       cfg.normalized(),
		extractor: signal.NewExtractor(),
	}
}

// DecomposeOption configures a single decomposition.
type DecomposeOption func(*decomposeOptions)

type decomposeOptions struct {
	context     map[string]any
	constraints []string
}

// WithContext attaches structured side information (timeline, phase,
// team shape) scanned for scope cues.
func WithContext(ctx map[string]any) DecomposeOption {
	return func(o *decomposeOptions) { o.context = ctx }
}

// WithConstraints attaches explicit constraints. Each entry becomes its
// own constraint component in list order.
func WithConstraints(constraints ...string) DecomposeOption {
	return func(o *decomposeOptions) { o.constraints = constraints }
}

// Decompose runs the full pipeline over one problem statement.
//
// The only expected failure is ErrInvalidInput for an empty or
// oversized statement, raised before any stage runs. Messy input never
// fails: ambiguity, missing signals, and low confidence all surface as
// warnings inside a successfully returned result, and callers should
// inspect Warnings and Metadata.Confidence before trusting the output.
// ErrInvariantViolation indicates a resolver defect and should not be
// retried.
func (op *Operator) Decompose(statement string, opts ...DecomposeOption) (*Result, error) {
	options := &decomposeOptions{}
	for _, o := range opts {
		o(options)
	}

	if strings.TrimSpace(statement) == "" {
		return nil, fmt.Errorf("%w: statement is empty or whitespace-only", ErrInvalidInput)
	}
	if len(statement) > op.cfg.MaxInputBytes {
		return nil, fmt.Errorf("%w: statement is %d bytes, limit is %d",
			ErrInvalidInput, len(statement), op.cfg.MaxInputBytes)
	}

	norm := tokenizer.Normalize(statement)
	slog.Debug("decompose: tokenized", "tokens", len(norm.Tokens), "bytes", len(norm.Raw))

	signals := op.extractor.Extract(norm, options.context, options.constraints)
	slog.Debug("decompose: signals extracted", "signals", len(signals),
		"constraints", len(options.constraints))

	comps, builderWarnings := component.NewBuilder(op.cfg.TokenGapThreshold).Build(norm, signals)
	slog.Debug("decompose: components built", "components", len(comps))

	rel, err := relation.Resolve(comps, signals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	slog.Debug("decompose: relationships resolved",
		"relationships", len(rel.Relationships), "critical_path", len(rel.CriticalPath))

	constraintCount := 0
	var spans [][2]int
	for _, c := range comps {
		if c.Type == component.TypeConstraint {
			constraintCount++
			continue
		}
		spans = append(spans, [2]int{c.Span.Start, c.Span.End})
	}

	textSignals := signal.TextSignals(signals)
	density := 0.0
	if len(norm.Tokens) > 0 {
		density = float64(len(textSignals)) / float64(len(norm.Tokens))
	}
	coverage := score.CoverageRatio(len(norm.Raw), spans)
	ambiguity := signal.CountKind(signals, signal.KindAmbiguity)

	complexity := score.Complexity(score.ComplexityInput{
		ComponentCount:  len(comps),
		DependencyDepth: rel.DependencyDepth,
		ConstraintCount: constraintCount,
	}, op.cfg.Complexity)
	confidence := score.Confidence(score.ConfidenceInput{
		SignalDensity:  density,
		AmbiguityCount: ambiguity,
		CoverageRatio:  coverage,
	}, op.cfg.Confidence)

	steps, warnings := report.Build(report.Input{
		Statement:              norm,
		Signals:                signals,
		Components:             comps,
		Relations:              rel,
		Complexity:             complexity,
		Confidence:             confidence,
		SignalDensity:          density,
		CoverageRatio:          coverage,
		AmbiguityCount:         ambiguity,
		LowConfidenceThreshold: op.cfg.LowConfidenceThreshold,
		BuilderWarnings:        builderWarnings,
	})

	return buildResult(comps, rel, complexity, confidence, constraintCount, steps, warnings), nil
}

// Decompose runs a one-off decomposition with the default configuration.
func Decompose(statement string, opts ...DecomposeOption) (*Result, error) {
	return New(DefaultConfig()).Decompose(statement, opts...)
}
