// Package report assembles the human-readable reasoning trace and the
// warning list from the intermediate artifacts of the other stages. It
// only reports: nothing here can fail or abort the pipeline.
package report

import (
	"fmt"
	"strings"

	"github.com/hummbl-dev/hummbl-prototype/component"
	"github.com/hummbl-dev/hummbl-prototype/relation"
	"github.com/hummbl-dev/hummbl-prototype/signal"
	"github.com/hummbl-dev/hummbl-prototype/tokenizer"
)

// Input collects the per-stage artifacts the reporter narrates.
type Input struct {
	Statement  tokenizer.Normalized
	Signals    []signal.Signal
	Components []component.Component
	Relations  *relation.Result

	Complexity float64
	Confidence float64

	SignalDensity  float64
	CoverageRatio  float64
	AmbiguityCount int

	LowConfidenceThreshold float64
	BuilderWarnings        []string
}

// shortStatementBytes is the length below which a statement usually
// lacks the detail needed for a trustworthy breakdown.
const shortStatementBytes = 50

// Build returns the ordered reasoning steps and warnings for a
// completed pipeline run.
func Build(in Input) (steps []string, warnings []string) {
	steps = append(steps, fmt.Sprintf(
		"tokenized statement into %d tokens (%d bytes); extracted %d signals (%d sequence, %d conjunction, %d scope, %d ambiguity, %d constraint)",
		len(in.Statement.Tokens), len(in.Statement.Raw), len(in.Signals),
		signal.CountKind(in.Signals, signal.KindSequence),
		signal.CountKind(in.Signals, signal.KindConjunction),
		signal.CountKind(in.Signals, signal.KindScope),
		signal.CountKind(in.Signals, signal.KindAmbiguity),
		signal.CountKind(in.Signals, signal.KindConstraint)))

	for _, c := range in.Components {
		steps = append(steps, componentStep(c, in.Signals))
	}

	for _, r := range in.Relations.Relationships {
		steps = append(steps, relationshipStep(r, in.Signals))
	}

	if len(in.Relations.CriticalPath) > 0 {
		steps = append(steps, fmt.Sprintf("critical path %s (%d dependency edges)",
			strings.Join(in.Relations.CriticalPath, " -> "), in.Relations.DependencyDepth))
	}
	for _, g := range in.Relations.ParallelGroups {
		steps = append(steps, fmt.Sprintf("parallelizable group {%s}", strings.Join(g, ", ")))
	}

	steps = append(steps, fmt.Sprintf(
		"estimated complexity %.2f from %d components, dependency depth %d, %d constraints",
		in.Complexity, len(in.Components), in.Relations.DependencyDepth,
		countConstraints(in.Components)))
	steps = append(steps, fmt.Sprintf(
		"confidence %.2f from coverage %.2f, signal density %.2f, %d ambiguity signals",
		in.Confidence, in.CoverageRatio, in.SignalDensity, in.AmbiguityCount))

	if len(in.Statement.Raw) < shortStatementBytes {
		warnings = append(warnings, fmt.Sprintf(
			"statement is %d bytes; descriptions this short usually lack detail and context",
			len(in.Statement.Raw)))
	}
	warnings = append(warnings, in.BuilderWarnings...)
	for _, s := range in.Signals {
		if s.Kind == signal.KindAmbiguity {
			warnings = append(warnings, fmt.Sprintf(
				"ambiguity: %q at offset %d leaves the scope of the work undefined", s.Text, s.Start))
		}
	}
	for _, c := range in.Components {
		if c.Text == "" {
			warnings = append(warnings, fmt.Sprintf("component %s has an empty source span", c.ID))
		}
	}
	if in.Confidence < in.LowConfidenceThreshold {
		warnings = append(warnings, fmt.Sprintf(
			"confidence %.2f is below the %.2f threshold; treat this decomposition as a draft",
			in.Confidence, in.LowConfidenceThreshold))
	}
	return steps, warnings
}

func componentStep(c component.Component, signals []signal.Signal) string {
	if c.Type == component.TypeConstraint {
		return fmt.Sprintf("added constraint component %s for %q", c.ID, c.Text)
	}
	trigger := "no signals"
	if len(c.SignalIDs) > 0 {
		trigger = fmt.Sprintf("%d signals (%s)", len(c.SignalIDs), signalTexts(c.SignalIDs, signals))
	}
	return fmt.Sprintf("formed %s component %s %q from %s", c.Type, c.ID, c.Label, trigger)
}

func relationshipStep(r relation.Relationship, signals []signal.Signal) string {
	cue := "adjacency"
	if r.SignalID >= 0 && r.SignalID < len(signals) {
		cue = fmt.Sprintf("%s cue %q", signals[r.SignalID].Kind, signals[r.SignalID].Text)
	}
	return fmt.Sprintf("inferred %s %s %s (weight %.2f) from %s",
		r.FromID, r.Kind, r.ToID, r.Weight, cue)
}

func signalTexts(ids []int, signals []signal.Signal) string {
	texts := make([]string, 0, len(ids))
	for _, id := range ids {
		if id >= 0 && id < len(signals) {
			texts = append(texts, fmt.Sprintf("%q", signals[id].Text))
		}
	}
	return strings.Join(texts, ", ")
}

func countConstraints(comps []component.Component) int {
	n := 0
	for _, c := range comps {
		if c.Type == component.TypeConstraint {
			n++
		}
	}
	return n
}
