// Package score computes the complexity and confidence estimates for a
// decomposition. Every function here is pure: the scores depend only on
// their inputs, with no randomness or I/O, so identical pipelines
// always produce identical scores.
package score

import (
	"math"
	"sort"
)

// ComplexityWeights controls the relative importance of the structural
// complexity factors.
type ComplexityWeights struct {
	Component  float64 `json:"component" yaml:"component"`
	Depth      float64 `json:"depth" yaml:"depth"`
	Constraint float64 `json:"constraint" yaml:"constraint"`
}

// DefaultComplexityWeights returns the tuned defaults.
func DefaultComplexityWeights() ComplexityWeights {
	return ComplexityWeights{
		Component:  1.0,
		Depth:      1.5,
		Constraint: 0.75,
	}
}

// ComplexityInput carries the structural facts the estimate is built from.
type ComplexityInput struct {
	ComponentCount  int
	DependencyDepth int // edge count of the longest dependency chain
	ConstraintCount int
}

// Complexity estimates structural complexity as a weighted sum of
// component count, dependency depth, and constraint count. It is
// monotonically non-decreasing in each factor, unbounded above, zero
// for zero components, and rounded to two decimals for stable output.
func Complexity(in ComplexityInput, w ComplexityWeights) float64 {
	if in.ComponentCount == 0 {
		return 0
	}
	c := w.Component*float64(in.ComponentCount) +
		w.Depth*float64(in.DependencyDepth) +
		w.Constraint*float64(in.ConstraintCount)
	return round2(c)
}

// ConfidenceWeights controls the relative importance of the confidence
// factors. Base is the floor credit for producing any structure at all;
// AmbiguityPenalty is subtracted once per ambiguity signal.
type ConfidenceWeights struct {
	Coverage         float64 `json:"coverage" yaml:"coverage"`
	Density          float64 `json:"density" yaml:"density"`
	Base             float64 `json:"base" yaml:"base"`
	AmbiguityPenalty float64 `json:"ambiguity_penalty" yaml:"ambiguity_penalty"`
}

// DefaultConfidenceWeights returns balanced weights.
func DefaultConfidenceWeights() ConfidenceWeights {
	return ConfidenceWeights{
		Coverage:         0.45,
		Density:          0.35,
		Base:             0.20,
		AmbiguityPenalty: 0.12,
	}
}

// ConfidenceInput carries the signal-clarity facts confidence is built from.
type ConfidenceInput struct {
	SignalDensity  float64 // text signals per token
	AmbiguityCount int     // number of ambiguity signals
	CoverageRatio  float64 // fraction of the statement covered by components
}

// Confidence estimates how trustworthy the decomposition is, clamped to
// [0,1]. It strictly increases with coverage and strictly decreases
// with the ambiguity count (until the clamp floor).
func Confidence(in ConfidenceInput, w ConfidenceWeights) float64 {
	density := in.SignalDensity * 4
	if density > 1 {
		density = 1
	}
	c := w.Base +
		w.Coverage*in.CoverageRatio +
		w.Density*density -
		w.AmbiguityPenalty*float64(in.AmbiguityCount)
	return round2(clamp01(c))
}

// CoverageRatio returns the fraction of a statement of totalLen bytes
// covered by the given spans. Overlapping spans are merged first so no
// byte is counted twice.
func CoverageRatio(totalLen int, spans [][2]int) float64 {
	if totalLen == 0 || len(spans) == 0 {
		return 0
	}
	merged := make([][2]int, len(spans))
	copy(merged, spans)
	sort.Slice(merged, func(i, j int) bool { return merged[i][0] < merged[j][0] })

	covered := 0
	curStart, curEnd := merged[0][0], merged[0][1]
	for _, s := range merged[1:] {
		if s[0] > curEnd {
			covered += curEnd - curStart
			curStart, curEnd = s[0], s[1]
			continue
		}
		if s[1] > curEnd {
			curEnd = s[1]
		}
	}
	covered += curEnd - curStart

	ratio := float64(covered) / float64(totalLen)
	return clamp01(ratio)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
