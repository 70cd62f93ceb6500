package hummbl

import (
	"github.com/hummbl-dev/hummbl-prototype/component"
	"github.com/hummbl-dev/hummbl-prototype/relation"
)

// Result is the sole externally visible artifact of a decomposition.
// Once returned it is read-only; the engine never retains a reference.
type Result struct {
	Components     []Component    `json:"components"`
	Relationships  []Relationship `json:"relationships"`
	CriticalPath   []string       `json:"critical_path"`
	Parallelizable [][]string     `json:"parallelizable"`
	Metadata       Metadata       `json:"metadata"`
	Reasoning      []string       `json:"reasoning"`
	Warnings       []string       `json:"warnings"`
}

// Component is a discrete unit of work, deliverable, or constraint
// extracted from the statement. Span offsets point into the original
// statement text; constraint components are synthetic and carry a zero
// span with the constraint entry in Text.
type Component struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Type      string `json:"type"` // action | deliverable | constraint | unknown
	Span      Span   `json:"span"`
	Text      string `json:"text"`
	SignalIDs []int  `json:"signal_ids,omitempty"`
}

// Span is a byte range into the original statement.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Relationship is a directed edge between two components.
type Relationship struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Kind   string  `json:"kind"` // depends_on | parallel_with
	Weight float64 `json:"weight"`
}

// Metadata carries the computed scores and structural counts.
type Metadata struct {
	TotalComponents     int     `json:"total_components"`
	ConstraintCount     int     `json:"constraint_count"`
	DependencyDepth     int     `json:"dependency_depth"`
	EstimatedComplexity float64 `json:"estimated_complexity"`
	Confidence          float64 `json:"confidence"`
}

// buildResult converts the stage artifacts into the public result shape.
func buildResult(comps []component.Component, rel *relation.Result,
	complexity, confidence float64, constraintCount int,
	steps, warnings []string) *Result {

	res := &Result{
		CriticalPath:   rel.CriticalPath,
		Parallelizable: rel.ParallelGroups,
		Metadata: Metadata{
			TotalComponents:     len(comps),
			ConstraintCount:     constraintCount,
			DependencyDepth:     rel.DependencyDepth,
			EstimatedComplexity: complexity,
			Confidence:          confidence,
		},
		Reasoning: steps,
		Warnings:  warnings,
	}
	if res.Warnings == nil {
		res.Warnings = []string{}
	}
	if res.CriticalPath == nil {
		res.CriticalPath = []string{}
	}
	if res.Parallelizable == nil {
		res.Parallelizable = [][]string{}
	}

	for _, c := range comps {
		res.Components = append(res.Components, Component{
			ID:        c.ID,
			Label:     c.Label,
			Type:      string(c.Type),
			Span:      Span{Start: c.Span.Start, End: c.Span.End},
			Text:      c.Text,
			SignalIDs: c.SignalIDs,
		})
	}
	for _, r := range rel.Relationships {
		res.Relationships = append(res.Relationships, Relationship{
			From:   r.FromID,
			To:     r.ToID,
			Kind:   string(r.Kind),
			Weight: r.Weight,
		})
	}
	return res
}
