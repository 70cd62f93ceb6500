package component

import (
	"testing"

	"github.com/hummbl-dev/hummbl-prototype/signal"
	"github.com/hummbl-dev/hummbl-prototype/tokenizer"
)

func build(t *testing.T, statement string, constraints []string) ([]Component, []string) {
	t.Helper()
	n := tokenizer.Normalize(statement)
	signals := signal.NewExtractor().Extract(n, nil, constraints)
	return NewBuilder(0).Build(n, signals)
}

func TestBuildSegments(t *testing.T) {
	tests := []struct {
		name       string
		statement  string
		wantLabels []string
		wantTypes  []Type
	}{
		{
			name:       "sequence connective closes components",
			statement:  "Build A, then build B, then build C",
			wantLabels: []string{"Build A", "build B", "build C"},
			wantTypes:  []Type{TypeAction, TypeAction, TypeAction},
		},
		{
			name:       "conjunction closes components",
			statement:  "Design the API and write the tests",
			wantLabels: []string{"Design the API", "write the tests"},
			wantTypes:  []Type{TypeAction, TypeAction},
		},
		{
			name:       "deliverable noun without action verb",
			statement:  "the billing dashboard and some cleanup",
			wantLabels: []string{"the billing dashboard", "some cleanup"},
			wantTypes:  []Type{TypeDeliverable, TypeUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comps, warnings := build(t, tt.statement, nil)
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
			if len(comps) != len(tt.wantLabels) {
				t.Fatalf("components = %d, want %d (%v)", len(comps), len(tt.wantLabels), comps)
			}
			for i, c := range comps {
				if c.Label != tt.wantLabels[i] {
					t.Errorf("component %d label = %q, want %q", i, c.Label, tt.wantLabels[i])
				}
				if c.Type != tt.wantTypes[i] {
					t.Errorf("component %d type = %q, want %q", i, c.Type, tt.wantTypes[i])
				}
			}
		})
	}
}

func TestBuildZeroSignalFallback(t *testing.T) {
	comps, warnings := build(t, "Refactor the billing module", nil)

	if len(comps) != 1 {
		t.Fatalf("components = %d, want 1", len(comps))
	}
	if comps[0].Type != TypeUnknown {
		t.Errorf("fallback type = %q, want unknown", comps[0].Type)
	}
	if comps[0].Span.Start != 0 || comps[0].Span.End == 0 {
		t.Errorf("fallback span = %+v, want the whole statement", comps[0].Span)
	}
	if len(warnings) != 1 || warnings[0] != WarnNoSignals {
		t.Errorf("warnings = %v, want the zero-signal warning", warnings)
	}
}

func TestBuildConstraintComponents(t *testing.T) {
	comps, _ := build(t, "Build the API, then test it", []string{"zero budget", "solo"})

	var constraints []Component
	for _, c := range comps {
		if c.Type == TypeConstraint {
			constraints = append(constraints, c)
		}
	}
	if len(constraints) != 2 {
		t.Fatalf("constraint components = %d, want 2", len(constraints))
	}
	if constraints[0].Text != "zero budget" || constraints[1].Text != "solo" {
		t.Errorf("constraints out of list order: %v", constraints)
	}
	for _, c := range constraints {
		if c.Text == "" {
			t.Errorf("constraint component %s has no text", c.ID)
		}
		if len(c.SignalIDs) != 1 {
			t.Errorf("constraint component %s signal ids = %v, want one", c.ID, c.SignalIDs)
		}
	}

	// Constraint components come after text components, in list order.
	if comps[len(comps)-2].Type != TypeConstraint || comps[len(comps)-1].Type != TypeConstraint {
		t.Errorf("constraint components are not last: %v", comps)
	}
}

func TestBuildIDsFollowFinalizationOrder(t *testing.T) {
	comps, _ := build(t, "Build A, then build B", []string{"solo"})
	for i, c := range comps {
		want := "comp_" + string(rune('0'+i))
		if c.ID != want {
			t.Errorf("component %d id = %q, want %q", i, c.ID, want)
		}
	}
}

func TestBuildGapSplitsSegment(t *testing.T) {
	// Two ambiguity cues far apart in one segment: the gap threshold
	// splits them into separate components.
	statement := "maybe improve the slow billing report pipeline for several teams"
	n := tokenizer.Normalize(statement)
	signals := signal.NewExtractor().Extract(n, nil, nil)

	tight, _ := NewBuilder(20).Build(n, signals)
	split, _ := NewBuilder(3).Build(n, signals)

	if len(tight) != 1 {
		t.Fatalf("wide gap threshold: components = %d, want 1", len(tight))
	}
	if len(split) < 2 {
		t.Fatalf("narrow gap threshold: components = %d, want at least 2", len(split))
	}
}
