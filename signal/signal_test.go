package signal

import (
	"reflect"
	"testing"

	"github.com/hummbl-dev/hummbl-prototype/tokenizer"
)

func extract(t *testing.T, statement string) []Signal {
	t.Helper()
	return NewExtractor().Extract(tokenizer.Normalize(statement), nil, nil)
}

func kindsOf(signals []Signal) []Kind {
	kinds := make([]Kind, len(signals))
	for i, s := range signals {
		kinds[i] = s.Kind
	}
	return kinds
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantKinds []Kind
	}{
		{
			name:      "sequence connectives",
			statement: "Build A, then build B, followed by C",
			wantKinds: []Kind{KindSequence, KindSequence},
		},
		{
			name:      "conjunction",
			statement: "Design the API and write the tests",
			wantKinds: []Kind{KindConjunction},
		},
		{
			name:      "scope phrases",
			statement: "Ship it in 2 weeks with $500 and 3 engineers",
			wantKinds: []Kind{KindScope, KindConjunction, KindScope, KindConjunction, KindScope},
		},
		{
			name:      "ambiguity markers",
			statement: "Maybe improve some screens",
			wantKinds: []Kind{KindAmbiguity, KindAmbiguity},
		},
		{
			name:      "no cues",
			statement: "Refactor the billing module",
			wantKinds: []Kind{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kindsOf(extract(t, tt.statement))
			if len(got) == 0 && len(tt.wantKinds) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.wantKinds) {
				t.Errorf("signal kinds = %v, want %v", got, tt.wantKinds)
			}
		})
	}
}

func TestExtractOrderedByOffset(t *testing.T) {
	signals := extract(t, "Maybe design the API and then test some flows")
	for i := 1; i < len(signals); i++ {
		if signals[i].Start < signals[i-1].Start {
			t.Fatalf("signals out of offset order at %d: %v", i, signals)
		}
	}
	for i, s := range signals {
		if s.ID != i {
			t.Errorf("signal %d has ID %d; IDs must follow order", i, s.ID)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	n := tokenizer.Normalize("Build the worker and maybe tune it in 3 days")
	ctx := map[string]any{"timeline": "2 weeks", "team": "solo", "phase": "beta"}

	first := NewExtractor().Extract(n, ctx, []string{"zero budget"})
	second := NewExtractor().Extract(n, ctx, []string{"zero budget"})
	if !reflect.DeepEqual(first, second) {
		t.Error("identical input produced different signal lists")
	}
}

func TestExtractConstraints(t *testing.T) {
	signals := NewExtractor().Extract(
		tokenizer.Normalize("Deploy the service"),
		nil,
		[]string{"rapid iteration", "empirical validation"},
	)

	var constraints []Signal
	for _, s := range signals {
		if s.Kind == KindConstraint {
			constraints = append(constraints, s)
		}
	}
	if len(constraints) != 2 {
		t.Fatalf("constraint signals = %d, want 2", len(constraints))
	}
	for i, s := range constraints {
		if !s.Synthetic {
			t.Errorf("constraint signal %d not marked synthetic", i)
		}
		if s.Start != i {
			t.Errorf("constraint signal %d anchored at %d, want list position %d", i, s.Start, i)
		}
	}
	if constraints[0].Text != "rapid iteration" || constraints[1].Text != "empirical validation" {
		t.Errorf("constraint signals out of list order: %v", constraints)
	}
}

func TestExtractContextScopeCues(t *testing.T) {
	n := tokenizer.Normalize("Deploy the service")
	signals := NewExtractor().Extract(n, map[string]any{
		"timeline": "2 weeks",
		"phase":    "beta", // no scope cue, contributes nothing
	}, nil)

	var ctxSignals []Signal
	for _, s := range signals {
		if s.Matcher == "context" {
			ctxSignals = append(ctxSignals, s)
		}
	}
	if len(ctxSignals) != 1 {
		t.Fatalf("context signals = %d, want 1", len(ctxSignals))
	}
	if ctxSignals[0].Kind != KindScope || ctxSignals[0].Text != "timeline: 2 weeks" {
		t.Errorf("context signal = %+v, want scope cue for timeline", ctxSignals[0])
	}
}

func TestScopeMatcherMultibyteStatements(t *testing.T) {
	// Lowercasing runes like İ and Ⱥ changes their byte length, so scope
	// spans must be computed against the raw statement, not a lowercased
	// shadow of it.
	tests := []struct {
		name      string
		statement string
		wantText  string
	}{
		{"shrinking rune before cue", "İİİİ rollout in 2 weeks", "2 weeks"},
		{"growing rune before cue", "ȺȺȺȺ budget is $500", "$500"},
		{"uppercase cue", "Deliver in 2 Weeks with ZERO BUDGET", "2 Weeks"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tokenizer.Normalize(tt.statement)
			signals := (&ScopeMatcher{}).Scan(n)
			if len(signals) == 0 {
				t.Fatal("no scope signals found")
			}
			s := signals[0]
			if s.Text != tt.wantText {
				t.Errorf("signal text = %q, want %q", s.Text, tt.wantText)
			}
			if got := tt.statement[s.Start:s.End]; got != s.Text {
				t.Errorf("raw[%d:%d] = %q, want the signal text %q", s.Start, s.End, got, s.Text)
			}
		})
	}
}

func TestUnresolvedPronoun(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		want      int // ambiguity signals
	}{
		{"pronoun with no referent", "Make it faster", 1},
		{"pronoun with referent", "Build the cache and tune it", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountKind(extract(t, tt.statement), KindAmbiguity)
			if got != tt.want {
				t.Errorf("ambiguity signals = %d, want %d", got, tt.want)
			}
		})
	}
}
