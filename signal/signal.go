// Package signal scans a normalized statement for decomposition cues:
// sequencing connectives, coordinating conjunctions, scope phrases, and
// ambiguity markers. Matchers are independent and may overlap; the
// extractor merges their output into a deterministic, offset-ordered
// signal list.
package signal

import (
	"fmt"
	"sort"

	"github.com/hummbl-dev/hummbl-prototype/tokenizer"
)

// Kind classifies a signal.
type Kind string

const (
	KindSequence    Kind = "sequence"
	KindConjunction Kind = "conjunction"
	KindScope       Kind = "scope"
	KindAmbiguity   Kind = "ambiguity"
	KindConstraint  Kind = "constraint"
)

// Signal is a located cue in the statement. Text signals carry byte
// offsets into the raw statement; synthetic signals (constraint list
// entries, context values) carry their list position instead and set
// Synthetic.
type Signal struct {
	ID         int    `json:"id"`
	Kind       Kind   `json:"kind"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	TokenIndex int    `json:"token_index"` // first covered token, -1 for synthetic
	Text       string `json:"text"`        // matched text, original casing
	Matcher    string `json:"matcher"`
	Synthetic  bool   `json:"synthetic,omitempty"`
}

// Matcher scans normalized text and returns zero or more signals.
// Matchers must be pure: identical input yields identical output.
type Matcher interface {
	// Name identifies the matcher in signals and the reasoning trace.
	Name() string
	// Priority breaks ordering ties between signals at the same offset.
	// Lower values sort first.
	Priority() int
	Scan(n tokenizer.Normalized) []Signal
}

// Extractor applies an ordered set of matchers and merges constraint
// and context cues into the signal stream.
type Extractor struct {
	matchers []Matcher
}

// NewExtractor returns an Extractor with the built-in matchers
// registered in priority order.
func NewExtractor() *Extractor {
	return &Extractor{
		matchers: []Matcher{
			&SequenceMatcher{},
			&ConjunctionMatcher{},
			&ScopeMatcher{},
			&AmbiguityMatcher{},
		},
	}
}

// Register adds a custom matcher. Built-in matchers are never replaced;
// overlapping signals are allowed.
func (e *Extractor) Register(m Matcher) {
	e.matchers = append(e.matchers, m)
}

// Extract runs every matcher over the statement, sorts the resulting
// text signals by offset (matcher priority on ties), then appends one
// synthetic constraint signal per constraint entry and one synthetic
// scope signal per context value that itself contains a scope cue.
// Signal IDs are assigned after ordering, so identical input always
// yields an identical signal list.
func (e *Extractor) Extract(n tokenizer.Normalized, context map[string]any, constraints []string) []Signal {
	var signals []Signal
	for _, m := range e.matchers {
		signals = append(signals, m.Scan(n)...)
	}

	sort.SliceStable(signals, func(i, j int) bool {
		if signals[i].Start != signals[j].Start {
			return signals[i].Start < signals[j].Start
		}
		return priorityOf(e.matchers, signals[i].Matcher) < priorityOf(e.matchers, signals[j].Matcher)
	})

	signals = append(signals, contextSignals(context)...)

	for i, c := range constraints {
		signals = append(signals, Signal{
			Kind:       KindConstraint,
			Start:      i,
			End:        i,
			TokenIndex: -1,
			Text:       c,
			Matcher:    "constraint-list",
			Synthetic:  true,
		})
	}

	for i := range signals {
		signals[i].ID = i
	}
	return signals
}

// contextSignals scans context values for scope cues (timelines, budget
// and team-size phrases). Keys are visited in sorted order so the
// output is deterministic regardless of map iteration order.
func contextSignals(context map[string]any) []Signal {
	if len(context) == 0 {
		return nil
	}
	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []Signal
	for i, k := range keys {
		v := fmt.Sprintf("%v", context[k])
		if !containsScopeCue(v) {
			continue
		}
		out = append(out, Signal{
			Kind:       KindScope,
			Start:      i,
			End:        i,
			TokenIndex: -1,
			Text:       k + ": " + v,
			Matcher:    "context",
			Synthetic:  true,
		})
	}
	return out
}

func priorityOf(matchers []Matcher, name string) int {
	for _, m := range matchers {
		if m.Name() == name {
			return m.Priority()
		}
	}
	return 1 << 10
}

// CountKind returns how many signals have the given kind.
func CountKind(signals []Signal, kind Kind) int {
	n := 0
	for _, s := range signals {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// TextSignals returns the non-synthetic signals, in order.
func TextSignals(signals []Signal) []Signal {
	out := make([]Signal, 0, len(signals))
	for _, s := range signals {
		if !s.Synthetic {
			out = append(out, s)
		}
	}
	return out
}
