// Package component groups extracted signals into the discrete units of
// work, deliverables and constraints that make up a decomposition.
package component

import (
	"fmt"
	"strings"

	"github.com/hummbl-dev/hummbl-prototype/signal"
	"github.com/hummbl-dev/hummbl-prototype/tokenizer"
)

// Type classifies a component.
type Type string

const (
	TypeAction      Type = "action"
	TypeDeliverable Type = "deliverable"
	TypeConstraint  Type = "constraint"
	TypeUnknown     Type = "unknown"
)

// Span is a byte range into the raw statement. Constraint components
// are synthetic and carry a zero span.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Component is a discrete unit extracted from the statement. The ID is
// assigned in finalization order and that order is the canonical
// iteration order of the result's component collection.
type Component struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Type      Type   `json:"type"`
	Span      Span   `json:"span"`
	Text      string `json:"text"`
	SignalIDs []int  `json:"signal_ids"`
}

// WarnNoSignals is the warning emitted when the statement yields no
// decomposition signals and is returned as a single component.
const WarnNoSignals = "no decomposition signals found; returning input as single component"

// Builder groups signals into components.
type Builder struct {
	gap int
}

// NewBuilder returns a Builder with the given token gap threshold.
// Signals in the same segment separated by at least this many tokens
// split the segment; zero means the default of 3.
func NewBuilder(gapThreshold int) *Builder {
	if gapThreshold == 0 {
		gapThreshold = 3
	}
	return &Builder{gap: gapThreshold}
}

// Build converts the signal stream into components. Sequence and
// conjunction signals act as segment boundaries: each closes the open
// component and opens a new one. Within a segment, clusters of signals
// separated by at least the gap threshold split the segment between the
// clusters. Every constraint signal becomes its own component. With no
// text signals at all, the whole statement becomes a single unknown
// component and a warning is returned alongside.
func (b *Builder) Build(n tokenizer.Normalized, signals []signal.Signal) ([]Component, []string) {
	var comps []Component
	var warnings []string

	text := signal.TextSignals(signals)
	if len(text) == 0 {
		comps = append(comps, fallbackComponent(n))
		warnings = append(warnings, WarnNoSignals)
	} else {
		for _, seg := range b.segment(n, text) {
			comps = append(comps, buildSegmentComponent(n, seg))
		}
		if len(comps) == 0 {
			// Boundary-only statements ("and then") leave no segment text.
			comps = append(comps, fallbackComponent(n))
			warnings = append(warnings, WarnNoSignals)
		}
	}

	for _, s := range signals {
		if s.Kind != signal.KindConstraint {
			continue
		}
		comps = append(comps, Component{
			Type:      TypeConstraint,
			Label:     "respect constraint: " + s.Text,
			Text:      s.Text,
			SignalIDs: []int{s.ID},
		})
	}

	for i := range comps {
		comps[i].ID = fmt.Sprintf("comp_%d", i)
	}
	return comps, warnings
}

// segment is a run of tokens forming one candidate component, together
// with the non-boundary signals that fall inside it.
type segment struct {
	firstToken int
	lastToken  int
	signals    []signal.Signal
}

// segment splits the token stream on boundary signals, then applies the
// gap threshold inside each piece.
func (b *Builder) segment(n tokenizer.Normalized, text []signal.Signal) []segment {
	boundary := make(map[int]bool) // token index -> is boundary
	for _, s := range text {
		if s.Kind == signal.KindSequence || s.Kind == signal.KindConjunction {
			for i := s.TokenIndex; i < len(n.Tokens) && n.Tokens[i].Start < s.End; i++ {
				boundary[i] = true
			}
		}
	}

	var segs []segment
	start := -1
	for i := range n.Tokens {
		if boundary[i] {
			if start >= 0 {
				segs = append(segs, b.splitByGap(makeSegment(start, i-1, text))...)
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		segs = append(segs, b.splitByGap(makeSegment(start, len(n.Tokens)-1, text))...)
	}
	return segs
}

func makeSegment(first, last int, text []signal.Signal) segment {
	seg := segment{firstToken: first, lastToken: last}
	for _, s := range text {
		if s.Kind == signal.KindSequence || s.Kind == signal.KindConjunction {
			continue
		}
		if s.TokenIndex >= first && s.TokenIndex <= last {
			seg.signals = append(seg.signals, s)
		}
	}
	return seg
}

// splitByGap breaks a segment between signal clusters whose token
// distance meets the gap threshold. A segment with fewer than two
// signals is returned unchanged.
func (b *Builder) splitByGap(seg segment) []segment {
	if len(seg.signals) < 2 {
		return []segment{seg}
	}

	out := make([]segment, 0, 1)
	cur := segment{firstToken: seg.firstToken, signals: seg.signals[:1]}
	for i := 1; i < len(seg.signals); i++ {
		prev, next := seg.signals[i-1], seg.signals[i]
		if next.TokenIndex-prev.TokenIndex >= b.gap {
			// Cut midway between the two clusters.
			cut := (prev.TokenIndex + next.TokenIndex) / 2
			cur.lastToken = cut
			out = append(out, cur)
			cur = segment{firstToken: cut + 1, signals: nil}
		}
		cur.signals = append(cur.signals, next)
	}
	cur.lastToken = seg.lastToken
	out = append(out, cur)
	return out
}

func buildSegmentComponent(n tokenizer.Normalized, seg segment) Component {
	first := n.Tokens[seg.firstToken]
	last := n.Tokens[seg.lastToken]
	covered := n.Raw[first.Start:last.End]

	ids := make([]int, 0, len(seg.signals))
	for _, s := range seg.signals {
		ids = append(ids, s.ID)
	}

	return Component{
		Label:     makeLabel(covered),
		Type:      inferType(n.Tokens[seg.firstToken : seg.lastToken+1]),
		Span:      Span{Start: first.Start, End: last.End},
		Text:      covered,
		SignalIDs: ids,
	}
}

func fallbackComponent(n tokenizer.Normalized) Component {
	return Component{
		Label: makeLabel(strings.TrimSpace(n.Raw)),
		Type:  TypeUnknown,
		Span:  Span{Start: 0, End: len(n.Raw)},
		Text:  n.Raw,
	}
}

// makeLabel collapses whitespace and caps the label at a display-friendly
// length. The full covered text stays available in Text.
func makeLabel(text string) string {
	label := strings.Join(strings.Fields(text), " ")
	const maxLabel = 60
	if len(label) > maxLabel {
		cut := strings.LastIndex(label[:maxLabel], " ")
		if cut <= 0 {
			cut = maxLabel
		}
		label = label[:cut] + "…"
	}
	return label
}

// actionVerbs indicate work to be done.
var actionVerbs = map[string]bool{
	"build": true, "create": true, "implement": true, "develop": true,
	"design": true, "setup": true, "configure": true, "install": true,
	"deploy": true, "integrate": true, "test": true, "validate": true,
	"optimize": true, "refactor": true, "migrate": true, "add": true,
	"remove": true, "update": true, "modify": true, "fix": true,
	"enhance": true, "improve": true, "analyze": true, "evaluate": true,
	"assess": true, "review": true, "audit": true, "investigate": true,
	"write": true, "document": true, "ship": true,
}

// deliverableNouns indicate artifacts rather than activities.
var deliverableNouns = map[string]bool{
	"api": true, "server": true, "database": true, "service": true,
	"function": true, "component": true, "module": true, "system": true,
	"cache": true, "storage": true, "queue": true, "worker": true,
	"documentation": true, "tests": true, "ui": true, "dashboard": true,
	"report": true, "pipeline": true, "schema": true, "mockup": true,
	"mockups": true, "prototype": true,
}

// inferType classifies a segment: a leading action verb wins, otherwise
// a deliverable noun anywhere in the segment, otherwise unknown.
func inferType(tokens []tokenizer.Token) Type {
	for _, t := range tokens {
		if actionVerbs[t.Lower] {
			return TypeAction
		}
	}
	for _, t := range tokens {
		if deliverableNouns[t.Lower] {
			return TypeDeliverable
		}
	}
	return TypeUnknown
}
