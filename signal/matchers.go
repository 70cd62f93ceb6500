package signal

import (
	"regexp"

	"github.com/hummbl-dev/hummbl-prototype/tokenizer"
)

// sequenceWords are connectives that impose an ordering between the
// clause before and the clause after them. Directional words like
// "before" are treated as forward cues; reordering them is the
// inversion operator's territory, not decomposition's.
var sequenceWords = map[string]bool{
	"then": true, "after": true, "afterwards": true, "before": true,
	"next": true, "once": true, "finally": true, "subsequently": true,
	"later": true, "lastly": true,
}

// sequencePairs are two-token sequence connectives.
var sequencePairs = map[string]string{
	"followed": "by",
}

// SequenceMatcher finds sequencing connectives ("then", "after", ...).
type SequenceMatcher struct{}

func (m *SequenceMatcher) Name() string  { return "sequence" }
func (m *SequenceMatcher) Priority() int { return 1 }

func (m *SequenceMatcher) Scan(n tokenizer.Normalized) []Signal {
	var out []Signal
	for i, t := range n.Tokens {
		if second, ok := sequencePairs[t.Lower]; ok && i+1 < len(n.Tokens) && n.Tokens[i+1].Lower == second {
			out = append(out, tokenSignal(KindSequence, m.Name(), t, n.Tokens[i+1].End, n.Raw))
			continue
		}
		if sequenceWords[t.Lower] {
			out = append(out, tokenSignal(KindSequence, m.Name(), t, t.End, n.Raw))
		}
	}
	return out
}

// conjunctionWords are coordinating conjunctions joining clauses that
// carry no inherent ordering.
var conjunctionWords = map[string]bool{
	"and": true, "with": true, "plus": true, "alongside": true,
}

// ConjunctionMatcher finds coordinating conjunctions ("and", "with").
type ConjunctionMatcher struct{}

func (m *ConjunctionMatcher) Name() string  { return "conjunction" }
func (m *ConjunctionMatcher) Priority() int { return 2 }

func (m *ConjunctionMatcher) Scan(n tokenizer.Normalized) []Signal {
	var out []Signal
	for _, t := range n.Tokens {
		if conjunctionWords[t.Lower] {
			out = append(out, tokenSignal(KindConjunction, m.Name(), t, t.End, n.Raw))
		}
	}
	return out
}

// scopePatterns match phrases that bound the size or shape of the work:
// timelines, budget markers, and team-size markers. They run against the
// raw statement with the case-insensitive flag; lowercasing first would
// shift byte offsets for runes whose lowercase form has a different
// length.
var scopePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+\s+(?:day|week|month|hour|minute|year|sprint)s?\b`),
	regexp.MustCompile(`(?i)\$\d[\d,.]*|\bzero budget\b|\bno budget\b`),
	regexp.MustCompile(`(?i)\bsolo\b|\balone\b|\b\d+\s+(?:engineer|developer|person|people|team)s?\b`),
}

// ScopeMatcher finds quantifier and scope phrases (counts, timelines,
// budget and team-size markers).
type ScopeMatcher struct{}

func (m *ScopeMatcher) Name() string  { return "scope" }
func (m *ScopeMatcher) Priority() int { return 3 }

func (m *ScopeMatcher) Scan(n tokenizer.Normalized) []Signal {
	var out []Signal
	for _, p := range scopePatterns {
		for _, loc := range p.FindAllStringIndex(n.Raw, -1) {
			out = append(out, Signal{
				Kind:       KindScope,
				Start:      loc[0],
				End:        loc[1],
				TokenIndex: n.TokenNear(loc[0]),
				Text:       n.Raw[loc[0]:loc[1]],
				Matcher:    m.Name(),
			})
		}
	}
	return out
}

// containsScopeCue reports whether a context value looks like a scope
// phrase on its own (e.g. timeline "2 weeks", team "solo").
func containsScopeCue(v string) bool {
	for _, p := range scopePatterns {
		if p.MatchString(v) {
			return true
		}
	}
	return false
}

// vagueWords are quantifiers and placeholders that leave the scope of
// the work undefined.
var vagueWords = map[string]bool{
	"some": true, "few": true, "several": true, "various": true,
	"many": true, "stuff": true, "things": true, "something": true,
	"anything": true, "somehow": true, "etc": true,
}

// hedgeWords signal uncertainty about whether the work is needed at all.
var hedgeWords = map[string]bool{
	"maybe": true, "possibly": true, "might": true, "could": true,
	"approximately": true, "roughly": true, "probably": true,
}

// pronounWords are pronouns that are ambiguous when nothing before them
// could be their referent.
var pronounWords = map[string]bool{
	"it": true, "they": true, "them": true, "this": true, "that": true,
	"these": true, "those": true,
}

// fillerWords cannot act as a pronoun referent. A pronoun preceded only
// by fillers is flagged as unresolved.
var fillerWords = map[string]bool{
	"the": true, "a": true, "an": true, "to": true, "of": true,
	"in": true, "on": true, "for": true, "and": true, "with": true,
	"then": true, "please": true, "do": true, "make": true, "we": true,
	"should": true, "must": true, "first": true,
}

// AmbiguityMatcher finds vague quantifiers, hedging language, and
// unresolved pronouns.
type AmbiguityMatcher struct{}

func (m *AmbiguityMatcher) Name() string  { return "ambiguity" }
func (m *AmbiguityMatcher) Priority() int { return 4 }

func (m *AmbiguityMatcher) Scan(n tokenizer.Normalized) []Signal {
	var out []Signal
	for i, t := range n.Tokens {
		switch {
		case vagueWords[t.Lower], hedgeWords[t.Lower]:
			out = append(out, tokenSignal(KindAmbiguity, m.Name(), t, t.End, n.Raw))
		case pronounWords[t.Lower] && !hasReferentBefore(n.Tokens[:i]):
			out = append(out, tokenSignal(KindAmbiguity, m.Name(), t, t.End, n.Raw))
		}
	}
	return out
}

// hasReferentBefore reports whether any earlier token could serve as a
// pronoun referent (anything that is not a filler word).
func hasReferentBefore(tokens []tokenizer.Token) bool {
	for _, t := range tokens {
		if !fillerWords[t.Lower] {
			return true
		}
	}
	return false
}

func tokenSignal(kind Kind, matcher string, first tokenizer.Token, end int, raw string) Signal {
	return Signal{
		Kind:       kind,
		Start:      first.Start,
		End:        end,
		TokenIndex: first.Index,
		Text:       raw[first.Start:end],
		Matcher:    matcher,
	}
}
