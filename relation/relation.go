// Package relation infers ordering between components: dependency and
// parallelism edges from the cues that separate adjacent components,
// the critical path through the dependency subgraph, and the groups of
// components that can proceed independently.
package relation

import (
	"errors"
	"fmt"

	"github.com/hummbl-dev/hummbl-prototype/component"
	"github.com/hummbl-dev/hummbl-prototype/signal"
)

// Kind classifies a relationship.
type Kind string

const (
	KindDependsOn    Kind = "depends_on"
	KindParallelWith Kind = "parallel_with"
)

// Edge confidence weights. Sequence connectives are a stronger ordering
// cue than coordinating conjunctions.
const (
	dependsOnWeight    = 0.9
	parallelWithWeight = 0.7
)

// ErrCycle and ErrContradiction are returned by the defensive invariant
// checks. Edges only ever point forward in text order and each adjacent
// pair yields at most one edge, so seeing either indicates a resolver
// defect rather than bad input.
var (
	ErrCycle         = errors.New("relation: dependency cycle detected")
	ErrContradiction = errors.New("relation: contradictory edges between pair")
)

// Relationship is a directed edge between two components.
type Relationship struct {
	FromID   string  `json:"from"`
	ToID     string  `json:"to"`
	Kind     Kind    `json:"kind"`
	Weight   float64 `json:"weight"`
	SignalID int     `json:"signal_id"` // cue that triggered the edge
}

// Result holds everything the resolver derives from the component set.
type Result struct {
	Relationships  []Relationship
	CriticalPath   []string
	ParallelGroups [][]string
	// DependencyDepth is the edge count of the longest dependency chain.
	DependencyDepth int
}

// Resolve infers edges between components adjacent in text order: a
// sequence cue between them yields depends_on (earlier -> later), a
// conjunction with no sequence cue yields parallel_with, and no cue at
// all yields no edge. Constraint components are synthetic and take part
// in no edges.
func Resolve(comps []component.Component, signals []signal.Signal) (*Result, error) {
	textComps := textOrdered(comps)

	res := &Result{}
	for i := 0; i+1 < len(textComps); i++ {
		a, b := textComps[i], textComps[i+1]
		seq, conj := cuesBetween(signals, a.Span.End, b.Span.Start)
		switch {
		case seq != nil:
			res.Relationships = append(res.Relationships, Relationship{
				FromID:   a.ID,
				ToID:     b.ID,
				Kind:     KindDependsOn,
				Weight:   dependsOnWeight,
				SignalID: seq.ID,
			})
		case conj != nil:
			res.Relationships = append(res.Relationships, Relationship{
				FromID:   a.ID,
				ToID:     b.ID,
				Kind:     KindParallelWith,
				Weight:   parallelWithWeight,
				SignalID: conj.ID,
			})
		}
	}

	if err := checkInvariants(res.Relationships); err != nil {
		return nil, err
	}

	res.CriticalPath, res.DependencyDepth = criticalPath(textComps, res.Relationships)
	res.ParallelGroups = parallelGroups(comps, res.Relationships, res.CriticalPath, res.DependencyDepth)
	return res, nil
}

// textOrdered returns the non-constraint components. Builder order is
// text order, so no re-sorting is needed.
func textOrdered(comps []component.Component) []component.Component {
	out := make([]component.Component, 0, len(comps))
	for _, c := range comps {
		if c.Type != component.TypeConstraint {
			out = append(out, c)
		}
	}
	return out
}

// cuesBetween returns the first sequence and first conjunction signal
// whose span lies in the byte range (from, to).
func cuesBetween(signals []signal.Signal, from, to int) (seq, conj *signal.Signal) {
	for i := range signals {
		s := &signals[i]
		if s.Synthetic || s.Start < from || s.End > to {
			continue
		}
		switch s.Kind {
		case signal.KindSequence:
			if seq == nil {
				seq = s
			}
		case signal.KindConjunction:
			if conj == nil {
				conj = s
			}
		}
	}
	return seq, conj
}

// checkInvariants verifies that the dependency subgraph is acyclic and
// that no component pair carries contradictory edges. Both hold by
// construction; this is a defensive check, not an expected path.
func checkInvariants(rels []Relationship) error {
	kinds := make(map[string]Kind, len(rels))
	adj := make(map[string][]string)
	for _, r := range rels {
		key := r.FromID + "->" + r.ToID
		if prev, ok := kinds[key]; ok && prev != r.Kind {
			return fmt.Errorf("%w: %s and %s", ErrContradiction, r.FromID, r.ToID)
		}
		kinds[key] = r.Kind
		if r.Kind == KindDependsOn {
			adj[r.FromID] = append(adj[r.FromID], r.ToID)
		}
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int)
	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("%w: via %s", ErrCycle, id)
		case done:
			return nil
		}
		state[id] = visiting
		for _, next := range adj[id] {
			if err := visit(next); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}
	for _, r := range rels {
		if r.Kind != KindDependsOn {
			continue
		}
		if err := visit(r.FromID); err != nil {
			return err
		}
	}
	return nil
}

// criticalPath finds the longest chain by edge count through the
// dependency subgraph, breaking ties toward the earliest component.
// With no dependency edges the path is the earliest component alone.
func criticalPath(textComps []component.Component, rels []Relationship) ([]string, int) {
	if len(textComps) == 0 {
		return nil, 0
	}

	index := make(map[string]int, len(textComps))
	for i, c := range textComps {
		index[c.ID] = i
	}

	// Incoming dependency edges per component. Edges always point
	// forward in text order, so a single pass in that order suffices.
	incoming := make(map[string][]string)
	for _, r := range rels {
		if r.Kind == KindDependsOn {
			incoming[r.ToID] = append(incoming[r.ToID], r.FromID)
		}
	}

	length := make([]int, len(textComps)) // chain length in edges ending at i
	prev := make([]int, len(textComps))
	for i := range prev {
		prev[i] = -1
	}
	for i, c := range textComps {
		for _, from := range incoming[c.ID] {
			j := index[from]
			if length[j]+1 > length[i] || (length[j]+1 == length[i] && (prev[i] == -1 || j < prev[i])) {
				length[i] = length[j] + 1
				prev[i] = j
			}
		}
	}

	best := 0
	for i := range textComps {
		if length[i] > length[best] {
			best = i
		}
	}

	var path []string
	for i := best; i >= 0; i = prev[i] {
		path = append(path, textComps[i].ID)
	}
	// Reverse into chain order.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, length[best]
}

// parallelGroups finds groups of components with no dependency ordering
// among them. Components placed on the critical path by a dependency
// edge are excluded; a path of length one was placed without one and
// stays eligible. Constraint components are synthetic and never
// grouped. Singleton groups are not reported.
func parallelGroups(comps []component.Component, rels []Relationship, path []string, depth int) [][]string {
	excluded := make(map[string]bool)
	if depth > 0 {
		for _, id := range path {
			excluded[id] = true
		}
	}

	dep := make(map[string]bool)
	for _, r := range rels {
		if r.Kind == KindDependsOn {
			dep[r.FromID+"->"+r.ToID] = true
		}
	}
	related := func(a, b string) bool {
		return dep[a+"->"+b] || dep[b+"->"+a]
	}

	var groups [][]string
	used := make(map[string]bool)
	for _, c := range comps {
		if c.Type == component.TypeConstraint || excluded[c.ID] || used[c.ID] {
			continue
		}
		group := []string{c.ID}
		used[c.ID] = true
		for _, other := range comps {
			if other.Type == component.TypeConstraint || excluded[other.ID] || used[other.ID] {
				continue
			}
			ok := true
			for _, member := range group {
				if related(member, other.ID) {
					ok = false
					break
				}
			}
			if ok {
				group = append(group, other.ID)
				used[other.ID] = true
			}
		}
		if len(group) > 1 {
			groups = append(groups, group)
		}
	}
	return groups
}
