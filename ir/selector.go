package ir

import "strings"

// SelectorKind discriminates the Selector sum type: a typed query over
// faces/edges/solids, or an indirection through a named output.
type SelectorKind string

const (
	SelectorFace  SelectorKind = "face"
	SelectorEdge  SelectorKind = "edge"
	SelectorSolid SelectorKind = "solid"
	SelectorNamed SelectorKind = "named"
)

// PredicateKind is the closed set of selector predicates.
type PredicateKind string

const (
	PredNormal    PredicateKind = "normal"
	PredPlanar    PredicateKind = "planar"
	PredCreatedBy PredicateKind = "createdBy"
	PredRole      PredicateKind = "role"
)

// Predicate narrows a typed selector's candidate set. Exactly one of
// Axis/FeatureID/Role is meaningful, selected by Kind.
type Predicate struct {
	Kind PredicateKind `json:"kind"`

	Axis      Axis   `json:"axis,omitempty"`      // PredNormal
	FeatureID string `json:"featureId,omitempty"` // PredCreatedBy
	Role      string `json:"role,omitempty"`      // PredRole
	// Planar carries no payload; its presence in Predicates is the signal.
}

// RankKind is the closed set of selector rank rules.
type RankKind string

const (
	RankMaxArea    RankKind = "maxArea"
	RankMinZ       RankKind = "minZ"
	RankMaxZ       RankKind = "maxZ"
	RankClosestTo  RankKind = "closestTo"
)

// Rank is one ordering rule in a selector's rank list. Rules are applied
// in order as stable sorts, so the *last* rule dominates as the primary
// sort key (selector.Resolve documents this precisely).
type Rank struct {
	Kind     RankKind  `json:"kind"`
	ClosestTo *Selector `json:"closestTo,omitempty"` // RankClosestTo; recursive
}

// Selector is TrueForm's declarative geometry query:
//
//	selector.face | selector.edge | selector.solid (predicates, rank)
//	| selector.named(name)
type Selector struct {
	Kind SelectorKind `json:"kind"`

	// Typed selector (face/edge/solid).
	Predicates []Predicate `json:"predicates,omitempty"`
	Rank       []Rank      `json:"rank,omitempty"`

	// Named selector.
	Name string `json:"name,omitempty"`
}

// IsTyped reports whether s is a face/edge/solid selector (as opposed to
// a named indirection).
func (s *Selector) IsTyped() bool {
	switch s.Kind {
	case SelectorFace, SelectorEdge, SelectorSolid:
		return true
	default:
		return false
	}
}

// CreatedByID returns the feature id named by a top-level createdBy
// predicate on s, if any. Used by the anchoring check (Anchored) and by
// depgraph's selector dependency inference; it intentionally does not recurse into
// closestTo sub-selectors (callers walk those separately via Walk).
func (s *Selector) CreatedByID() (string, bool) {
	for _, p := range s.Predicates {
		if p.Kind == PredCreatedBy {
			return p.FeatureID, true
		}
	}
	return "", false
}

// Walk calls fn for s and, recursively, for every nested Selector
// reachable through rank.closestTo. It is the single traversal used by
// both the anchoring check (validate) and dependency inference
// (depgraph), so the two always agree on what "reachable" means.
func (s *Selector) Walk(fn func(*Selector)) {
	if s == nil {
		return
	}
	fn(s)
	for _, r := range s.Rank {
		if r.Kind == RankClosestTo && r.ClosestTo != nil {
			r.ClosestTo.Walk(fn)
		}
	}
}

// sentinelNamePrefixes are the implicit named-selector references the
// graph builder allows without a backing feature output: they carry no
// dependency edge (spec.md §4.3 rule 5 / §4.4 rule 1).
var sentinelNamePrefixes = []string{"face:", "edge:", "solid:", "surface:"}

// IsSentinelSelectorName reports whether name is one of the recognized
// implicit sentinel references rather than an actual feature output
// name.
func IsSentinelSelectorName(name string) bool {
	for _, p := range sentinelNamePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// SplitSelectorNames splits a named selector's Name on commas and
// newlines, trims surrounding whitespace, and drops empty segments. A
// Name may carry comma/newline-separated multi-ref syntax which
// resolves to the first match found, not their union.
func SplitSelectorNames(name string) []string {
	fields := strings.FieldsFunc(name, func(r rune) bool { return r == ',' || r == '\n' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Anchored reports whether s is reachable to a concrete feature id: a
// createdBy predicate anywhere in its Walk closure, or a Named selector
// anywhere in its Walk closure (named outputs are always resolvable
// against the accumulated outputs map, so they count as anchors).
func (s *Selector) Anchored() bool {
	anchored := false
	s.Walk(func(sel *Selector) {
		if sel.Kind == SelectorNamed {
			anchored = true
			return
		}
		if _, ok := sel.CreatedByID(); ok {
			anchored = true
		}
	})
	return anchored
}
