package build

import (
	"github.com/trueform/compiler/cache"
	"github.com/trueform/compiler/ir"
)

// featureInputHashInput is everything that determines a feature's
// resolved inputs independent of its place in the schedule: its own
// definition (including every Scalar expression it carries) and the
// document-wide units/overrides those scalars resolve against. It
// deliberately excludes dependency object ids — a changed dependency
// is caught by evaluator.DirtyClosure propagating the dependency's own
// hash mismatch downstream through the graph, not by this feature's
// hash changing too.
type featureInputHashInput struct {
	Feature   *ir.Feature   `json:"feature"`
	DocUnits  ir.LengthUnit `json:"docUnits"`
	Overrides ir.Overrides  `json:"overrides,omitempty"`
}

// featureInputHashes computes the per-feature input hash recorded
// alongside a build session, for every feature in part.
func featureInputHashes(part *ir.Part, docUnits ir.LengthUnit, overrides ir.Overrides) (map[string]uint64, error) {
	out := make(map[string]uint64, len(part.Features))
	for i := range part.Features {
		f := &part.Features[i]
		h, err := cache.Hash64(featureInputHashInput{Feature: f, DocUnits: docUnits, Overrides: overrides})
		if err != nil {
			return nil, err
		}
		out[f.ID] = h
	}
	return out, nil
}
