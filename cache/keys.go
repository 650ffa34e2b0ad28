package cache

import (
	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/kernel"
)

// partBuildKeyInput is the exact, exhaustive set of inputs that
// determine a part build's output: the feature list, parameters,
// overrides, document units, and the backend's name+version (a build
// against a different kernel version is a different artifact). Field
// order here does not affect the key: CanonicalJSON sorts object keys,
// so it is the JSON tag names that are part of the canonical encoding,
// and renaming one silently invalidates every existing cache entry.
type partBuildKeyInput struct {
	Part      *ir.Part      `json:"part"`
	DocUnits  ir.LengthUnit `json:"docUnits"`
	Overrides ir.Overrides  `json:"overrides,omitempty"`
	Backend   string        `json:"backend"`
}

// PartBuildKey derives the content-address for building part under
// docUnits/overrides against the named backend.
func PartBuildKey(part *ir.Part, docUnits ir.LengthUnit, overrides ir.Overrides, caps kernel.Capabilities) (uint64, error) {
	return Hash64(partBuildKeyInput{
		Part:      part,
		DocUnits:  docUnits,
		Overrides: overrides,
		Backend:   caps.Name + "@" + caps.Version,
	})
}

type meshKeyInput struct {
	ObjectID string             `json:"objectId"`
	Opts     kernel.MeshOptions `json:"opts"`
}

// MeshKey derives the content-address for tessellating obj under opts.
func MeshKey(obj kernel.KernelObject, opts kernel.MeshOptions) (uint64, error) {
	return Hash64(meshKeyInput{ObjectID: obj.ID, Opts: opts})
}

type exportKeyInput struct {
	ObjectIDs []string `json:"objectIds"`
	Format    string   `json:"format"`
	Opts      any      `json:"opts"`
}

// ExportStepKey derives the content-address for a STEP export of objs
// under opts.
func ExportStepKey(objs []kernel.KernelObject, opts kernel.StepExportOptions) (uint64, error) {
	return Hash64(exportKeyInput{ObjectIDs: objectIDs(objs), Format: "step", Opts: opts})
}

// ExportStlKey derives the content-address for an STL export of objs
// under opts.
func ExportStlKey(objs []kernel.KernelObject, opts kernel.StlExportOptions) (uint64, error) {
	return Hash64(exportKeyInput{ObjectIDs: objectIDs(objs), Format: "stl", Opts: opts})
}

func objectIDs(objs []kernel.KernelObject) []string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.ID
	}
	return out
}
