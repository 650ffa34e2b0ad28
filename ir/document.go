package ir

// KernelInfo names the geometry kernel a document was authored against.
// The core never inspects Name/Version beyond non-emptiness. They are
// not part of any cache key: cache.PartBuildKey keys on the name and
// version the adapter reports in its Capabilities.
type KernelInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Tolerance carries the document's linear and angular tolerance budget.
// Both fields must be finite and non-negative (checked by
// validate.Document). It is not passed to the kernel adapter and is not
// part of the PartBuild cache key.
type Tolerance struct {
	Linear  float64 `json:"linear"`
	Angular float64 `json:"angular"`
}

// Context is the document-wide authoring environment: the length unit
// every bare-number Scalar is interpreted in, the target kernel, and the
// tolerance budget.
type Context struct {
	Units     LengthUnit `json:"units"`
	Kernel    KernelInfo `json:"kernel"`
	Tolerance Tolerance  `json:"tolerance"`
}

// Instance places one part into an assembly under a local name.
type Instance struct {
	ID     string `json:"id"`
	PartID string `json:"partId"`
}

// AssemblyRef mates one instance's connector against another's, forming
// the edges the out-of-scope mate solver later numerically resolves.
// The core validates only that both sides reference real
// instance/connector pairs.
type AssemblyRef struct {
	FromInstance  string `json:"fromInstance"`
	FromConnector string `json:"fromConnector"`
	ToInstance    string `json:"toInstance"`
	ToConnector   string `json:"toConnector"`
}

// Assembly groups part instances and the connector mates between them.
type Assembly struct {
	ID        string        `json:"id"`
	Instances []Instance    `json:"instances"`
	Refs      []AssemblyRef `json:"refs,omitempty"`
}

// Document is the root of TrueForm's intent tree: a fixed schema/version
// tag, the authoring Context, a list of Parts, optional Assemblies, and
// optional document-level Assertions.
type Document struct {
	ID         string      `json:"id"`
	Schema     string      `json:"schema"`
	IRVersion  int         `json:"irVersion"`
	Parts      []Part      `json:"parts"`
	Assemblies []Assembly  `json:"assemblies,omitempty"`
	Assertions []Assertion `json:"assertions,omitempty"`
	Context    Context     `json:"context"`
}

// PartByID returns the part with the given id, or (nil, false).
func (d *Document) PartByID(id string) (*Part, bool) {
	for i := range d.Parts {
		if d.Parts[i].ID == id {
			return &d.Parts[i], true
		}
	}
	return nil, false
}

// InstanceByID searches every assembly for an instance with the given
// id, returning the owning Assembly and Instance.
func (d *Document) InstanceByID(id string) (*Assembly, *Instance, bool) {
	for ai := range d.Assemblies {
		asm := &d.Assemblies[ai]
		for ii := range asm.Instances {
			if asm.Instances[ii].ID == id {
				return asm, &asm.Instances[ii], true
			}
		}
	}
	return nil, nil, false
}
