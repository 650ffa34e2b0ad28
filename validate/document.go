package validate

import (
	"math"

	"github.com/trueform/compiler/ir"
)

// Document validates schema/version tags, the authoring Context,
// per-part structural rules, and assembly references. It does not
// resolve any Scalar to a number — that is expr's job, invoked by the
// evaluator once Document has passed.
func Document(doc *ir.Document) error {
	if doc.Schema != ir.SchemaTag {
		return ir.NewError(ir.CodeValidationSchema, "unexpected schema tag", "referenceId", doc.Schema)
	}
	if doc.IRVersion != ir.IRVersionLatest {
		return ir.NewError(ir.CodeValidationSchema, "unsupported ir version")
	}
	if err := validateContext(doc.Context); err != nil {
		return err
	}

	partIDs := make(map[string]struct{}, len(doc.Parts))
	for i := range doc.Parts {
		p := &doc.Parts[i]
		if _, dup := partIDs[p.ID]; dup {
			return ir.NewError(ir.CodeValidationDuplicate, "duplicate part id", "referenceKind", "part", "referenceId", p.ID)
		}
		partIDs[p.ID] = struct{}{}
		if err := Part(p, ir.PolicyAllow); err != nil {
			return err
		}
	}

	if err := validateAssemblies(doc, partIDs); err != nil {
		return err
	}
	for _, a := range doc.Assertions {
		if a.ID == "" || a.Kind == "" {
			return ir.NewError(ir.CodeValidationShape, "document assertion missing id/kind")
		}
	}
	return nil
}

func validateContext(ctx ir.Context) error {
	if !ir.ValidLengthUnit(ctx.Units) {
		return ir.NewError(ir.CodeValidationContext, "context.units is not a recognized length unit", "referenceId", string(ctx.Units))
	}
	if ctx.Kernel.Name == "" || ctx.Kernel.Version == "" {
		return ir.NewError(ir.CodeValidationContext, "context.kernel name/version must be non-empty")
	}
	if !finiteNonNegative(ctx.Tolerance.Linear) || !finiteNonNegative(ctx.Tolerance.Angular) {
		return ir.NewError(ir.CodeValidationContext, "context.tolerance must be finite and non-negative")
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func validateAssemblies(doc *ir.Document, partIDs map[string]struct{}) error {
	for ai := range doc.Assemblies {
		asm := &doc.Assemblies[ai]
		instanceIDs := make(map[string]string, len(asm.Instances)) // instance id -> part id
		for _, inst := range asm.Instances {
			if _, ok := partIDs[inst.PartID]; !ok {
				return ir.NewError(ir.CodeValidationAssemblyRef, "instance references unknown part",
					"referenceKind", "part", "referenceId", inst.PartID)
			}
			if _, dup := instanceIDs[inst.ID]; dup {
				return ir.NewError(ir.CodeValidationDuplicate, "duplicate instance id", "referenceKind", "instance", "referenceId", inst.ID)
			}
			instanceIDs[inst.ID] = inst.PartID
		}
		for _, ref := range asm.Refs {
			if err := validateAssemblyRefSide(doc, instanceIDs, ref.FromInstance, ref.FromConnector); err != nil {
				return err
			}
			if err := validateAssemblyRefSide(doc, instanceIDs, ref.ToInstance, ref.ToConnector); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateAssemblyRefSide(doc *ir.Document, instanceIDs map[string]string, instanceID, connectorID string) error {
	partID, ok := instanceIDs[instanceID]
	if !ok {
		return ir.NewError(ir.CodeValidationAssemblyRef, "ref references unknown instance", "referenceKind", "instance", "referenceId", instanceID)
	}
	part, ok := doc.PartByID(partID)
	if !ok {
		return ir.NewError(ir.CodeValidationAssemblyRef, "instance's part not found", "referenceKind", "part", "referenceId", partID)
	}
	for _, c := range part.Connectors {
		if c.ID == connectorID {
			return nil
		}
	}
	return ir.NewError(ir.CodeValidationAssemblyRef, "ref references unknown connector",
		"referenceKind", "connector", "referenceId", connectorID)
}
