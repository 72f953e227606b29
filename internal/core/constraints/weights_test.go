package constraints

import "testing"

func TestWeightHierarchyOrdering(t *testing.T) {
	// The per-unit weight classes must stay strictly ordered: capacity
	// excess below a default sync rule, below a youth rule, below a
	// structural-soft violation, below a Hard-flagged rule, below the
	// penalty of a mandatory constraint.
	ordered := []struct {
		name   string
		weight float64
	}{
		{"capacity excess", WeightCapacityExcess},
		{"default institutional", WeightInstitutionalDefault},
		{"youth institutional", WeightInstitutionalYouth},
		{"structural soft", WeightStructuralSoft},
		{"hard institutional", WeightInstitutionalHard},
		{"mandatory", HardPenalty},
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].weight >= ordered[i].weight {
			t.Errorf("expected %s (%v) to weigh strictly less than %s (%v)",
				ordered[i-1].name, ordered[i-1].weight, ordered[i].name, ordered[i].weight)
		}
	}
}
