package constraints

// Weight classes mirror the hierarchy the original fixture generator's
// reward/penalty terms used (peso*1_000_000 for institutional rules,
// excess*50 for the locality cap), scaled so that, unit for unit, each
// class weighs strictly more than the one before it: capacity excess <
// default rule < youth rule < structural-soft violation < Hard-flagged
// institutional rule < HardPenalty.
const (
	// WeightStructuralSoft applies to round-robin-shape violations that
	// are only softly discouraged (e.g. leg separation).
	WeightStructuralSoft = 1_000_000.0
	// WeightInstitutionalHard applies to Hard-flagged rules touching a
	// senior tournament.
	WeightInstitutionalHard = 5_000_000.0
	// WeightInstitutionalYouth applies to rules touching youth/children
	// tournaments.
	WeightInstitutionalYouth = 50_000.0
	// WeightInstitutionalDefault applies to every other rule.
	WeightInstitutionalDefault = 5_000.0
	// WeightCapacityExcess applies per unit of locality-cap overflow.
	WeightCapacityExcess = 50.0

	// HardPenalty is the per-violation penalty for constraints this
	// engine treats as structurally mandatory (round-robin shape,
	// alternation, pairwise exclusion): high enough that the local
	// search will never prefer a structural violation to any combination
	// of soft penalties, without special-casing "infeasible" moves.
	HardPenalty = 1_000_000_000.0
)
