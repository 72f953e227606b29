package schedule

// LocalityCap bounds how many clubs sharing a locality may host on the
// same date, for senior tournaments only.
type LocalityCap struct {
	Locality string `json:"locality"`
	Limit    int    `json:"limit"`
}

// ExclusionPair forbids two clubs from both hosting on the same date
// (e.g. a police-sensitive derby pairing that strains the same unit).
type ExclusionPair struct {
	ClubA string `json:"club_a"`
	ClubB string `json:"club_b"`
}

// Config carries every tunable the engine's design notes call out as
// configuration rather than hand-listed code: per-tournament horizon
// caps, shared-venue locality limits, and police-exclusion pairs.
type Config struct {
	// MaxDatesPerTournament clips a computed double or single round-robin
	// date count (FixedDates counts are not clipped); zero means the
	// DefaultConfig value.
	MaxDatesPerTournament int `json:"max_dates_per_tournament"`
	// MaxVariables bounds the total number of play/home decision
	// variables the sizing pass will accept before returning
	// ErrModelTooLarge.
	MaxVariables int `json:"max_variables"`
	// ByeClusterThreshold is the pre-padding participant-count ceiling
	// below which a tournament clusters its padded bye at the end of its
	// window instead of spreading it evenly; zero means the default
	// applied in DefaultConfig.
	ByeClusterThreshold int `json:"bye_cluster_threshold"`
	// LocalityCaps lists shared-venue capacity limits, senior
	// tournaments only. When empty and DefaultLocalityCap is set, a cap
	// is derived automatically for every locality shared by two or more
	// clubs in the problem.
	LocalityCaps []LocalityCap `json:"locality_caps"`
	// DefaultLocalityCap is the per-locality limit LogisticalConstraints
	// derives automatically when LocalityCaps is empty; zero disables
	// the automatic derivation.
	DefaultLocalityCap int `json:"default_locality_cap"`
	// Exclusions lists pairwise club exclusions, senior tournaments only.
	Exclusions []ExclusionPair `json:"exclusions"`
}

// DefaultConfig mirrors the bounds the original fixture generator used in
// practice: a 26-date cap per tournament, a bye-cluster threshold of 14
// participants, and a locality cap of two simultaneous home fixtures
// applied automatically to any locality shared by two or more clubs
// (DefaultLocalityCap), plus a 250,000 decision-variable budget — with no
// explicit locality caps or exclusions of its own.
func DefaultConfig() Config {
	return Config{
		MaxDatesPerTournament: 26,
		MaxVariables:          250_000,
		ByeClusterThreshold:   14,
		DefaultLocalityCap:    2,
	}
}
