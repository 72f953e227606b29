package schedule

// Seed builds an initial feasible Grid using the circle method: one
// participant is held fixed and the rest rotate one position per date,
// pairing opposite ends of the remaining sequence. This is the same
// rotation the round-robin draw generator it is adapted from uses,
// generalized to run once per tournament against the shared horizon and
// to alternate home/away across the rotation cycle instead of per-match.
// A tournament whose ActiveLimit falls short of its Dates (a small
// league given more dates than it needs) stops rotating once it reaches
// ActiveLimit, leaving the remaining dates empty instead of spreading the
// padded bye evenly across the whole window.
func Seed(sized *Sized) *Grid {
	g := NewGrid(sized)
	for _, st := range sized.Tournaments {
		ts := g.Tournaments[st.ID]
		seedTournament(ts, st)
	}
	return g
}

func seedTournament(ts *TournamentSchedule, st SizedTournament) {
	n := len(st.Participants)
	if n < 2 {
		return
	}
	rotation := append([]string(nil), st.Participants...)
	cycles := n - 1

	limit := len(ts.Rounds)
	if st.ActiveLimit < limit {
		limit = st.ActiveLimit
	}
	for d := 0; d < limit; d++ {
		cycle := d % cycles
		rotated := rotate(rotation, cycle)
		var pairings []Pairing
		for i := 0; i < n/2; i++ {
			a, b := rotated[i], rotated[n-1-i]
			home, away := a, b
			// Alternate which side hosts across successive cycles so a
			// single pairing doesn't always sit on the same side, and
			// flip again on the second leg of a double round-robin.
			leg := d / cycles
			if (i+cycle)%2 == 1 {
				home, away = away, home
			}
			if leg%2 == 1 {
				home, away = away, home
			}
			pairings = append(pairings, Pairing{Home: home, Away: away})
		}
		ts.Rounds[d] = Round{Pairings: pairings}
	}
}

// rotate returns participants with the first element fixed and the rest
// rotated left by offset positions, the classic circle-method step.
func rotate(participants []string, offset int) []string {
	n := len(participants)
	out := make([]string, n)
	out[0] = participants[0]
	for i := 1; i < n; i++ {
		out[i] = participants[1+(i-1+offset)%(n-1)]
	}
	return out
}
