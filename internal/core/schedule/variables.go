package schedule

// Pairing is one concrete assignment of the plays[d,t,i,j] / isHome[d,t,p]
// variable pair: on some date, within some tournament, Home hosts Away.
// A bye round for a participant is represented by pairing it against a
// synthetic "BYE_*" participant.
type Pairing struct {
	Home string
	Away string
}

// Round is every pairing scheduled on one date within one tournament.
// Under the structural at-most-one-per-date rule every real participant
// appears in at most one Pairing per Round.
type Round struct {
	Pairings []Pairing
}

// TournamentSchedule is the full plays/isHome assignment for one
// tournament across its date window: Rounds[d] holds date d's pairings,
// for d in [0, Dates).
type TournamentSchedule struct {
	TournamentID string
	Rounds       []Round
}

// Grid is the complete decision-variable assignment across every
// tournament, keyed by tournament ID, sharing the problem's global date
// Horizon. A tournament with a narrower window than Horizon simply has a
// shorter Rounds slice: later dates have no entry for it, realizing
// "skip, don't default to zero" for variables outside a tournament's
// window.
type Grid struct {
	Horizon     int
	Tournaments map[string]*TournamentSchedule
}

// NewGrid allocates an empty grid with one empty TournamentSchedule per
// sized tournament.
func NewGrid(sized *Sized) *Grid {
	g := &Grid{
		Horizon:     sized.Horizon,
		Tournaments: make(map[string]*TournamentSchedule, len(sized.Tournaments)),
	}
	for _, st := range sized.Tournaments {
		g.Tournaments[st.ID] = &TournamentSchedule{
			TournamentID: st.ID,
			Rounds:       make([]Round, st.Dates),
		}
	}
	return g
}

// PlayValue reports the value of plays[date, tournament, home, away]: true
// if home is recorded as hosting away on that date in that tournament.
func (g *Grid) PlayValue(date int, tournamentID, home, away string) bool {
	ts, ok := g.Tournaments[tournamentID]
	if !ok || date < 0 || date >= len(ts.Rounds) {
		return false
	}
	for _, pair := range ts.Rounds[date].Pairings {
		if pair.Home == home && pair.Away == away {
			return true
		}
	}
	return false
}

// HomeValue reports the value of isHome[date, tournament, participant]:
// true if participant hosts anyone on that date in that tournament.
func (g *Grid) HomeValue(date int, tournamentID, participant string) bool {
	ts, ok := g.Tournaments[tournamentID]
	if !ok || date < 0 || date >= len(ts.Rounds) {
		return false
	}
	for _, pair := range ts.Rounds[date].Pairings {
		if pair.Home == participant {
			return true
		}
	}
	return false
}

// PlaysOn reports whether participant appears on either side of any
// pairing on the given date within the given tournament, and if so
// returns the opponent and whether participant was the home side.
func (g *Grid) PlaysOn(date int, tournamentID, participant string) (opponent string, home bool, found bool) {
	ts, ok := g.Tournaments[tournamentID]
	if !ok || date < 0 || date >= len(ts.Rounds) {
		return "", false, false
	}
	for _, pair := range ts.Rounds[date].Pairings {
		if pair.Home == participant {
			return pair.Away, true, true
		}
		if pair.Away == participant {
			return pair.Home, false, true
		}
	}
	return "", false, false
}

// Clone deep-copies the grid so a local search neighbor move can be tried
// and rolled back without mutating the incumbent.
func (g *Grid) Clone() *Grid {
	out := &Grid{Horizon: g.Horizon, Tournaments: make(map[string]*TournamentSchedule, len(g.Tournaments))}
	for id, ts := range g.Tournaments {
		rounds := make([]Round, len(ts.Rounds))
		for i, r := range ts.Rounds {
			pairings := make([]Pairing, len(r.Pairings))
			copy(pairings, r.Pairings)
			rounds[i] = Round{Pairings: pairings}
		}
		out.Tournaments[id] = &TournamentSchedule{TournamentID: id, Rounds: rounds}
	}
	return out
}
