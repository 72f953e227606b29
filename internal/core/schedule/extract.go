package schedule

import "github.com/federacion/fixture-scheduler/internal/core/models"

// Extract reads the best incumbent grid into the wire-level Fixture,
// dropping bye pairings and resolving each match's venue through the
// home club's VenueDescriptor for the tournament's league class.
func Extract(g *Grid, p *models.Problem) models.Fixture {
	clubsByName := p.ClubsByName()
	tournamentsByID := p.TournamentsByID()

	var fixture models.Fixture
	for _, t := range p.Tournaments {
		ts, ok := g.Tournaments[t.ID]
		if !ok {
			continue
		}
		class := tournamentsByID[t.ID].LeagueClass()
		for date, round := range ts.Rounds {
			var matches []models.FixtureMatch
			for _, pair := range round.Pairings {
				if IsBye(pair.Home) || IsBye(pair.Away) {
					continue
				}
				venue := ""
				if club, ok := clubsByName[pair.Home]; ok {
					venue = club.Venue.Resolve(class)
				}
				matches = append(matches, models.FixtureMatch{
					Home:  pair.Home,
					Away:  pair.Away,
					Venue: venue,
				})
			}
			if len(matches) == 0 {
				continue
			}
			fixture = append(fixture, models.FixtureEntry{
				Date:       date,
				Tournament: t.ID,
				Matches:    matches,
			})
		}
	}
	return fixture
}
