package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// LeagueClass is the coarse category tag used to resolve a club's venue
// for a given tournament. Tournament IDs are expected to carry one of
// these as a prefix, e.g. "SENIORS-A", "YOUTH-B".
type LeagueClass string

const (
	LeagueSeniors  LeagueClass = "SENIORS"
	LeagueYouth    LeagueClass = "YOUTH"
	LeagueChildren LeagueClass = "CHILDREN"
	LeagueWomen    LeagueClass = "WOMEN"
)

// LeagueClassOf derives the coarse league class from a tournament ID by
// matching its longest known prefix. Unknown prefixes resolve to the
// empty LeagueClass, which VenueDescriptor.Resolve treats as "default".
func LeagueClassOf(tournamentID string) LeagueClass {
	upper := strings.ToUpper(tournamentID)
	switch {
	case strings.HasPrefix(upper, string(LeagueWomen)):
		return LeagueWomen
	case strings.HasPrefix(upper, string(LeagueSeniors)):
		return LeagueSeniors
	case strings.HasPrefix(upper, string(LeagueYouth)):
		return LeagueYouth
	case strings.HasPrefix(upper, string(LeagueChildren)):
		return LeagueChildren
	default:
		return ""
	}
}

// VenueDescriptor resolves to a venue name for a given league class. A
// club that plays every category at the same ground sets Default only; a
// club that splits its categories across grounds fills ByClass.
type VenueDescriptor struct {
	Default string                 `json:"default,omitempty"`
	ByClass map[LeagueClass]string `json:"by_class,omitempty"`
}

// MarshalJSON renders a venue with no per-class overrides as a bare
// string, and a venue that splits by league class as a flat object with
// one key per class plus an optional "default" — the wire shape
// documented for clubs, not the internal ByClass/Default struct layout.
func (v VenueDescriptor) MarshalJSON() ([]byte, error) {
	if len(v.ByClass) == 0 {
		return json.Marshal(v.Default)
	}
	flat := make(map[string]string, len(v.ByClass)+1)
	for class, name := range v.ByClass {
		flat[string(class)] = name
	}
	if v.Default != "" {
		flat["default"] = v.Default
	}
	return json.Marshal(flat)
}

// UnmarshalJSON accepts either a bare string (a single venue used for
// every category) or a flat object keyed by league class with an
// optional "default" fallback, e.g. {"SENIORS": "Estadio Central",
// "YOUTH": "Cancha Anexa", "default": "Estadio Central"}.
func (v *VenueDescriptor) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		v.Default = name
		v.ByClass = nil
		return nil
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("venue: expected a string or a class->venue object: %w", err)
	}
	v.Default = ""
	v.ByClass = nil
	for key, value := range flat {
		if strings.EqualFold(key, "default") {
			v.Default = value
			continue
		}
		if v.ByClass == nil {
			v.ByClass = make(map[LeagueClass]string, len(flat))
		}
		v.ByClass[LeagueClass(strings.ToUpper(key))] = value
	}
	return nil
}

// Resolve returns the venue name for the given league class, falling back
// to Default, then to "pending" if nothing is configured.
func (v VenueDescriptor) Resolve(class LeagueClass) string {
	if v.ByClass != nil {
		if name, ok := v.ByClass[class]; ok && name != "" {
			return name
		}
	}
	if v.Default != "" {
		return v.Default
	}
	return "pending"
}

// Club is a federation member fielding teams across one or more
// tournaments. Locality groups clubs that share a neighbourhood for
// shared-venue capacity constraints (e.g. several clubs playing at
// grounds within the same few blocks).
type Club struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Locality  string          `json:"locality,omitempty"`
	Venue     VenueDescriptor `json:"venue"`
	OwnsVenue bool            `json:"owns_venue"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Validate ensures the club record is well formed.
func (c *Club) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("club name is required")
	}
	return nil
}

// IsBye reports whether this club is a synthetic bye participant
// generated to pad an odd-sized tournament.
func (c *Club) IsBye() bool {
	return c == nil || strings.HasPrefix(c.Name, "BYE_")
}
