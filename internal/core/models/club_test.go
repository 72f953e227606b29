package models

import (
	"encoding/json"
	"testing"
)

func TestVenueDescriptor_UnmarshalJSON_BareString(t *testing.T) {
	var v VenueDescriptor
	if err := json.Unmarshal([]byte(`"Estadio Central"`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Default != "Estadio Central" {
		t.Errorf("expected Default %q, got %q", "Estadio Central", v.Default)
	}
	if len(v.ByClass) != 0 {
		t.Errorf("expected no per-class overrides, got %v", v.ByClass)
	}
}

func TestVenueDescriptor_UnmarshalJSON_FlatClassObject(t *testing.T) {
	var v VenueDescriptor
	raw := `{"SENIORS": "Estadio Central", "YOUTH": "Cancha Anexa", "default": "Estadio Central"}`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Default != "Estadio Central" {
		t.Errorf("expected Default %q, got %q", "Estadio Central", v.Default)
	}
	if got := v.ByClass[LeagueSeniors]; got != "Estadio Central" {
		t.Errorf("expected SENIORS venue %q, got %q", "Estadio Central", got)
	}
	if got := v.ByClass[LeagueYouth]; got != "Cancha Anexa" {
		t.Errorf("expected YOUTH venue %q, got %q", "Cancha Anexa", got)
	}
}

func TestVenueDescriptor_MarshalJSON_RoundTrip(t *testing.T) {
	original := VenueDescriptor{
		Default: "Estadio Central",
		ByClass: map[LeagueClass]string{LeagueYouth: "Cancha Anexa"},
	}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var roundTripped VenueDescriptor
	if err := json.Unmarshal(data, &roundTripped); err != nil {
		t.Fatalf("unexpected error unmarshalling %s: %v", data, err)
	}
	if roundTripped.Resolve(LeagueYouth) != "Cancha Anexa" || roundTripped.Resolve(LeagueSeniors) != "Estadio Central" {
		t.Errorf("round trip did not preserve venue resolution: %+v", roundTripped)
	}
}

func TestVenueDescriptor_MarshalJSON_DefaultOnlyIsBareString(t *testing.T) {
	data, err := json.Marshal(VenueDescriptor{Default: "Estadio Central"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"Estadio Central"` {
		t.Errorf("expected a bare string for a venue with no per-class overrides, got %s", data)
	}
}

func TestVenueDescriptor_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		venue VenueDescriptor
		class LeagueClass
		want  string
	}{
		{
			name:  "single default venue",
			venue: VenueDescriptor{Default: "Estadio Central"},
			class: LeagueSeniors,
			want:  "Estadio Central",
		},
		{
			name:  "per-class venue hit",
			venue: VenueDescriptor{ByClass: map[LeagueClass]string{LeagueYouth: "Cancha Anexa"}, Default: "Estadio Central"},
			class: LeagueYouth,
			want:  "Cancha Anexa",
		},
		{
			name:  "per-class miss falls back to default",
			venue: VenueDescriptor{ByClass: map[LeagueClass]string{LeagueYouth: "Cancha Anexa"}, Default: "Estadio Central"},
			class: LeagueWomen,
			want:  "Estadio Central",
		},
		{
			name:  "no venue configured at all",
			venue: VenueDescriptor{},
			class: LeagueSeniors,
			want:  "pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.venue.Resolve(tt.class); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLeagueClassOf(t *testing.T) {
	tests := []struct {
		id   string
		want LeagueClass
	}{
		{"SENIORS-A", LeagueSeniors},
		{"YOUTH-B", LeagueYouth},
		{"CHILDREN-C", LeagueChildren},
		{"WOMEN-SENIORS", LeagueWomen},
		{"women-juniors", LeagueWomen},
		{"UNKNOWN-X", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := LeagueClassOf(tt.id); got != tt.want {
				t.Errorf("LeagueClassOf(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestClub_Validate(t *testing.T) {
	if err := (&Club{Name: ""}).Validate(); err == nil {
		t.Error("expected error for empty club name")
	}
	if err := (&Club{Name: "River"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestClub_IsBye(t *testing.T) {
	if !(&Club{Name: "BYE_SENIORS-A_1"}).IsBye() {
		t.Error("expected BYE_-prefixed club to be a bye")
	}
	if (&Club{Name: "River"}).IsBye() {
		t.Error("expected real club not to be a bye")
	}
	var nilClub *Club
	if !nilClub.IsBye() {
		t.Error("expected nil club to report as a bye")
	}
}
