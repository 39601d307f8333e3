package core

import (
	"encoding/json"
	"regexp"
	"testing"
)

func TestRandomizeColors(t *testing.T) {
	participants := ParticipantSlice(40)
	RandomizeColors(participants, 7)

	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	colors := make(map[string]bool)
	for _, p := range participants {
		if !hex.MatchString(p.Color) {
			t.Fatalf("%q is not a hex color", p.Color)
		}
		colors[p.Color] = true
	}
	if len(colors) != 40 {
		t.Fatal("Two participants got the same color")
	}

	again := ParticipantSlice(40)
	RandomizeColors(again, 7)
	for i, p := range again {
		if p.Color != participants[i].Color {
			t.Fatal("The same seed did not produce the same colors")
		}
	}
}

func TestParticipantClone(t *testing.T) {
	p := NewParticipant(3, "Team C")
	if p.Color != DefaultColor {
		t.Fatal("A new participant does not have the default color")
	}

	p.GoalsFor = 5
	p.GoalsAgainst = 7
	if p.GeneralAverage() != -2 {
		t.Fatal("The general average is not goals for minus goals against")
	}

	clone := p.Clone()
	clone.Points = 9
	if p.Points != 0 || clone.GoalsFor != 5 {
		t.Fatal("The clone is not an independent copy")
	}
}

func TestParticipantFieldNames(t *testing.T) {
	p := NewParticipant(1, "Team A")
	p.GoalsFor = 4

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	eq1 := decoded["name"] == "Team A" && decoded["goalsFor"] == float64(4)
	eq2 := len(decoded) == 10
	if !eq1 || !eq2 {
		t.Fatalf("Unexpected encoded fields %v", decoded)
	}
}
