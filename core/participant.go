package core

import (
	"fmt"
	"math/rand"
)

const DefaultColor = "#2196f3"

// A Participant is a team (or a single player) taking
// part in a tournament.
//
// The counters are aggregates over the match results.
// They are owned by ComputeStandings which recomputes all of
// them from scratch on every pass.
type Participant struct {
	// Unique positive identifier
	Id int `json:"id"`
	// Display name, unique within a tournament (case-insensitive)
	Name string `json:"name"`
	// Display color as hex string
	Color string `json:"color"`

	MatchesPlayed int `json:"matchesPlayed"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	GoalsFor      int `json:"goalsFor"`
	GoalsAgainst  int `json:"goalsAgainst"`
	Points        int `json:"points"`
}

// Returns goals for minus goals against
func (p *Participant) GeneralAverage() int {
	return p.GoalsFor - p.GoalsAgainst
}

// Returns a copy of the participant
func (p *Participant) Clone() *Participant {
	clone := *p
	return &clone
}

func (p *Participant) resetCounters() {
	p.MatchesPlayed = 0
	p.Wins = 0
	p.Draws = 0
	p.Losses = 0
	p.GoalsFor = 0
	p.GoalsAgainst = 0
	p.Points = 0
}

func (p *Participant) applyMetrics(m *MatchMetrics) {
	p.MatchesPlayed = m.NumMatches
	p.Wins = m.Wins
	p.Draws = m.Draws
	p.Losses = m.Losses
	p.GoalsFor = m.GoalsFor
	p.GoalsAgainst = m.GoalsAgainst
	p.Points = m.Points
}

func (p *Participant) String() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.Id)
}

func NewParticipant(id int, name string) *Participant {
	return &Participant{Id: id, Name: name, Color: DefaultColor}
}

// Returns the ids of the participants in order
func participantIds(participants []*Participant) []int {
	ids := make([]int, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.Id)
	}
	return ids
}

// Returns a config error when an id is not positive or
// appears twice
func validateIds(ids []int) error {
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id < 1 || seen[id] {
			return configError("participants", ErrInvalidParticipantId)
		}
		seen[id] = true
	}
	return nil
}

// Gives every participant a random color that no other
// participant in the slice has.
func RandomizeColors(participants []*Participant, rngSeed int64) {
	rng := rand.New(rand.NewSource(rngSeed))
	used := make(map[string]bool, len(participants))
	for _, p := range participants {
		var color string
		for {
			color = fmt.Sprintf("#%06x", rng.Intn(0xffffff+1))
			if !used[color] {
				break
			}
		}
		used[color] = true
		p.Color = color
	}
}
