package core

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// A match between a home and an away participant of the same group.
//
// The scores are nil until the result is known. A match
// counts as played when both scores are set and non-negative.
type Match struct {
	Id           int `json:"id"`
	TournamentId int `json:"tournamentId"`

	HomeId int `json:"homeTeamId"`
	AwayId int `json:"awayTeamId"`

	// 1-based round (match day) within the group
	Round int `json:"round"`

	HomeScore *int `json:"homeScore"`
	AwayScore *int `json:"awayScore"`

	CreatedAt time.Time `json:"date"`
}

func (m *Match) IsPlayed() bool {
	if m.HomeScore == nil || m.AwayScore == nil {
		return false
	}
	return *m.HomeScore >= 0 && *m.AwayScore >= 0
}

// Sets both scores of the match
func (m *Match) SetScore(home, away int) {
	m.HomeScore = &home
	m.AwayScore = &away
}

// Removes the result from the match
func (m *Match) ClearScore() {
	m.HomeScore = nil
	m.AwayScore = nil
}

// Swaps home and away. Set scores move with their side.
func (m *Match) SwapSides() {
	m.HomeId, m.AwayId = m.AwayId, m.HomeId
	m.HomeScore, m.AwayScore = m.AwayScore, m.HomeScore
}

func (m *Match) Involves(participantId int) bool {
	return m.HomeId == participantId || m.AwayId == participantId
}

// Returns true when the match is between the two given participants
// regardless of the sides
func (m *Match) IsBetween(a, b int) bool {
	return (m.HomeId == a && m.AwayId == b) || (m.HomeId == b && m.AwayId == a)
}

// Returns the goals scored and conceded by the given participant.
// The match has to be played and involve the participant.
func (m *Match) GoalsOf(participantId int) (scored, conceded int) {
	if participantId == m.HomeId {
		return *m.HomeScore, *m.AwayScore
	}
	return *m.AwayScore, *m.HomeScore
}

func (m *Match) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("#%d R%d %d vs. %d", m.Id, m.Round, m.HomeId, m.AwayId))
	if m.IsPlayed() {
		sb.WriteString(fmt.Sprintf("\t%d - %d", *m.HomeScore, *m.AwayScore))
	}
	return sb.String()
}

// A Round is the list of matches that are played
// on the same match day.
type Round struct {
	Number  int
	Matches []*Match
}

// Groups the matches by their round number. The rounds are
// ascending and the matches keep their relative order.
func RoundsOf(matches []*Match) []*Round {
	byNumber := make(map[int]*Round)
	for _, m := range matches {
		round, ok := byNumber[m.Round]
		if !ok {
			round = &Round{Number: m.Round, Matches: make([]*Match, 0, 4)}
			byNumber[m.Round] = round
		}
		round.Matches = append(round.Matches, m)
	}

	rounds := make([]*Round, 0, len(byNumber))
	for _, r := range byNumber {
		rounds = append(rounds, r)
	}
	slices.SortFunc(rounds, func(a, b *Round) int { return cmp.Compare(a.Number, b.Number) })

	return rounds
}
