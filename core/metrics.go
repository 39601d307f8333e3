package core

import "slices"

const (
	PointsWin  = 3
	PointsDraw = 1
)

type MatchMetrics struct {
	NumMatches int `json:"numMatches"`
	Wins       int `json:"wins"`
	Draws      int `json:"draws"`
	Losses     int `json:"losses"`

	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`

	Points int `json:"points"`
}

func (m *MatchMetrics) GoalDifference() int {
	return m.GoalsFor - m.GoalsAgainst
}

// Creates a MatchMetrics struct for each participant in the played matches.
// If the participantIds slice is not nil/empty only the matches where both
// opponents are in the slice are counted.
func CreateMetrics(matches []*Match, participantIds []int) map[int]*MatchMetrics {
	metrics := make(map[int]*MatchMetrics)
	for _, match := range matches {
		extractMatchMetrics(match, participantIds, metrics)
	}
	return metrics
}

func extractMatchMetrics(
	match *Match,
	participantIds []int,
	metrics map[int]*MatchMetrics,
) {
	if !match.IsPlayed() {
		return
	}

	home, away := match.HomeId, match.AwayId
	doCountHome := len(participantIds) == 0 || slices.Contains(participantIds, home)
	doCountAway := len(participantIds) == 0 || slices.Contains(participantIds, away)
	if !doCountHome || !doCountAway {
		return
	}

	m1 := metricsOf(metrics, home)
	m2 := metricsOf(metrics, away)

	m1.NumMatches += 1
	m2.NumMatches += 1

	homeScore, awayScore := *match.HomeScore, *match.AwayScore

	m1.GoalsFor += homeScore
	m1.GoalsAgainst += awayScore
	m2.GoalsFor += awayScore
	m2.GoalsAgainst += homeScore

	switch {
	case homeScore > awayScore:
		m1.Wins += 1
		m1.Points += PointsWin
		m2.Losses += 1
	case awayScore > homeScore:
		m2.Wins += 1
		m2.Points += PointsWin
		m1.Losses += 1
	default:
		m1.Draws += 1
		m2.Draws += 1
		m1.Points += PointsDraw
		m2.Points += PointsDraw
	}
}

func metricsOf(metrics map[int]*MatchMetrics, participantId int) *MatchMetrics {
	m, ok := metrics[participantId]
	if !ok {
		m = &MatchMetrics{}
		metrics[participantId] = m
	}
	return m
}

// Adds zeroed metrics to the metrics map for participants which are
// not already present in the map but are in the participantIds slice
func addZeroMetrics(metrics map[int]*MatchMetrics, participantIds []int) {
	for _, id := range participantIds {
		metricsOf(metrics, id)
	}
}
