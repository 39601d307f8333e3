package core

import (
	"encoding/json"
	"maps"
)

func marshalParticipant(p *Participant) map[string]any {
	return map[string]any{
		"id":    p.Id,
		"name":  p.Name,
		"color": p.Color,
	}
}

func marshalStanding(p *Participant) map[string]any {
	result := map[string]any{
		"matchesPlayed":  p.MatchesPlayed,
		"wins":           p.Wins,
		"draws":          p.Draws,
		"losses":         p.Losses,
		"goalsFor":       p.GoalsFor,
		"goalsAgainst":   p.GoalsAgainst,
		"generalAverage": p.GeneralAverage(),
		"points":         p.Points,
	}
	maps.Copy(result, marshalParticipant(p))
	return result
}

func marshalMatch(match *Match) map[string]any {
	score := make([]int, 0, 2)
	if match.IsPlayed() {
		score = append(score, *match.HomeScore, *match.AwayScore)
	}
	result := map[string]any{
		"id":    match.Id,
		"home":  match.HomeId,
		"away":  match.AwayId,
		"score": score,
		"date":  match.CreatedAt.UnixMilli(),
	}
	return result
}

func marshalRounds(matches []*Match) [][]map[string]any {
	rounds := RoundsOf(matches)
	marshalled := make([][]map[string]any, len(rounds))
	for i, round := range rounds {
		roundMatches := make([]map[string]any, len(round.Matches))
		for i, match := range round.Matches {
			roundMatches[i] = marshalMatch(match)
		}
		marshalled[i] = roundMatches
	}
	return marshalled
}

func marshalGroup(tournament *Tournament, group *Group) map[string]any {
	matches := tournament.GroupMatches(group)
	_, ranked := tournament.standingsCalculator().Compute(group.Participants, matches)

	standings := make([]map[string]any, len(ranked))
	for i, p := range ranked {
		standings[i] = marshalStanding(p)
	}

	result := map[string]any{
		"name":         group.Name,
		"participants": participantIds(group.Participants),
		"standings":    standings,
		"rounds":       marshalRounds(matches),
	}
	return result
}

func marshalTournament(tournament *Tournament) map[string]any {
	participants := make([]map[string]any, len(tournament.Participants))
	for i, p := range tournament.Participants {
		participants[i] = marshalParticipant(p)
	}

	result := map[string]any{
		"id":           tournament.Id,
		"name":         tournament.Name,
		"type":         tournament.Type,
		"created":      tournament.CreatedAt.UnixMilli(),
		"participants": participants,
	}

	if tournament.Type == Grouped {
		groups := make([]map[string]any, len(tournament.Groups))
		for i, g := range tournament.Groups {
			groups[i] = marshalGroup(tournament, g)
		}
		maps.Copy(result, map[string]any{
			"legMode":  tournament.LegMode,
			"tieBreak": tournament.TieBreak,
			"groups":   groups,
		})
	}

	return result
}

// Encodes a snapshot of the tournament with the current standings
// of every group. The standings are computed on the fly, the
// participants' counters are left untouched.
func (t *Tournament) MarshalJSON() ([]byte, error) {
	anymap := marshalTournament(t)
	return json.Marshal(anymap)
}
