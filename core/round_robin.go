package core

import (
	"time"
)

type LegMode string

const (
	// Every pair meets once
	SingleLeg LegMode = "single"
	// Every pair meets twice with home and away reversed
	DoubleLeg LegMode = "double"
)

func (l LegMode) validate() error {
	switch l {
	case SingleLeg, DoubleLeg:
		return nil
	}
	return configError("legMode", ErrUnknownLegMode)
}

// Placeholder opponent that fills up groups with an odd
// number of participants. Participant ids are positive so
// it can never collide.
const byeId = -1

// Generates the complete round robin calendar of one group
// with the circle method.
//
// The participant ids have to be positive and unique.
// The match ids are assigned ascending from startMatchId.
// In DoubleLeg mode the first leg is corrected so that no participant
// plays three home or three away matches in a row. The second leg mirrors
// the corrected first leg. When the correction does not converge the fixture
// is returned uncorrected together with a *SchedulingError.
func GenerateFixture(
	participants []*Participant,
	tournamentId int,
	legMode LegMode,
	startMatchId int,
) ([]*Match, error) {
	teamIds := participantIds(participants)
	if err := validateIds(teamIds); err != nil {
		return nil, err
	}

	generator := &fixtureGenerator{
		teamIds:      teamIds,
		tournamentId: tournamentId,
		createdAt:    time.Now(),
		nextId:       startMatchId,
	}
	return generator.generate(legMode, maxBalancePasses(len(participants)))
}

type fixtureGenerator struct {
	teamIds      []int
	tournamentId int
	createdAt    time.Time
	nextId       int
}

func (g *fixtureGenerator) generate(legMode LegMode, maxPasses int) ([]*Match, error) {
	if err := legMode.validate(); err != nil {
		return nil, err
	}
	if len(g.teamIds) < 2 {
		return []*Match{}, nil
	}

	entrySlots := g.entrySlots()
	numRounds := len(entrySlots) - 1

	startId := g.nextId
	firstLeg := g.createFirstLeg(entrySlots, nil)
	if legMode == SingleLeg {
		return firstLeg, nil
	}

	var schedulingErr *SchedulingError
	passes, converged := balanceHomeAway(g.teamIds, firstLeg, maxPasses)
	if !converged {
		// Fall back to a checkerboard orientation which only needs
		// minor corrections for all group sizes
		g.nextId = startId
		alternative := g.createFirstLeg(entrySlots, checkerboardFlip)
		altPasses, altConverged := balanceHomeAway(g.teamIds, alternative, maxPasses)
		if altConverged {
			firstLeg = alternative
		} else {
			schedulingErr = &SchedulingError{
				Passes: passes + altPasses,
				Err:    ErrBalanceNotConverged,
			}
		}
	}

	secondLeg := g.mirror(firstLeg, numRounds)
	matches := append(firstLeg, secondLeg...)

	if schedulingErr != nil {
		return matches, schedulingErr
	}
	return matches, nil
}

// Returns the participant ids plus a bye when the count is odd
func (g *fixtureGenerator) entrySlots() []int {
	slots := make([]int, 0, len(g.teamIds)+1)
	slots = append(slots, g.teamIds...)
	if len(slots)%2 != 0 {
		slots = append(slots, byeId)
	}
	return slots
}

// Creates the matches of all rounds of one leg. The flip function
// can reverse the sides of the pairing at the given slot.
func (g *fixtureGenerator) createFirstLeg(
	entrySlots []int,
	flip func(roundI, matchI int) bool,
) []*Match {
	numRounds := len(entrySlots) - 1
	numMatches := len(entrySlots) / 2

	matches := make([]*Match, 0, numRounds*numMatches)
	for roundI := 0; roundI < numRounds; roundI++ {
		for matchI := 0; matchI < numMatches; matchI++ {
			home, away := pickOpponents(entrySlots, roundI, matchI)
			if home == byeId || away == byeId {
				continue
			}
			if flip != nil && flip(roundI, matchI) {
				home, away = away, home
			}
			matches = append(matches, g.newMatch(home, away, roundI+1))
		}
	}
	return matches
}

// Creates the second leg. Every first leg match is repeated
// numRounds rounds later with the sides reversed.
func (g *fixtureGenerator) mirror(firstLeg []*Match, numRounds int) []*Match {
	secondLeg := make([]*Match, 0, len(firstLeg))
	for _, m := range firstLeg {
		secondLeg = append(secondLeg, g.newMatch(m.AwayId, m.HomeId, m.Round+numRounds))
	}
	return secondLeg
}

func (g *fixtureGenerator) newMatch(home, away, round int) *Match {
	match := &Match{
		Id:           g.nextId,
		TournamentId: g.tournamentId,
		HomeId:       home,
		AwayId:       away,
		Round:        round,
		CreatedAt:    g.createdAt,
	}
	g.nextId += 1
	return match
}

// Returns the home and away side of the specified match. The first
// slot stays fixed while the others rotate by one position per round.
func pickOpponents(entrySlots []int, roundI, matchI int) (int, int) {
	i1 := matchI
	i2 := len(entrySlots) - 1 - matchI

	i1 = roundRobinCircleIndex(i1, len(entrySlots), roundI)
	i2 = roundRobinCircleIndex(i2, len(entrySlots), roundI)

	return entrySlots[i1], entrySlots[i2]
}

// Rotates the given index according to https://en.wikipedia.org/wiki/Round-robin_tournament#Circle_method
//
// After each round the last slot moves next to the fixed first slot
// and all other slots move one position back.
func roundRobinCircleIndex(index, length, round int) int {
	if index == 0 {
		return 0
	}
	index -= 1
	index -= round
	index += length - 1
	index %= length - 1
	index += 1
	return index
}

func checkerboardFlip(roundI, matchI int) bool {
	// roundI is 0-based, so this flips odd sums of
	// the 1-based round number and the slot
	return (roundI+matchI)%2 == 0
}
