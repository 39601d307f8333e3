package core

import (
	"cmp"
	"slices"
)

// Returns the upper bound of correction passes for a group of
// the given size.
func maxBalancePasses(numParticipants int) int {
	return max(numParticipants*numParticipants, 1)
}

// Corrects the first leg of an existing double leg fixture so that
// no participant plays three home or three away matches in a row.
//
// The matches with a round up to the number of first leg rounds
// form the first leg. When the second leg match of a swapped pairing
// is present it is swapped as well. Set scores move with their side.
// If the correction does not converge all matches are restored and
// a *SchedulingError is returned.
func BalanceHomeAway(participants []*Participant, matches []*Match) error {
	teamIds := participantIds(participants)
	if err := validateIds(teamIds); err != nil {
		return err
	}

	numRounds := len(participants)
	if numRounds%2 == 0 {
		numRounds -= 1
	}

	firstLeg := make([]*Match, 0, len(matches)/2+1)
	for _, m := range matches {
		if m.Round <= numRounds {
			firstLeg = append(firstLeg, m)
		}
	}

	balancer := newHomeAwayBalancer(teamIds, firstLeg, maxBalancePasses(len(participants)))
	balancer.linkSecondLeg(matches, numRounds)

	if !balancer.balance() {
		return &SchedulingError{Passes: balancer.passes, Err: ErrBalanceNotConverged}
	}
	return nil
}

func balanceHomeAway(teamIds []int, firstLeg []*Match, maxPasses int) (int, bool) {
	balancer := newHomeAwayBalancer(teamIds, firstLeg, maxPasses)
	converged := balancer.balance()
	return balancer.passes, converged
}

type homeAwayBalancer struct {
	teamIds []int
	// First leg matches ascending by round
	firstLeg []*Match
	// Second leg partners of the first leg matches
	partners map[*Match]*Match

	maxPasses int
	passes    int
}

// Repeatedly swaps the middle match of the first three-in-a-row
// until no participant has one. Returns false when maxPasses swaps
// did not suffice. The original sides are restored in that case.
func (b *homeAwayBalancer) balance() bool {
	snapshot := make([]Match, len(b.firstLeg))
	for i, m := range b.firstLeg {
		snapshot[i] = *m
	}

	for {
		match := b.findRun()
		if match == nil {
			return true
		}
		if b.passes >= b.maxPasses {
			b.restore(snapshot)
			return false
		}
		b.swap(match)
		b.passes += 1
	}
}

// Scans the participants in order for three equal
// consecutive home/away markers. Returns the match in the
// middle of the first run that is found or nil.
func (b *homeAwayBalancer) findRun() *Match {
	sequences := b.sequences()
	for _, id := range b.teamIds {
		sequence := sequences[id]
		for i := 0; i+2 < len(sequence); i++ {
			h1 := sequence[i].HomeId == id
			h2 := sequence[i+1].HomeId == id
			h3 := sequence[i+2].HomeId == id
			if h1 == h2 && h2 == h3 {
				return sequence[i+1]
			}
		}
	}
	return nil
}

// Returns each participant's matches in round order. Rounds
// where a participant has a bye are simply absent.
func (b *homeAwayBalancer) sequences() map[int][]*Match {
	sequences := make(map[int][]*Match, len(b.teamIds))
	for _, m := range b.firstLeg {
		sequences[m.HomeId] = append(sequences[m.HomeId], m)
		sequences[m.AwayId] = append(sequences[m.AwayId], m)
	}
	return sequences
}

func (b *homeAwayBalancer) swap(match *Match) {
	match.SwapSides()
	if partner, ok := b.partners[match]; ok {
		partner.SwapSides()
	}
}

func (b *homeAwayBalancer) restore(snapshot []Match) {
	for i, m := range b.firstLeg {
		if m.HomeId != snapshot[i].HomeId {
			b.swap(m)
		}
	}
}

// Finds the second leg match for every first leg match
func (b *homeAwayBalancer) linkSecondLeg(matches []*Match, numRounds int) {
	b.partners = make(map[*Match]*Match, len(b.firstLeg))
	for _, first := range b.firstLeg {
		for _, m := range matches {
			if m.Round == first.Round+numRounds && m.IsBetween(first.HomeId, first.AwayId) {
				b.partners[first] = m
				break
			}
		}
	}
}

func newHomeAwayBalancer(teamIds []int, firstLeg []*Match, maxPasses int) *homeAwayBalancer {
	sorted := slices.Clone(firstLeg)
	slices.SortStableFunc(sorted, func(a, b *Match) int { return cmp.Compare(a.Round, b.Round) })
	return &homeAwayBalancer{
		teamIds:   teamIds,
		firstLeg:  sorted,
		maxPasses: maxPasses,
	}
}
