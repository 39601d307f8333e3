package core

import (
	"github.com/ezBadminton/gofixture/internal"
)

// Finds participants whose head-to-head results contradict each
// other (e.g. A beat B, B beat C and C beat A) while they are tied
// on points.
//
// Those are the cases where the TieBreakHeadToHead ranking has no
// consistent order. Each returned cycle holds the recomputed
// participants in their original order.
func HeadToHeadCycles(participants []*Participant, matches []*Match) ([][]*Participant, error) {
	calculator := NewStandingsCalculator(TieBreakHeadToHead, DefaultLocale)
	updated := calculator.fold(participants, matches)
	comparator := calculator.newComparator(matches)

	dominanceGraph, err := internal.NewDominanceGraph(participantIds(updated))
	if err != nil {
		return nil, err
	}
	for i, a := range updated {
		for _, b := range updated[i+1:] {
			if a.Points != b.Points {
				continue
			}
			var err error
			switch r := comparator.compareHeadToHead(a.Id, b.Id); {
			case r < 0:
				err = dominanceGraph.AddDominance(a.Id, b.Id)
			case r > 0:
				err = dominanceGraph.AddDominance(b.Id, a.Id)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	idCycles, err := dominanceGraph.Cycles()
	if err != nil {
		return nil, err
	}

	cycles := make([][]*Participant, 0, len(idCycles))
	for _, idCycle := range idCycles {
		inCycle := make(map[int]bool, len(idCycle))
		for _, id := range idCycle {
			inCycle[id] = true
		}
		cycle := make([]*Participant, 0, len(idCycle))
		for _, p := range updated {
			if inCycle[p.Id] {
				cycle = append(cycle, p)
			}
		}
		cycles = append(cycles, cycle)
	}

	return cycles, nil
}
