package core

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type TieBreakPolicy string

const (
	// Ties on points are broken by the goal difference of all matches
	TieBreakGeneral TieBreakPolicy = "general"
	// Ties on points are first broken by the matches between the tied
	// participants
	TieBreakHeadToHead TieBreakPolicy = "head-to-head"
)

func (p TieBreakPolicy) validate() error {
	switch p {
	case TieBreakGeneral, TieBreakHeadToHead:
		return nil
	}
	return configError("tieBreak", ErrUnknownTieBreak)
}

// The locale whose collation orders equal participants by name
// when none is configured
var DefaultLocale = language.Turkish

// Recomputes the participants' counters from the played matches and
// ranks them according to the tie-break policy. Neither the participants
// nor the matches are modified.
//
// The first returned slice holds copies of the participants with
// fresh counters in the original order. The second slice is the same
// copies in ranked order. Matches with an opponent outside of the
// participants are ignored.
func ComputeStandings(
	participants []*Participant,
	matches []*Match,
	policy TieBreakPolicy,
) ([]*Participant, []*Participant) {
	calculator := NewStandingsCalculator(policy, DefaultLocale)
	return calculator.Compute(participants, matches)
}

// A StandingsCalculator folds match results into participant
// counters and ranks the participants.
//
// A calculator is not safe for concurrent use.
type StandingsCalculator struct {
	Policy TieBreakPolicy

	collator *collate.Collator
}

func (c *StandingsCalculator) Compute(
	participants []*Participant,
	matches []*Match,
) ([]*Participant, []*Participant) {
	updated := c.fold(participants, matches)

	ranked := slices.Clone(updated)
	comparator := c.newComparator(matches)
	slices.SortStableFunc(ranked, comparator.compare)

	return updated, ranked
}

func (c *StandingsCalculator) fold(participants []*Participant, matches []*Match) []*Participant {
	ids := participantIds(participants)

	metrics := CreateMetrics(matches, ids)
	addZeroMetrics(metrics, ids)

	updated := make([]*Participant, 0, len(participants))
	for _, p := range participants {
		clone := p.Clone()
		clone.resetCounters()
		clone.applyMetrics(metrics[p.Id])
		updated = append(updated, clone)
	}

	return updated
}

func (c *StandingsCalculator) newComparator(matches []*Match) *standingsComparator {
	return &standingsComparator{
		policy:     c.Policy,
		matches:    matches,
		collator:   c.collator,
		headToHead: make(map[[2]int]int),
	}
}

// Creates a StandingsCalculator. Unknown policies rank like
// TieBreakGeneral.
func NewStandingsCalculator(policy TieBreakPolicy, locale language.Tag) *StandingsCalculator {
	return &StandingsCalculator{
		Policy:   policy,
		collator: collate.New(locale),
	}
}

// Pairwise ordering of participants.
//
// With the head-to-head policy the order of two participants only
// depends on their mutual matches first. Three participants that beat
// each other in a circle therefore have no consistent order. Sorting
// still terminates, the resulting order among them is unspecified.
// HeadToHeadCycles reports such circles.
type standingsComparator struct {
	policy   TieBreakPolicy
	matches  []*Match
	collator *collate.Collator

	// Cached head-to-head results keyed by ordered id pairs
	headToHead map[[2]int]int
}

// Returns a negative number when a ranks before b
func (c *standingsComparator) compare(a, b *Participant) int {
	if r := cmp.Compare(b.Points, a.Points); r != 0 {
		return r
	}

	if c.policy == TieBreakHeadToHead {
		if r := c.compareHeadToHead(a.Id, b.Id); r != 0 {
			return r
		}
	}

	return c.compareGeneral(a, b)
}

// Who has...
//   - the higher goal difference
//   - more goals scored
//   - less goals conceded
//   - the name that sorts first
func (c *standingsComparator) compareGeneral(a, b *Participant) int {
	if r := cmp.Compare(b.GeneralAverage(), a.GeneralAverage()); r != 0 {
		return r
	}
	if r := cmp.Compare(b.GoalsFor, a.GoalsFor); r != 0 {
		return r
	}
	if r := cmp.Compare(a.GoalsAgainst, b.GoalsAgainst); r != 0 {
		return r
	}
	return c.collator.CompareString(a.Name, b.Name)
}

// Compares only the played matches between a and b by
// points, goal difference, goals scored and goals conceded.
// Returns 0 when they never met.
func (c *standingsComparator) compareHeadToHead(a, b int) int {
	key := [2]int{a, b}
	if r, ok := c.headToHead[key]; ok {
		return r
	}

	pair := []int{a, b}
	metrics := CreateMetrics(c.matches, pair)
	addZeroMetrics(metrics, pair)
	ma, mb := metrics[a], metrics[b]

	r := cmp.Compare(mb.Points, ma.Points)
	if r == 0 {
		r = cmp.Compare(mb.GoalDifference(), ma.GoalDifference())
	}
	if r == 0 {
		r = cmp.Compare(mb.GoalsFor, ma.GoalsFor)
	}
	if r == 0 {
		r = cmp.Compare(ma.GoalsAgainst, mb.GoalsAgainst)
	}

	c.headToHead[key] = r
	c.headToHead[[2]int{b, a}] = -r
	return r
}
