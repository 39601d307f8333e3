package results

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/ezBadminton/gofixture/core"
)

var (
	ErrUnknownMatch  = errors.New("no match with this id")
	ErrNegativeScore = errors.New("negative score")
)

// Returns an error when the score can not be recorded
func ValidateScore(homeScore, awayScore int) error {
	if homeScore < 0 || awayScore < 0 {
		return ErrNegativeScore
	}
	return nil
}

// A Change describes an entered or cleared result and
// the standings of the affected group after it.
type Change struct {
	Match core.Match
	// Name of the match's group. Empty for tournaments
	// without groups.
	Group string
	// Copies of the group's participants in ranked order
	Ranking []*core.Participant
}

// A Recorder is the single writer of a tournament's results.
//
// All result changes go through the Recorder which serializes them so
// the standings are always computed from a consistent match list.
// The optional onChange callback is invoked after each change, outside
// of the lock.
//
// Recording writes the recomputed counters into the tournament's
// participants. While a Recorder is in use the tournament must only be
// read through Standings and Snapshot.
type Recorder struct {
	mu         sync.Mutex
	tournament *core.Tournament
	onChange   func(Change)
}

// Enters the score of the match with the given id. An existing
// score is overwritten.
func (r *Recorder) Record(matchId, homeScore, awayScore int) (Change, error) {
	if err := ValidateScore(homeScore, awayScore); err != nil {
		return Change{}, err
	}
	return r.update(matchId, func(m *core.Match) { m.SetScore(homeScore, awayScore) })
}

// Removes the score of the match with the given id
func (r *Recorder) Clear(matchId int) (Change, error) {
	return r.update(matchId, func(m *core.Match) { m.ClearScore() })
}

// Returns the current ranking of every group by group name
func (r *Recorder) Standings() map[string][]*core.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()

	standings := make(map[string][]*core.Participant, len(r.tournament.Groups))
	for _, g := range r.tournament.Groups {
		standings[g.Name] = cloneAll(r.tournament.Standings(g))
	}
	return standings
}

// Encodes the tournament as JSON while no result is being changed
func (r *Recorder) Snapshot() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return json.Marshal(r.tournament)
}

func (r *Recorder) update(matchId int, mutate func(m *core.Match)) (Change, error) {
	change, err := r.locked(matchId, mutate)
	if err != nil {
		return Change{}, err
	}
	if r.onChange != nil {
		r.onChange(change)
	}
	return change, nil
}

func (r *Recorder) locked(matchId int, mutate func(m *core.Match)) (Change, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	match := r.tournament.Match(matchId)
	if match == nil {
		return Change{}, ErrUnknownMatch
	}
	mutate(match)

	change := Change{Match: *match}
	if group := r.tournament.GroupOf(match.HomeId); group != nil {
		change.Group = group.Name
		change.Ranking = cloneAll(r.tournament.Standings(group))
	}
	if match.HomeScore != nil {
		home, away := *match.HomeScore, *match.AwayScore
		change.Match.HomeScore = &home
		change.Match.AwayScore = &away
	}

	return change, nil
}

func cloneAll(participants []*core.Participant) []*core.Participant {
	clones := make([]*core.Participant, 0, len(participants))
	for _, p := range participants {
		clones = append(clones, p.Clone())
	}
	return clones
}

func NewRecorder(tournament *core.Tournament, onChange func(Change)) *Recorder {
	return &Recorder{tournament: tournament, onChange: onChange}
}
