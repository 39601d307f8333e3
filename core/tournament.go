package core

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type TournamentType string

const (
	// Participants play a round robin inside their group
	Grouped TournamentType = "grouped"
	// Elimination bracket. The bracket itself is not generated
	// by this package.
	Knockout TournamentType = "knockout"
)

func (t TournamentType) validate() error {
	switch t {
	case Grouped, Knockout:
		return nil
	}
	return configError("type", ErrUnknownTournamentType)
}

// The input of AssembleTournament.
// Empty enum fields select the defaults Grouped,
// SingleLeg and TieBreakGeneral.
type Config struct {
	// Zero derives the id from the creation time
	Id   int
	Name string

	Type     TournamentType
	LegMode  LegMode
	TieBreak TieBreakPolicy

	// Number of groups. Nil means a single group.
	GroupCount *int

	// Participants in seeding order. Participants with an
	// empty name are dropped.
	Participants []*Participant

	// Shuffle the participants with the Seed before they
	// are dealt into the groups
	Shuffle bool
	Seed    int64

	// Locale for comparing participant names. Und means DefaultLocale.
	Locale language.Tag

	// Zero means now
	CreatedAt time.Time
}

func (c *Config) applyDefaults() {
	if c.Type == "" {
		c.Type = Grouped
	}
	if c.LegMode == "" {
		c.LegMode = SingleLeg
	}
	if c.TieBreak == "" {
		c.TieBreak = TieBreakGeneral
	}
	if c.Locale == language.Und {
		c.Locale = DefaultLocale
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Id == 0 {
		c.Id = int(c.CreatedAt.UnixMilli())
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return configError("name", ErrMissingName)
	}
	if err := c.Type.validate(); err != nil {
		return err
	}
	if err := c.LegMode.validate(); err != nil {
		return err
	}
	if err := c.TieBreak.validate(); err != nil {
		return err
	}
	if c.Type == Grouped && c.GroupCount != nil && *c.GroupCount < 1 {
		return configError("groupCount", ErrInvalidGroupCount)
	}
	return nil
}

// Returns the participants that have a name. Fails on
// duplicate ids and names.
func (c *Config) validParticipants() ([]*Participant, error) {
	names := make(map[string]bool, len(c.Participants))
	ids := make(map[int]bool, len(c.Participants))

	valid := make([]*Participant, 0, len(c.Participants))
	for _, p := range c.Participants {
		if p == nil || strings.TrimSpace(p.Name) == "" {
			continue
		}
		if p.Id < 1 || ids[p.Id] {
			return nil, configError("participants", ErrInvalidParticipantId)
		}
		name := foldName(c.Locale, p.Name)
		if names[name] {
			return nil, configError("participants", ErrDuplicateName)
		}
		ids[p.Id] = true
		names[name] = true

		participant := p.Clone()
		participant.Name = strings.TrimSpace(p.Name)
		if participant.Color == "" {
			participant.Color = DefaultColor
		}
		valid = append(valid, participant)
	}

	if len(valid) < 2 {
		return nil, configError("participants", ErrTooFewParticipants)
	}
	return valid, nil
}

// Returns the name trimmed and lower cased with the rules
// of the locale. Names with equal folds are the same name.
func foldName(locale language.Tag, name string) string {
	return cases.Lower(locale).String(strings.TrimSpace(name))
}

type Tournament struct {
	Id       int
	Name     string
	Type     TournamentType
	LegMode  LegMode
	TieBreak TieBreakPolicy
	Locale   language.Tag

	GroupCount   int
	Groups       []*Group
	Participants []*Participant
	Matches      []*Match

	CreatedAt time.Time
}

// Returns the group of the participant or nil
func (t *Tournament) GroupOf(participantId int) *Group {
	for _, g := range t.Groups {
		if g.Contains(participantId) {
			return g
		}
	}
	return nil
}

// Returns the matches where both sides belong to the group
func (t *Tournament) GroupMatches(group *Group) []*Match {
	matches := make([]*Match, 0, len(t.Matches))
	for _, m := range t.Matches {
		if group.Contains(m.HomeId) && group.Contains(m.AwayId) {
			matches = append(matches, m)
		}
	}
	return matches
}

// Returns the participant with the given name or nil. The name
// is compared like the duplicate check of AssembleTournament does.
func (t *Tournament) ParticipantByName(name string) *Participant {
	folded := foldName(t.Locale, name)
	for _, p := range t.Participants {
		if foldName(t.Locale, p.Name) == folded {
			return p
		}
	}
	return nil
}

// Returns the match with the given id or nil
func (t *Tournament) Match(id int) *Match {
	for _, m := range t.Matches {
		if m.Id == id {
			return m
		}
	}
	return nil
}

// Computes the standings of a group with the tournament's
// tie-break policy.
//
// The recomputed counters are also written back to the
// tournament's participants.
func (t *Tournament) Standings(group *Group) []*Participant {
	updated, ranked := t.standingsCalculator().Compute(group.Participants, t.GroupMatches(group))

	byId := make(map[int]*Participant, len(group.Participants))
	for i, p := range group.Participants {
		*p = *updated[i]
		byId[p.Id] = p
	}
	for i, r := range ranked {
		ranked[i] = byId[r.Id]
	}

	return ranked
}

func (t *Tournament) standingsCalculator() *StandingsCalculator {
	return NewStandingsCalculator(t.TieBreak, t.Locale)
}

// Splits the participants into groups and generates the round robin
// of every group. Match ids start at 1 and continue across the groups.
//
// A *ConfigError is returned for invalid configuration. When the
// home/away correction fails for some groups the complete tournament
// is returned along with their *SchedulingError(s).
func AssembleTournament(config Config) (*Tournament, error) {
	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	participants, err := config.validParticipants()
	if err != nil {
		return nil, err
	}

	if config.Shuffle {
		SeededShuffle(participants, config.Seed)
	}

	tournament := &Tournament{
		Id:           config.Id,
		Name:         strings.TrimSpace(config.Name),
		Type:         config.Type,
		LegMode:      config.LegMode,
		TieBreak:     config.TieBreak,
		Locale:       config.Locale,
		GroupCount:   1,
		Participants: participants,
		Matches:      []*Match{},
		CreatedAt:    config.CreatedAt,
	}

	if config.Type != Grouped {
		return tournament, nil
	}

	if config.GroupCount != nil {
		tournament.GroupCount = *config.GroupCount
	}

	groups, err := PartitionGroups(participants, tournament.GroupCount)
	if err != nil {
		return nil, err
	}
	tournament.Groups = groups

	var schedulingErrs []error
	nextId := 1
	for _, group := range groups {
		generator := &fixtureGenerator{
			teamIds:      participantIds(group.Participants),
			tournamentId: tournament.Id,
			createdAt:    config.CreatedAt,
			nextId:       nextId,
		}
		matches, err := generator.generate(config.LegMode, maxBalancePasses(len(group.Participants)))

		var schedulingErr *SchedulingError
		if errors.As(err, &schedulingErr) {
			schedulingErr.Group = group.Name
			schedulingErrs = append(schedulingErrs, schedulingErr)
		} else if err != nil {
			return nil, err
		}

		tournament.Matches = append(tournament.Matches, matches...)
		nextId += len(matches)
	}

	return tournament, errors.Join(schedulingErrs...)
}
