package core

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewParticipants    = errors.New("at least 2 participants with a name are required")
	ErrInvalidGroupCount     = errors.New("group count must be at least 1")
	ErrMissingName           = errors.New("tournament name is required")
	ErrDuplicateName         = errors.New("participant name is already taken")
	ErrInvalidParticipantId  = errors.New("participant id must be positive and unique")
	ErrUnknownTournamentType = errors.New("unknown tournament type")
	ErrUnknownLegMode        = errors.New("unknown leg mode")
	ErrUnknownTieBreak       = errors.New("unknown tie-break policy")

	ErrBalanceNotConverged = errors.New("home/away balance correction did not converge")
)

// A ConfigError reports an invalid or missing piece of
// tournament configuration. Field names the offending input.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}

// A SchedulingError is returned when the home/away correction of
// a double leg fixture gave up. The fixture returned alongside it
// is complete but keeps its generated orientation.
type SchedulingError struct {
	// Name of the group the fixture was generated for.
	// Empty when the fixture was generated outside of a tournament.
	Group string
	// Correction passes that were attempted
	Passes int
	Err    error
}

func (e *SchedulingError) Error() string {
	if e.Group == "" {
		return fmt.Sprintf("scheduling: %v after %d passes", e.Err, e.Passes)
	}
	return fmt.Sprintf("scheduling %s: %v after %d passes", e.Group, e.Err, e.Passes)
}

func (e *SchedulingError) Unwrap() error {
	return e.Err
}
