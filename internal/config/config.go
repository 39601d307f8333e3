package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ezBadminton/gofixture/core"
)

const (
	EnvLocale   = "FIXTURE_LOCALE"
	EnvLogLevel = "FIXTURE_LOG_LEVEL"
)

type Config struct {
	Tournament TournamentConfig `yaml:"tournament"`
	Results    []ResultConfig   `yaml:"results"`
	Locale     string           `yaml:"locale"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type TournamentConfig struct {
	Name         string              `yaml:"name"`
	Type         string              `yaml:"type"`      // "grouped" or "knockout"
	LegMode      string              `yaml:"leg_mode"`  // "single" or "double"
	TieBreak     string              `yaml:"tie_break"` // "general" or "head-to-head"
	GroupCount   *int                `yaml:"group_count"`
	Shuffle      bool                `yaml:"shuffle"`
	Seed         int64               `yaml:"seed"`
	Participants []ParticipantConfig `yaml:"participants"`
}

type ParticipantConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// A recorded result. The match is identified by the names
// of its home and away side.
type ResultConfig struct {
	Home      string `yaml:"home"`
	Away      string `yaml:"away"`
	HomeScore int    `yaml:"home_score"`
	AwayScore int    `yaml:"away_score"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads the YAML tournament file. A .env file in the working
// directory is loaded first if present and the environment
// overrides the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Locale == "" {
		c.Locale = "tr"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *Config) applyEnv() {
	if locale := os.Getenv(EnvLocale); locale != "" {
		c.Locale = locale
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
}

func (c *Config) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Converts the file contents to the tournament configuration.
// The participants get the ids 1 to n in file order.
func (c *Config) TournamentConfig() (core.Config, error) {
	locale, err := c.LanguageTag()
	if err != nil {
		return core.Config{}, err
	}

	t := c.Tournament
	participants := make([]*core.Participant, 0, len(t.Participants))
	for i, p := range t.Participants {
		participant := core.NewParticipant(i+1, p.Name)
		if p.Color != "" {
			participant.Color = p.Color
		}
		participants = append(participants, participant)
	}

	return core.Config{
		Name:         t.Name,
		Type:         core.TournamentType(t.Type),
		LegMode:      core.LegMode(t.LegMode),
		TieBreak:     core.TieBreakPolicy(t.TieBreak),
		GroupCount:   t.GroupCount,
		Participants: participants,
		Shuffle:      t.Shuffle,
		Seed:         t.Seed,
		Locale:       locale,
	}, nil
}

// Returns the id of the match that the result refers to
func (r ResultConfig) MatchId(tournament *core.Tournament) (int, error) {
	home := tournament.ParticipantByName(r.Home)
	away := tournament.ParticipantByName(r.Away)
	if home == nil || away == nil {
		return 0, fmt.Errorf("unknown participant in result %s - %s", r.Home, r.Away)
	}

	for _, m := range tournament.Matches {
		if m.HomeId == home.Id && m.AwayId == away.Id {
			return m.Id, nil
		}
	}
	return 0, fmt.Errorf("no match %s - %s in the fixture", r.Home, r.Away)
}
