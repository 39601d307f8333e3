package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/ezBadminton/gofixture/core"
)

const testFile = `
tournament:
  name: Spring Cup
  leg_mode: double
  tie_break: head-to-head
  group_count: 2
  participants:
    - name: Kartal
      color: "#ff0000"
    - name: Martı
    - name: Şahin
    - name: Doğan
results:
  - home: Kartal
    away: Şahin
    home_score: 2
    away_score: 1
logging:
  level: debug
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(testFile))
	if err != nil {
		t.Fatal(err)
	}

	eq1 := cfg.Tournament.Name == "Spring Cup" && cfg.Tournament.LegMode == "double"
	eq2 := cfg.Tournament.GroupCount != nil && *cfg.Tournament.GroupCount == 2
	eq3 := len(cfg.Tournament.Participants) == 4 && len(cfg.Results) == 1
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("The tournament file was not parsed")
	}

	if cfg.Locale != "tr" || cfg.SlogLevel() != slog.LevelDebug {
		t.Fatal("The defaults and the log level are wrong")
	}

	tag, err := cfg.LanguageTag()
	if err != nil || tag.String() != language.Turkish.String() {
		t.Fatal("The default locale is not Turkish")
	}

	_, err = Parse([]byte("tournament: [unclosed"))
	if err == nil {
		t.Fatal("Invalid YAML was accepted")
	}
}

func TestTournamentConfig(t *testing.T) {
	cfg, err := Parse([]byte(testFile))
	if err != nil {
		t.Fatal(err)
	}

	config, err := cfg.TournamentConfig()
	if err != nil {
		t.Fatal(err)
	}
	eq1 := config.LegMode == core.DoubleLeg && config.TieBreak == core.TieBreakHeadToHead
	eq2 := config.Type == "" && *config.GroupCount == 2 && config.Locale == language.Turkish
	if !eq1 || !eq2 {
		t.Fatal("The tournament settings were not converted")
	}

	eq1 = config.Participants[0].Id == 1 && config.Participants[3].Id == 4
	eq2 = config.Participants[0].Color == "#ff0000" && config.Participants[1].Color == core.DefaultColor
	if !eq1 || !eq2 {
		t.Fatal("The participants were not converted")
	}

	tournament, err := core.AssembleTournament(config)
	if err != nil {
		t.Fatal(err)
	}

	matchId, err := cfg.Results[0].MatchId(tournament)
	if err != nil {
		t.Fatal(err)
	}
	match := tournament.Match(matchId)
	if match.HomeId != 1 || match.AwayId != 3 {
		t.Fatal("The result was mapped to the wrong match")
	}

	unknown := ResultConfig{Home: "Kartal", Away: "Serçe"}
	if _, err := unknown.MatchId(tournament); err == nil {
		t.Fatal("A result with an unknown participant was mapped")
	}

	otherGroup := ResultConfig{Home: "Kartal", Away: "Martı"}
	if _, err := otherGroup.MatchId(tournament); err == nil {
		t.Fatal("A result between two groups was mapped")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournament.yaml")
	if err := os.WriteFile(path, []byte(testFile), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvLocale, "en")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "en" || cfg.SlogLevel() != slog.LevelWarn {
		t.Fatal("The environment did not override the file")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("A missing file was loaded")
	}
}

func TestResultNamesFoldedByLocale(t *testing.T) {
	cfg, err := Parse([]byte(`
tournament:
  name: Cup
  participants:
    - name: İzmir
    - name: Iğdır
results:
  - home: izmir
    away: ığdır
    home_score: 1
    away_score: 0
`))
	if err != nil {
		t.Fatal(err)
	}

	config, err := cfg.TournamentConfig()
	if err != nil {
		t.Fatal(err)
	}
	tournament, err := core.AssembleTournament(config)
	if err != nil {
		t.Fatal(err)
	}

	matchId, err := cfg.Results[0].MatchId(tournament)
	if err != nil {
		t.Fatal("The result names were not folded with the Turkish rules")
	}
	match := tournament.Match(matchId)
	if match.HomeId != 1 || match.AwayId != 2 {
		t.Fatal("The result was mapped to the wrong match")
	}

	cfg.Locale = "not a locale!"
	if _, err := cfg.TournamentConfig(); err == nil {
		t.Fatal("An invalid locale was accepted")
	}
}
