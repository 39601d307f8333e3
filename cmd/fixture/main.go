package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/ezBadminton/gofixture/core"
	"github.com/ezBadminton/gofixture/internal/config"
	"github.com/ezBadminton/gofixture/results"
)

func main() {
	configPath := flag.String("config", "tournament.yaml", "path to the tournament file")
	asJSON := flag.Bool("json", false, "print the tournament as JSON instead of tables")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	logger = logger.With("service", "fixture")
	slog.SetDefault(logger)

	if err := run(cfg, os.Stdout, *asJSON); err != nil {
		slog.Error("Failed to build tournament", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, out io.Writer, asJSON bool) error {
	tournamentConfig, err := cfg.TournamentConfig()
	if err != nil {
		return err
	}

	tournament, err := core.AssembleTournament(tournamentConfig)
	var schedulingErr *core.SchedulingError
	if errors.As(err, &schedulingErr) {
		slog.Warn("Home/away correction failed, keeping the generated sides", "error", err)
	} else if err != nil {
		return err
	}

	slog.Info("Tournament assembled",
		"name", tournament.Name,
		"groups", len(tournament.Groups),
		"participants", len(tournament.Participants),
		"matches", len(tournament.Matches),
	)

	recorder := results.NewRecorder(tournament, func(c results.Change) {
		slog.Debug("Result recorded", "match", c.Match.Id, "group", c.Group)
	})
	for _, result := range cfg.Results {
		matchId, err := result.MatchId(tournament)
		if err != nil {
			return err
		}
		if _, err := recorder.Record(matchId, result.HomeScore, result.AwayScore); err != nil {
			return fmt.Errorf("result %s - %s: %w", result.Home, result.Away, err)
		}
	}

	if asJSON {
		snapshot, err := recorder.Snapshot()
		if err != nil {
			return err
		}
		var indented bytes.Buffer
		if err := json.Indent(&indented, snapshot, "", "  "); err != nil {
			return err
		}
		indented.WriteByte('\n')
		_, err = indented.WriteTo(out)
		return err
	}

	standings := recorder.Standings()
	for _, group := range tournament.Groups {
		if err := printGroup(out, tournament, group, standings[group.Name]); err != nil {
			return err
		}
	}

	return nil
}

func printGroup(out io.Writer, tournament *core.Tournament, group *core.Group, ranking []*core.Participant) error {
	names := make(map[int]string, len(tournament.Participants))
	for _, p := range tournament.Participants {
		names[p.Id] = p.Name
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "%s - Standings\n", group.Name)
	fmt.Fprintln(w, "#\tTeam\tP\tW\tD\tL\tGF\tGA\tAV\tPts")
	for i, p := range ranking {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			i+1, p.Name, p.MatchesPlayed, p.Wins, p.Draws, p.Losses,
			p.GoalsFor, p.GoalsAgainst, p.GeneralAverage(), p.Points)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s - Fixture\n", group.Name)
	fmt.Fprintln(w, "Round\tHome\tAway\tScore")
	for _, round := range core.RoundsOf(tournament.GroupMatches(group)) {
		for _, m := range round.Matches {
			score := ""
			if m.IsPlayed() {
				score = fmt.Sprintf("%d - %d", *m.HomeScore, *m.AwayScore)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", round.Number, names[m.HomeId], names[m.AwayId], score)
		}
	}
	fmt.Fprintln(w)

	if tournament.TieBreak == core.TieBreakHeadToHead {
		cycles, err := core.HeadToHeadCycles(group.Participants, tournament.GroupMatches(group))
		if err != nil {
			return err
		}
		for _, cycle := range cycles {
			slog.Warn("Head-to-head results are circular, the order is not decisive",
				"group", group.Name, "participants", len(cycle))
		}
	}

	return w.Flush()
}
