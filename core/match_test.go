package core

import "testing"

func TestMatchScore(t *testing.T) {
	m := &Match{Id: 1, HomeId: 1, AwayId: 2, Round: 1}
	if m.IsPlayed() {
		t.Fatal("A match without a score counts as played")
	}

	m.SetScore(3, 1)
	if !m.IsPlayed() {
		t.Fatal("A match with a score does not count as played")
	}

	scored, conceded := m.GoalsOf(2)
	if scored != 1 || conceded != 3 {
		t.Fatal("The goals of the away side are wrong")
	}

	m.SwapSides()
	eq1 := m.HomeId == 2 && m.AwayId == 1
	eq2 := *m.HomeScore == 1 && *m.AwayScore == 3
	if !eq1 || !eq2 {
		t.Fatal("The score did not move with the sides")
	}

	m.SetScore(-1, 0)
	if m.IsPlayed() {
		t.Fatal("A negative score counts as played")
	}

	m.ClearScore()
	if m.HomeScore != nil || m.AwayScore != nil {
		t.Fatal("The score was not cleared")
	}

	if !m.IsBetween(1, 2) || !m.IsBetween(2, 1) || m.IsBetween(1, 3) {
		t.Fatal("IsBetween does not ignore the sides")
	}
}

func TestRoundsOf(t *testing.T) {
	matches := []*Match{
		{Id: 1, Round: 3},
		{Id: 2, Round: 1},
		{Id: 3, Round: 3},
		{Id: 4, Round: 2},
	}

	rounds := RoundsOf(matches)
	if len(rounds) != 3 {
		t.Fatal("The matches were not grouped into 3 rounds")
	}

	eq1 := rounds[0].Number == 1 && rounds[1].Number == 2 && rounds[2].Number == 3
	eq2 := len(rounds[2].Matches) == 2 && rounds[2].Matches[0].Id == 1 && rounds[2].Matches[1].Id == 3
	if !eq1 || !eq2 {
		t.Fatal("The rounds are not ascending or lost the match order")
	}

	if len(RoundsOf(nil)) != 0 {
		t.Fatal("No matches produced rounds")
	}
}
