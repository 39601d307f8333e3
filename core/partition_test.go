package core

import (
	"errors"
	"testing"
)

func TestPartitionGroups(t *testing.T) {
	participants := ParticipantSlice(7)

	groups, err := PartitionGroups(participants, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(groups) != 3 {
		t.Fatal("The participants were not split into 3 groups")
	}

	eq1 := groups[0].Name == "Group 1"
	eq2 := groups[1].Name == "Group 2"
	eq3 := groups[2].Name == "Group 3"
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("The groups are not named by their position")
	}

	eq1 = len(groups[0].Participants) == 3
	eq2 = len(groups[1].Participants) == 2
	eq3 = len(groups[2].Participants) == 2
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("The remaining participant was not put into the first group")
	}

	eq1 = groups[0].Participants[0] == participants[0]
	eq2 = groups[0].Participants[1] == participants[3]
	eq3 = groups[0].Participants[2] == participants[6]
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("The participants were not dealt round robin into the groups")
	}

	eq1 = groups[1].Participants[0] == participants[1]
	eq2 = groups[2].Participants[1] == participants[5]
	if !eq1 || !eq2 {
		t.Fatal("The dealing order was not kept inside the groups")
	}

	if !groups[2].Contains(3) || groups[2].Contains(1) {
		t.Fatal("Group membership is wrong")
	}
}

func TestPartitionEdgeCases(t *testing.T) {
	participants := ParticipantSlice(4)

	groups, err := PartitionGroups(participants, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || len(groups[0].Participants) != 4 {
		t.Fatal("A single group does not hold all participants")
	}

	groups, err = PartitionGroups(participants, 6)
	if err != nil {
		t.Fatal(err)
	}
	eq1 := len(groups) == 6
	eq2 := len(groups[3].Participants) == 1
	eq3 := len(groups[4].Participants) == 0 && len(groups[5].Participants) == 0
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("Surplus groups are not empty")
	}

	for _, numGroups := range []int{0, -2} {
		_, err = PartitionGroups(participants, numGroups)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || !errors.Is(err, ErrInvalidGroupCount) {
			t.Fatalf("A group count of %d did not produce a config error", numGroups)
		}
		if cfgErr.Field != "groupCount" {
			t.Fatal("The config error does not name the group count")
		}
	}
}
