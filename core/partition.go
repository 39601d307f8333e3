package core

import "fmt"

// A Group is a named subset of a tournament's participants.
// Each group plays its own round robin.
type Group struct {
	Name         string
	Participants []*Participant
}

// Returns true when the participant is in this group
func (g *Group) Contains(participantId int) bool {
	for _, p := range g.Participants {
		if p.Id == participantId {
			return true
		}
	}
	return false
}

// Splits the participants into numGroups groups named
// "Group 1" to "Group n".
//
// The participants are dealt out one by one so that the participant
// at index i lands in group i mod numGroups. The relative order is kept
// inside each group. When there are more groups than participants
// the surplus groups are empty.
func PartitionGroups(participants []*Participant, numGroups int) ([]*Group, error) {
	if numGroups < 1 {
		return nil, configError("groupCount", ErrInvalidGroupCount)
	}

	maxGroupSize := len(participants) / numGroups
	if len(participants)%numGroups != 0 {
		maxGroupSize += 1
	}

	groups := make([]*Group, 0, numGroups)
	for i := 0; i < numGroups; i++ {
		group := &Group{
			Name:         fmt.Sprintf("Group %d", i+1),
			Participants: make([]*Participant, 0, maxGroupSize),
		}
		groups = append(groups, group)
	}

	for i, p := range participants {
		group := groups[i%numGroups]
		group.Participants = append(group.Participants, p)
	}

	return groups, nil
}
