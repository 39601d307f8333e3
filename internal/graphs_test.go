package internal

import (
	"reflect"
	"testing"
)

func TestDominanceCycles(t *testing.T) {
	g, err := NewDominanceGraph([]int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}

	edges := [][2]int{
		{1, 2}, {2, 3}, {3, 1},
		{3, 4},
		{5, 6}, {6, 5},
	}
	for _, e := range edges {
		if err := g.AddDominance(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}

	if err := g.AddDominance(1, 2); err != nil {
		t.Fatal("Adding an existing dominance failed")
	}

	cycles, err := g.Cycles()
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(cycles, [][]int{{1, 2, 3}, {5, 6}}) {
		t.Fatalf("Unexpected cycles %v", cycles)
	}
}

func TestDominanceWithoutCycles(t *testing.T) {
	g, err := NewDominanceGraph([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	_ = g.AddDominance(1, 2)
	_ = g.AddDominance(2, 3)
	_ = g.AddDominance(1, 3)

	cycles, err := g.Cycles()
	if err != nil {
		t.Fatal(err)
	}
	if len(cycles) != 0 {
		t.Fatal("An ordered dominance graph has cycles")
	}

	if err := g.AddDominance(1, 9); err == nil {
		t.Fatal("A dominance over an unknown participant was added")
	}
}

func TestDominanceDuplicateNodes(t *testing.T) {
	g, err := NewDominanceGraph([]int{1, 2, 2, 3})
	if err != nil {
		t.Fatal("Duplicate nodes were not ignored")
	}

	order, err := g.Order()
	if err != nil {
		t.Fatal(err)
	}
	if order != 3 {
		t.Fatalf("The graph has %d nodes instead of 3", order)
	}
}
