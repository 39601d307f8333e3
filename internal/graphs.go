// This file contains thin wrappers around the graph module
// for managing graph structures in the standings data.
package internal

import (
	"cmp"
	"errors"
	"slices"

	"github.com/dominikbraun/graph"
)

// A DominanceGraph has participant ids as its nodes. A directed
// edge from a to b means that a ranks before b in a direct comparison.
//
// A consistent ranking forms an acyclic graph. Cycles reveal
// groups of participants that can not be ordered by their
// direct comparisons alone.
type DominanceGraph struct {
	graph.Graph[int, int]
}

func (g *DominanceGraph) AddDominance(winner, loser int) error {
	err := g.Graph.AddEdge(winner, loser)
	if errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return nil
	}
	return err
}

// Returns the strongly connected components that have more than
// one node. Each cycle is sorted ascending and the cycles are ordered
// by their smallest node.
func (g *DominanceGraph) Cycles() ([][]int, error) {
	components, err := graph.StronglyConnectedComponents(g.Graph)
	if err != nil {
		return nil, err
	}

	cycles := make([][]int, 0, len(components))
	for _, c := range components {
		if len(c) < 2 {
			continue
		}
		cycle := slices.Clone(c)
		slices.Sort(cycle)
		cycles = append(cycles, cycle)
	}
	slices.SortFunc(cycles, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })

	return cycles, nil
}

// Creates a graph with the given nodes. Duplicate nodes are
// added once.
func NewDominanceGraph(nodes []int) (*DominanceGraph, error) {
	g := graph.New(graph.IntHash, graph.Directed())
	for _, n := range nodes {
		err := g.AddVertex(n)
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, err
		}
	}
	return &DominanceGraph{Graph: g}, nil
}
