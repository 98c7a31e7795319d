package graph

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

const topConnectedLimit = 5

// Stats summarizes a network.
type Stats struct {
	Nodes        int            `json:"nodes"`
	Links        int            `json:"links"`
	NodesByType  map[string]int `json:"nodesByType"`
	LinksByType  map[string]int `json:"linksByType"`
	Components   int            `json:"components"`
	Isolated     int            `json:"isolated"`
	TopConnected []Degree       `json:"topConnected"`
}

// Degree is the number of links incident to a node.
type Degree struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Degree int    `json:"degree"`
}

// Stats computes counts per type, the number of connected components and the
// most connected nodes. Components only consider links between existing
// nodes; self-loops and dangling endpoints are ignored.
func (g *Graph) Stats() Stats {
	stats := Stats{
		Nodes:        len(g.network.Nodes),
		Links:        len(g.network.Links),
		NodesByType:  map[string]int{},
		LinksByType:  map[string]int{},
		TopConnected: make([]Degree, 0, topConnectedLimit),
	}

	for _, node := range g.network.Nodes {
		stats.NodesByType[node.Type]++
	}
	for _, link := range g.network.Links {
		stats.LinksByType[link.Type]++
	}

	undirected := simple.NewUndirectedGraph()
	for id, i := range g.byID {
		undirected.AddNode(simple.Node(int64(i)))
		if len(g.incident[id]) == 0 {
			stats.Isolated++
		}
	}
	for _, link := range g.network.Links {
		from, okFrom := g.byID[link.Source]
		to, okTo := g.byID[link.Target]
		if !okFrom || !okTo || from == to {
			continue
		}
		undirected.SetEdge(undirected.NewEdge(simple.Node(int64(from)), simple.Node(int64(to))))
	}
	stats.Components = len(topo.ConnectedComponents(undirected))

	degrees := make([]Degree, 0, len(g.byID))
	for i, node := range g.network.Nodes {
		if g.byID[node.ID] != i {
			continue
		}
		degrees = append(degrees, Degree{
			ID:     node.ID,
			Name:   node.Name,
			Type:   node.Type,
			Degree: len(g.incident[node.ID]),
		})
	}
	slices.SortStableFunc(degrees, func(a, b Degree) int {
		return cmp.Compare(b.Degree, a.Degree)
	})
	stats.TopConnected = append(stats.TopConnected, degrees[:min(len(degrees), topConnectedLimit)]...)

	return stats
}
