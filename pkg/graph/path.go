package graph

import (
	"github.com/lobbynetz/backend/pkg/common"
)

// PathDetails holds the resolved form of a path. Nodes has one entry per path
// element and is nil where an id does not resolve. Links has one entry per
// consecutive pair that some link joins.
type PathDetails struct {
	Nodes []*common.Node `json:"nodes"`
	Links []common.Link  `json:"links"`
}

// ShortestPath returns the node ids of an unweighted shortest path from
// source to target, both included, treating every link as bidirectional.
//
// Breadth-first search visits links in stored order and returns as soon as
// target is discovered, so among several shortest paths the one reached
// through the earliest stored links wins.
//
// A path from a node to itself is the single element [source] when the node
// exists. ErrNoPath is returned when the two ids are not connected.
func (g *Graph) ShortestPath(source, target string) ([]string, error) {
	if source == target {
		if !g.HasNode(source) {
			return nil, ErrNoPath
		}
		return []string{source}, nil
	}

	parent := map[string]string{}
	visited := map[string]struct{}{source: {}}
	queue := []string{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, i := range g.incident[current] {
			next := g.network.Links[i].Other(current)

			if next == target {
				parent[next] = current
				return unwind(parent, source, target), nil
			}

			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			parent[next] = current
			queue = append(queue, next)
		}
	}

	return nil, ErrNoPath
}

func unwind(parent map[string]string, source, target string) []string {
	var reversed []string
	for id := target; ; id = parent[id] {
		reversed = append(reversed, id)
		if id == source {
			break
		}
	}

	path := make([]string, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = id
	}
	return path
}

// ResolvePath expands a path of ids into nodes and the links between
// consecutive elements. For each pair the first stored link joining them in
// either direction is used; pairs without such a link are skipped.
func (g *Graph) ResolvePath(path []string) PathDetails {
	details := PathDetails{
		Nodes: make([]*common.Node, 0, len(path)),
		Links: make([]common.Link, 0, max(len(path)-1, 0)),
	}

	for _, id := range path {
		if i, ok := g.byID[id]; ok {
			node := g.network.Nodes[i]
			details.Nodes = append(details.Nodes, &node)
		} else {
			details.Nodes = append(details.Nodes, nil)
		}
	}

	for i := 0; i+1 < len(path); i++ {
		if link, ok := g.linkBetween(path[i], path[i+1]); ok {
			details.Links = append(details.Links, link)
		}
	}

	return details
}

func (g *Graph) linkBetween(a, b string) (common.Link, bool) {
	for _, i := range g.incident[a] {
		if link := g.network.Links[i]; link.Joins(a, b) {
			return link, true
		}
	}
	return common.Link{}, false
}
