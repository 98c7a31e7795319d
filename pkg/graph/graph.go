// Package graph implements the read-only query layer over a loaded network:
// node and link lookup, search, shortest paths, temporal projection and
// simple statistics. A Graph never mutates the network it was built from and
// is safe for concurrent use.
package graph

import (
	"errors"

	"github.com/lobbynetz/backend/pkg/common"

	"github.com/tidwall/btree"
)

var (
	// ErrNotFound is returned when a node id does not exist.
	ErrNotFound = errors.New("graph: not found")

	// ErrEmptyQuery is returned when a search term is empty.
	ErrEmptyQuery = errors.New("graph: search query is required")

	// ErrNoPath is returned when no path connects two nodes.
	ErrNoPath = errors.New("graph: no path found")

	// ErrInvalidRange is returned when a lower bound exceeds its upper bound.
	ErrInvalidRange = errors.New("graph: invalid range")
)

// Graph is an indexed, immutable view of a common.Network.
type Graph struct {
	network common.Network

	// byID maps a node id to its position in network.Nodes. On duplicate
	// ids the first occurrence wins.
	byID map[string]int

	// incident maps an endpoint id to the positions of every link touching
	// it, in stored order. Self-loops are listed once. Endpoints that do not
	// resolve to a node are indexed too so traversal sees the same edges a
	// scan of the link list would.
	incident map[string][]int

	scores *btree.BTreeG[scoreEntry]
}

// New indexes network for querying. The caller must not modify network
// afterwards.
func New(network common.Network) *Graph {
	g := &Graph{
		network:  network,
		byID:     make(map[string]int, len(network.Nodes)),
		incident: make(map[string][]int, len(network.Nodes)),
		scores:   btree.NewBTreeG[scoreEntry](scoreEntryLess),
	}

	for i, node := range network.Nodes {
		if _, exists := g.byID[node.ID]; exists {
			continue
		}
		g.byID[node.ID] = i
		if node.Score != nil {
			g.scores.Set(scoreEntry{score: *node.Score, index: i})
		}
	}

	for i, link := range network.Links {
		g.incident[link.Source] = append(g.incident[link.Source], i)
		if link.Target != link.Source {
			g.incident[link.Target] = append(g.incident[link.Target], i)
		}
	}

	return g
}

// Network returns the underlying document.
func (g *Graph) Network() common.Network {
	return g.network
}

// NodeCount returns the number of nodes in the document.
func (g *Graph) NodeCount() int {
	return len(g.network.Nodes)
}

// LinkCount returns the number of links in the document.
func (g *Graph) LinkCount() int {
	return len(g.network.Links)
}

// FindNode returns the node with the given id or ErrNotFound.
func (g *Graph) FindNode(id string) (common.Node, error) {
	i, ok := g.byID[id]
	if !ok {
		return common.Node{}, ErrNotFound
	}
	return g.network.Nodes[i], nil
}

// HasNode reports whether id resolves to a node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// FindByType returns every node whose type equals nodeType, in stored order.
func (g *Graph) FindByType(nodeType string) []common.Node {
	res := make([]common.Node, 0)
	for _, node := range g.network.Nodes {
		if node.Type == nodeType {
			res = append(res, node)
		}
	}
	return res
}

// LinksByType returns every link whose type equals linkType, in stored order.
func (g *Graph) LinksByType(linkType string) []common.Link {
	res := make([]common.Link, 0)
	for _, link := range g.network.Links {
		if link.Type == linkType {
			res = append(res, link)
		}
	}
	return res
}

// ConnectionsOf returns every link touching id, in stored order. An existing
// node without links yields an empty slice; an unknown id yields ErrNotFound.
func (g *Graph) ConnectionsOf(id string) ([]common.Link, error) {
	if !g.HasNode(id) {
		return nil, ErrNotFound
	}
	return g.links(id), nil
}

func (g *Graph) links(id string) []common.Link {
	indices := g.incident[id]
	res := make([]common.Link, 0, len(indices))
	for _, i := range indices {
		res = append(res, g.network.Links[i])
	}
	return res
}
