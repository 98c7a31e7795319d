package graph

import (
	"strings"

	"github.com/lobbynetz/backend/pkg/common"
)

// Search returns the nodes whose name, party or industry contains term,
// ignoring case. An empty result is valid; an empty term is ErrEmptyQuery.
func (g *Graph) Search(term string) ([]common.Node, error) {
	if term == "" {
		return nil, ErrEmptyQuery
	}

	needle := strings.ToLower(term)
	res := make([]common.Node, 0)
	for _, node := range g.network.Nodes {
		if matches(node, needle) {
			res = append(res, node)
		}
	}
	return res, nil
}

func matches(node common.Node, needle string) bool {
	if strings.Contains(strings.ToLower(node.Name), needle) {
		return true
	}
	if node.Party != "" && strings.Contains(strings.ToLower(node.Party), needle) {
		return true
	}
	return node.Industry != "" && strings.Contains(strings.ToLower(node.Industry), needle)
}
