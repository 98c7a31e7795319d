package graph

import (
	"regexp"
	"strconv"

	"github.com/lobbynetz/backend/pkg/common"
)

const (
	openStart = 0
	openEnd   = 9999
)

var reYear = regexp.MustCompile(`(?:^|\D)(\d{4})(?:\D|$)`)

// StartYear is the first year a link is active: the first standalone
// four-digit token of its since bound, or 0 when there is none.
func StartYear(link common.Link) int {
	return parseYear(link.Since, openStart)
}

// EndYear is the last year a link is active: the first standalone
// four-digit token of its until bound, or 9999 when there is none.
func EndYear(link common.Link) int {
	return parseYear(link.Until, openEnd)
}

// ActiveIn reports whether the link is active at some point during year.
func ActiveIn(link common.Link, year int) bool {
	return StartYear(link) <= year && year <= EndYear(link)
}

func parseYear(bound string, fallback int) int {
	m := reYear.FindStringSubmatch(bound)
	if m == nil {
		return fallback
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	return year
}

// FilterByYear projects network onto the links active during year and the
// nodes referenced by at least one of them. Both keep their stored order.
// The input is not modified.
func FilterByYear(network common.Network, year int) common.Network {
	links := make([]common.Link, 0)
	referenced := map[string]struct{}{}
	for _, link := range network.Links {
		if !ActiveIn(link, year) {
			continue
		}
		links = append(links, link)
		referenced[link.Source] = struct{}{}
		referenced[link.Target] = struct{}{}
	}

	nodes := make([]common.Node, 0)
	for _, node := range network.Nodes {
		if _, ok := referenced[node.ID]; ok {
			nodes = append(nodes, node)
		}
	}

	return common.Network{Nodes: nodes, Links: links}
}

// InYear returns a Graph over FilterByYear(g.Network(), year).
func (g *Graph) InYear(year int) *Graph {
	return New(FilterByYear(g.network, year))
}
