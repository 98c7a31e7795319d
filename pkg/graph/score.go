package graph

import (
	"math"

	"github.com/lobbynetz/backend/pkg/common"
)

type scoreEntry struct {
	score float64
	index int
}

func scoreEntryLess(a, b scoreEntry) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.index < b.index
}

// ScoreRange returns the nodes whose lobby score lies in [minScore, maxScore],
// ordered by score and then by stored order. Nodes without a score never
// match.
func (g *Graph) ScoreRange(minScore, maxScore float64) ([]common.Node, error) {
	if math.IsNaN(minScore) || math.IsNaN(maxScore) || minScore > maxScore {
		return nil, ErrInvalidRange
	}

	res := make([]common.Node, 0)
	g.scores.Ascend(scoreEntry{score: minScore, index: -1}, func(e scoreEntry) bool {
		if e.score > maxScore {
			return false
		}
		res = append(res, g.network.Nodes[e.index])
		return true
	})
	return res, nil
}
