package common

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attributes holds the attributes of a node or link that have no typed field.
// Values are kept as raw JSON so they are re-emitted exactly as loaded, in
// the order they appeared in the source document.
type Attributes = orderedmap.OrderedMap[string, json.RawMessage]

// Network is the complete graph document: every node and every link.
// It is loaded once and never mutated afterwards.
type Network struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Node represents an actor in the network such as a politician, a company,
// an association or a ministry.
//
// ID is unique within a dataset. Type is an open category tag. The remaining
// typed fields mirror the attributes the dashboard knows how to render; an
// empty string means the attribute is absent. Anything else is kept in Extra.
type Node struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	Party                string   `json:"party,omitempty"`
	Position             string   `json:"position,omitempty"`
	Industry             string   `json:"industry,omitempty"`
	Score                *float64 `json:"score,omitempty"`
	Image                string   `json:"image,omitempty"`
	Since                string   `json:"since,omitempty"`
	Until                string   `json:"until,omitempty"`
	Website              string   `json:"website,omitempty"`
	Minister             string   `json:"minister,omitempty"`
	Budget               string   `json:"budget,omitempty"`
	Revenue              string   `json:"revenue,omitempty"`
	Employees            string   `json:"employees,omitempty"`
	Members              string   `json:"members,omitempty"`
	Founded              string   `json:"founded,omitempty"`
	PoliticalOrientation string   `json:"political_orientation,omitempty"`
	PreviousEmployer     string   `json:"previous_employer,omitempty"`

	Extra *Attributes `json:"-"`
}

// Link represents a relationship between two nodes. Source and Target always
// hold node identifiers; resolving them to nodes is up to the caller.
// Links carry no direction for traversal, the order is kept for display.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`

	Description string `json:"description,omitempty"`
	Since       string `json:"since,omitempty"`
	Until       string `json:"until,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Year        string `json:"year,omitempty"`

	Extra *Attributes `json:"-"`
}

// Touches reports whether id is one of the link's endpoints.
func (l Link) Touches(id string) bool {
	return l.Source == id || l.Target == id
}

// Other returns the endpoint opposite to id. For a self-loop that is id itself.
func (l Link) Other(id string) string {
	if l.Source == id {
		return l.Target
	}
	return l.Source
}

// Joins reports whether the link connects a and b in either direction.
func (l Link) Joins(a, b string) bool {
	return (l.Source == a && l.Target == b) || (l.Source == b && l.Target == a)
}

// Attr returns an untyped attribute by key.
func (n Node) Attr(key string) (json.RawMessage, bool) {
	if n.Extra == nil {
		return nil, false
	}
	return n.Extra.Get(key)
}

// Attr returns an untyped attribute by key.
func (l Link) Attr(key string) (json.RawMessage, bool) {
	if l.Extra == nil {
		return nil, false
	}
	return l.Extra.Get(key)
}
