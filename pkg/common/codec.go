package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Keys with a typed field. true marks string fields that also accept bare
// numbers and booleans, which YAML documents and hand-written JSON often use
// for years and amounts.
var (
	nodeKeys = map[string]bool{
		"id": true, "type": true, "name": true,
		"party": true, "position": true, "industry": true, "score": false,
		"image": true, "since": true, "until": true, "website": true,
		"minister": true, "budget": true, "revenue": true, "employees": true,
		"members": true, "founded": true, "political_orientation": true,
		"previous_employer": true,
	}
	linkKeys = map[string]bool{
		"source": false, "target": false, "type": true,
		"description": true, "since": true, "until": true,
		"frequency": true, "amount": true, "year": true,
	}
)

var ErrMissingID = errors.New("node without id")

type (
	nodeAlias Node
	linkAlias Link
)

func (n Node) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(nodeAlias(n))
	if err != nil {
		return nil, err
	}
	return appendAttributes(base, n.Extra, nodeKeys)
}

func (n *Node) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var alias nodeAlias
	extra, err := decodeObject(data, nodeKeys, &alias, nil)
	if err != nil {
		return fmt.Errorf("failed to decode node: %w", err)
	}
	if alias.ID == "" {
		return ErrMissingID
	}
	alias.Extra = extra
	*n = Node(alias)
	return nil
}

func (l Link) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(linkAlias(l))
	if err != nil {
		return nil, err
	}
	return appendAttributes(base, l.Extra, linkKeys)
}

func (l *Link) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var alias linkAlias
	extra, err := decodeObject(data, linkKeys, &alias, func(key string, raw json.RawMessage) (json.RawMessage, error) {
		if key != "source" && key != "target" {
			return raw, nil
		}
		return endpointID(raw)
	})
	if err != nil {
		return fmt.Errorf("failed to decode link: %w", err)
	}
	alias.Extra = extra
	*l = Link(alias)
	return nil
}

func (n Network) MarshalJSON() ([]byte, error) {
	type wire struct {
		Nodes []Node `json:"nodes"`
		Links []Link `json:"links"`
	}
	w := wire{Nodes: n.Nodes, Links: n.Links}
	if w.Nodes == nil {
		w.Nodes = []Node{}
	}
	if w.Links == nil {
		w.Links = []Link{}
	}
	return json.Marshal(w)
}

// decodeObject splits a JSON object into its typed part, decoded into `into`,
// and the remaining keys, returned in source order.
func decodeObject(
	data []byte,
	known map[string]bool,
	into any,
	rewrite func(key string, raw json.RawMessage) (json.RawMessage, error),
) (*Attributes, error) {
	fields := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, fields); err != nil {
		return nil, err
	}

	typed := orderedmap.New[string, json.RawMessage]()
	var extra *Attributes
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		coerce, ok := known[pair.Key]
		if !ok {
			if extra == nil {
				extra = orderedmap.New[string, json.RawMessage]()
			}
			extra.Set(pair.Key, pair.Value)
			continue
		}

		value := pair.Value
		if rewrite != nil {
			var err error
			value, err = rewrite(pair.Key, value)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", pair.Key, err)
			}
		}
		if coerce {
			value = scalarAsString(value)
		}
		typed.Set(pair.Key, value)
	}

	normalized, err := json.Marshal(typed)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(normalized, into); err != nil {
		return nil, err
	}
	return extra, nil
}

func appendAttributes(base []byte, extra *Attributes, known map[string]bool) ([]byte, error) {
	if extra == nil || extra.Len() == 0 {
		return base, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(base) + 64)
	buf.Write(base[:len(base)-1])
	empty := len(bytes.TrimSpace(base)) == 2

	for pair := extra.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := known[pair.Key]; ok {
			continue
		}
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		if !empty {
			buf.WriteByte(',')
		}
		empty = false
		buf.Write(key)
		buf.WriteByte(':')
		if len(pair.Value) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(pair.Value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// endpointID accepts an identifier given as a string, a number, or a node
// object and returns it as a JSON string.
func endpointID(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || isNull(trimmed) {
		return json.RawMessage(`""`), nil
	}

	switch trimmed[0] {
	case '"':
		return trimmed, nil
	case '{':
		var ref struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(trimmed, &ref); err != nil {
			return nil, err
		}
		if len(ref.ID) == 0 {
			return nil, errors.New("endpoint object without id")
		}
		return endpointID(ref.ID)
	case '[':
		return nil, errors.New("endpoint must be an identifier")
	default:
		return scalarAsString(trimmed), nil
	}
}

func scalarAsString(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return raw
	}
	switch trimmed[0] {
	case '"', '{', '[':
		return raw
	}
	if isNull(trimmed) {
		return raw
	}
	quoted, err := json.Marshal(string(trimmed))
	if err != nil {
		return raw
	}
	return quoted
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
