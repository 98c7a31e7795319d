package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lobbynetz/backend/pkg/common"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Decode parses a network document. YAML documents are converted to JSON
// first so both formats go through the same codec and keep attribute order.
func Decode(content []byte, format DatasetFormat) (common.Network, error) {
	if format == DatasetFormatYAML {
		converted, err := yamlToJSON(content)
		if err != nil {
			return common.Network{}, err
		}
		content = converted
	}

	var network common.Network
	dec := json.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(&network); err != nil {
		return common.Network{}, err
	}
	if network.Nodes == nil {
		network.Nodes = []common.Node{}
	}
	if network.Links == nil {
		network.Links = []common.Link{}
	}
	return network, nil
}

func yamlToJSON(content []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return []byte("{}"), nil
	}

	value, err := yamlValue(&doc)
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		m := orderedmap.New[string, any]()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			value, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(key.Value, value)
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			value, err := yamlValue(child)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool", "!!int", "!!float":
			var value any
			if err := n.Decode(&value); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return value, nil
		default:
			// Strings and timestamps keep their literal text.
			return n.Value, nil
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
	}
}
