package geo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Property is a single named attribute of a feature.
type Property struct {
	Value interface{}
	Key   string
}

// Properties is an ordered set of feature attributes.
// Encoders keep the insertion order, which a plain map would lose.
type Properties []Property

// Get returns the value stored under key.
func (p Properties) Get(key string) (interface{}, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return nil, false
}

// Keys returns property names in order.
func (p Properties) Keys() []string {
	keys := make([]string, len(p))
	for i, prop := range p {
		keys[i] = prop.Key
	}
	return keys
}

// MarshalJSON encodes the properties as a JSON object in insertion order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(prop.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(prop.Value)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", prop.Key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping its key order.
// Integral numbers decode to int64, other numbers to float64.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("properties must be a JSON object")
	}

	props := Properties{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected property key %v", keyTok)
		}

		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}

		props = append(props, Property{Key: key, Value: normalizeNumber(raw)})
	}

	*p = props
	return nil
}

// MarshalYAML encodes the properties as a YAML mapping in insertion order.
func (p Properties) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, prop := range p {
		key := &yaml.Node{}
		key.SetString(prop.Key)

		value := &yaml.Node{}
		if err := value.Encode(prop.Value); err != nil {
			return nil, fmt.Errorf("property %q: %w", prop.Key, err)
		}

		node.Content = append(node.Content, key, value)
	}

	return node, nil
}

func normalizeNumber(v interface{}) interface{} {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
