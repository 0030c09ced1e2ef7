package manifest

import (
	"gopkg.in/yaml.v3"
)

// Map is a string-keyed mapping that remembers insertion order. Manifest
// trees are built from *Map, []interface{} and scalar leaves; rendering a
// Map produces a YAML mapping whose keys appear in the order they were set.
type Map struct {
	items []MapItem
}

// MapItem is a single key/value pair held by a Map.
type MapItem struct {
	Key   string
	Value interface{}
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{}
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended.
func (m *Map) Set(key string, value interface{}) {
	for i := range m.items {
		if m.items[i].Key == key {
			m.items[i].Value = value
			return
		}
	}
	m.items = append(m.items, MapItem{Key: key, Value: value})
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (interface{}, bool) {
	for i := range m.items {
		if m.items[i].Key == key {
			return m.items[i].Value, true
		}
	}
	return nil, false
}

// Delete removes key, reporting whether it was present.
func (m *Map) Delete(key string) bool {
	for i := range m.items {
		if m.items[i].Key == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of pairs.
func (m *Map) Len() int {
	return len(m.items)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.items))
	for i, item := range m.items {
		keys[i] = item.Key
	}
	return keys
}

// Iterate calls fn for each pair in insertion order.
func (m *Map) Iterate(fn func(key string, value interface{})) {
	for _, item := range m.items {
		fn(item.Key, item.Value)
	}
}

// MarshalYAML renders the map as an order-preserving YAML mapping node.
// Building the node by hand keeps the emitter from sorting keys the way it
// does for plain Go maps, and node trees never carry anchors or aliases.
func (m *Map) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, item := range m.items {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(item.Key); err != nil {
			return nil, err
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
