package preview

import (
	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// lookup walks a path of mapping keys and returns the value node at the
// end, or nil at the first missing or non-mapping segment. Absence at any
// depth reads as absence of the whole path; it never fails part-way.
func lookup(n *yaml.Node, keys ...string) *yaml.Node {
	for _, key := range keys {
		n = mappingValue(n, key)
		if n == nil {
			return nil
		}
	}
	return n
}

// mappingValue returns the value for key in a mapping node, or nil when n
// is not a mapping or the key is absent.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind == yaml.ScalarNode && k.Value == key {
			return resolved(n.Content[i+1])
		}
	}
	return nil
}

// resolved follows alias nodes to their anchor target.
func resolved(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

// section resolves a nested path to a mapping node, treating a missing,
// null, or non-mapping value as an empty mapping.
func section(doc *yaml.Node, keys ...string) *yaml.Node {
	n := lookup(doc, keys...)
	if n == nil || n.Kind != yaml.MappingNode {
		return emptyMapping()
	}
	return n
}

// stringAt returns the scalar string at key, or "" when the key is absent
// or holds a non-scalar.
func stringAt(n *yaml.Node, key string) string {
	v := mappingValue(n, key)
	if v == nil || v.Kind != yaml.ScalarNode || v.Tag == nullTag {
		return ""
	}
	return v.Value
}

// stringsAt returns the scalar entries of the sequence at key, or an
// empty slice when the key is absent or holds a non-sequence.
func stringsAt(n *yaml.Node, key string) []string {
	out := []string{}
	v := mappingValue(n, key)
	if v == nil || v.Kind != yaml.SequenceNode {
		return out
	}
	for _, item := range v.Content {
		item = resolved(item)
		if item.Kind == yaml.ScalarNode {
			out = append(out, item.Value)
		}
	}
	return out
}

// truthyAt coerces the value at key to a boolean.
func truthyAt(n *yaml.Node, key string) bool {
	return truthy(mappingValue(n, key))
}

// truthy applies dynamic-language boolean coercion to a YAML node:
// booleans as-is, numbers non-zero, strings non-empty, null and absent
// false, sequences and mappings non-empty.
func truthy(n *yaml.Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case nullTag:
			return false
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return false
			}
			return b
		case "!!int", "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return false
			}
			return f != 0
		default:
			return n.Value != ""
		}
	case yaml.SequenceNode, yaml.MappingNode:
		return len(n.Content) > 0
	default:
		return false
	}
}

// mappingKeys returns the keys of a mapping node in source order, or an
// empty slice when n is not a mapping.
func mappingKeys(n *yaml.Node) []string {
	keys := []string{}
	if n == nil || n.Kind != yaml.MappingNode {
		return keys
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Kind == yaml.ScalarNode {
			keys = append(keys, n.Content[i].Value)
		}
	}
	return keys
}
