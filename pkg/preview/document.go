// Package preview extracts platform_info preview data from a platform
// configuration document for consumption by the test harness.
package preview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// configMapKind is the Kubernetes resource kind that triggers unwrapping.
	configMapKind = "ConfigMap"

	// configMapDataKey is the ConfigMap data key holding the platform config.
	configMapDataKey = "platform.yaml"
)

// Load reads and parses the platform configuration at path. A Kubernetes
// ConfigMap envelope is unwrapped one level: the working document becomes
// the parsed value of data["platform.yaml"]. Empty or null documents
// resolve to an empty mapping so every downstream lookup stays total.
func Load(path string) (*yaml.Node, error) {
	// #nosec G304 -- path is from CLI args, controlled by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preview source: %w", err)
	}
	doc, err := parseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing preview source: %w", err)
	}
	return unwrapConfigMap(doc)
}

// parseDocument parses YAML bytes into the root node of the document.
func parseDocument(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return resolveRoot(&root), nil
}

// resolveRoot unwraps the document node and normalizes empty or null
// documents to an empty mapping.
func resolveRoot(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return emptyMapping()
		}
		n = resolved(n.Content[0])
	}
	if n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == nullTag) {
		return emptyMapping()
	}
	return n
}

// unwrapConfigMap replaces a ConfigMap envelope with its embedded platform
// config. Unwrapping is one level only and triggers strictly on
// kind == "ConfigMap".
func unwrapConfigMap(doc *yaml.Node) (*yaml.Node, error) {
	if stringAt(doc, "kind") != configMapKind {
		return doc, nil
	}
	embedded := lookup(doc, "data", configMapDataKey)
	if embedded == nil || embedded.Kind != yaml.ScalarNode {
		return emptyMapping(), nil
	}
	inner, err := parseDocument([]byte(embedded.Value))
	if err != nil {
		return nil, fmt.Errorf("parsing embedded %s: %w", configMapDataKey, err)
	}
	return inner, nil
}

// emptyMapping returns a fresh empty YAML mapping node.
func emptyMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}
