// Package seed provides the initial forest, either the built-in demo data or
// a YAML/JSON file supplied on the command line.
package seed

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tmux-popup-tree/internal/tree"
)

// Default returns the demo forest shown when no seed file is given.
func Default() tree.Forest {
	return tree.Forest{
		{
			ID:     "root-1",
			Label:  "Level A",
			IsOpen: true,
			Children: []*tree.Node{
				{
					ID:     "child-1",
					Label:  "Level B",
					IsOpen: true,
					Children: []*tree.Node{
						{ID: "child-1-1", Label: "Level C"},
						{ID: "child-1-2", Label: "Level C"},
					},
				},
				{ID: "child-2", Label: "Level B"},
			},
		},
	}
}

// Load reads a seed file. JSON is accepted as well since it is valid YAML.
func Load(path string) (tree.Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a forest. The document is either a list of
// nodes or a mapping with a "nodes" list.
func Parse(data []byte) (tree.Forest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	var f tree.Forest
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	case yaml.MappingNode:
		var wrapped struct {
			Nodes tree.Forest `yaml:"nodes"`
		}
		if err := root.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		f = wrapped.Nodes
	default:
		return nil, fmt.Errorf("decode: expected a list of nodes")
	}
	if err := tree.Validate(f); err != nil {
		return nil, err
	}
	return f, nil
}
