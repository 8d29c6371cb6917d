package dict

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML mapping of source terms to target terms, preserving
// document order. Order matters because it breaks matching ties between
// equal-length terms.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	return parseYAML(data)
}

func parseYAML(data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary file: %w", err)
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("dictionary file must be a mapping of source to target terms")
	}

	entries := make([]Entry, 0, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		value := root.Content[i+1]

		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("dictionary entry %q: target must be a string", key.Value)
		}

		entries = append(entries, Entry{Source: key.Value, Target: value.Value})
	}

	return entries, nil
}
