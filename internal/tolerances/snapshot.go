package tolerances

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed snapshot.yaml
var snapshotYAML []byte

// LoadSnapshot parses the embedded reference table snapshot. The snapshot
// mirrors the database seed and backs the CLI and any DB-less deployment.
func LoadSnapshot() (*Table, error) {
	var raw map[string]map[string][]Row
	if err := yaml.Unmarshal(snapshotYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	partitions := make(map[Category]map[string][]Row, len(Categories()))
	for _, category := range Categories() {
		designations, ok := raw[category.Keyword()]
		if !ok {
			return nil, fmt.Errorf("snapshot missing %s partition", category)
		}
		partitions[category] = designations
	}

	return NewTable(partitions), nil
}
