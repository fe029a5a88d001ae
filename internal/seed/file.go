package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fourcreative/studiodesk/internal/store"
)

// FromFile loads a seed dataset from a YAML file. The file uses the same
// field names the snapshot marshals to, and collections it omits simply
// start empty. No validation happens beyond parsing; the store accepts
// whatever the file says, dangling references included.
func FromFile(path string) (store.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var snap store.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return snap, nil
}
