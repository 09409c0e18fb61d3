package inventory

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteHostVars writes one YAML vars file per node in the all-nodes set to
// dir/<node name>, creating dir and any missing parents first. A dir that
// exists but is not a directory is a ConfigurationError. An existing vars
// file is overwritten with a warning.
func (inv *Inventory) WriteHostVars(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return Configf("host vars path %s exists and is not a directory", dir)
	case err != nil:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating host vars directory: %w", err)
		}
	}

	for _, n := range inv.all {
		path := filepath.Join(dir, n.name)
		if _, err := os.Stat(path); err == nil {
			inv.logf("overwriting existing host vars file %s", path)
		}
		data, err := n.MarshalVars()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
