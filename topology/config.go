package topology

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default configuration values.
const (
	DefaultClusterName = "hadoop"
	DefaultOutputDir   = "."
)

// Output layout below the resolved output root.
const (
	HostVarsDirName   = "host_vars"
	InventoryFileName = "inventory"
)

// Config holds the input of one generator run.
type Config struct {
	// ClusterName prefixes every node name: <ClusterName><ordinal>.
	ClusterName string

	// Addresses are the machine endpoints to assign, in order. The position
	// in this slice becomes the node's name suffix.
	Addresses []string

	// OutputDir is the output root as given on the command line. Host vars
	// files land under <resolved OutputDir>/host_vars.
	OutputDir string
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ClusterName: DefaultClusterName,
		OutputDir:   DefaultOutputDir,
	}
}

// Validate checks if the config is valid.
func (c *Config) Validate() error {
	if c.ClusterName == "" {
		return ErrClusterNameRequired
	}
	if c.OutputDir == "" {
		return ErrOutputDirRequired
	}
	return nil
}

// ResolveOutputDir expands the configured output root: the user's home
// directory for a leading ~, then environment variables, then relative to
// absolute.
func (c *Config) ResolveOutputDir() (string, error) {
	dir := c.OutputDir
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding ~ in output directory: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	dir = os.ExpandEnv(dir)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory: %w", err)
	}
	return abs, nil
}

// HostVarsDir returns the resolved directory the per-node vars files are
// written to.
func (c *Config) HostVarsDir() (string, error) {
	root, err := c.ResolveOutputDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, HostVarsDirName), nil
}
