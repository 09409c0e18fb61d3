package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteHostVarsOneFilePerNode(t *testing.T) {
	inv := New(nil)
	a := NewNode("foo0", "10.0.0.1", nil)
	b := NewNode("foo1", "10.0.0.2", nil)
	a.SetVar("zookeeper_id", Int(1))

	inv.AddNode("zookeepernodes", a)
	inv.AddNode("datanodes", a)
	inv.AddNode("datanodes", b)

	// Missing parents are created
	dir := filepath.Join(t.TempDir(), "deploy", "host_vars")
	require.NoError(t, inv.WriteHostVars(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	for _, n := range inv.AllNodes() {
		data, err := os.ReadFile(filepath.Join(dir, n.Name()))
		require.NoError(t, err)

		var doc map[string]interface{}
		require.NoError(t, yaml.Unmarshal(data, &doc))
		assert.Equal(t, n.Address(), doc["ansible_ssh_host"], "node %s", n.Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, "foo0"))
	require.NoError(t, err)
	assert.Equal(t, "ansible_ssh_host: 10.0.0.1\nzookeeper_id: 1\n", string(data))
}

func TestWriteHostVarsRejectsNonDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "host_vars")
	require.NoError(t, os.WriteFile(path, []byte("in the way"), 0o644))

	inv := New(nil)
	inv.AddNode("datanodes", NewNode("foo0", "10.0.0.1", nil))

	err := inv.WriteHostVars(path)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "not a directory")
}

func TestWriteHostVarsOverwriteWarns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foo0"), []byte("stale"), 0o644))

	var warnings []string
	inv := New(collectLogf(&warnings))
	inv.AddNode("datanodes", NewNode("foo0", "10.0.0.1", collectLogf(&warnings)))

	require.NoError(t, inv.WriteHostVars(dir))

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "foo0")
	assert.Contains(t, warnings[0], "overwriting")

	data, err := os.ReadFile(filepath.Join(dir, "foo0"))
	require.NoError(t, err)
	assert.Equal(t, "ansible_ssh_host: 10.0.0.1\n", string(data))
}

func TestIsConfigurationError(t *testing.T) {
	assert.True(t, IsConfigurationError(Configf("bad input: %d nodes", 0)))
	assert.False(t, IsConfigurationError(os.ErrNotExist))
	assert.False(t, IsConfigurationError(nil))
}
