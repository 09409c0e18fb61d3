package topology

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitraj29/big-data-stack/inventory"
)

func testConfig(cluster string, addresses ...string) *Config {
	return &Config{
		ClusterName: cluster,
		Addresses:   addresses,
		OutputDir:   ".",
	}
}

func memberNames(nodes []*inventory.Node) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name()
	}
	return names
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil, nil)
	require.Error(t, err)

	_, err = New(&Config{OutputDir: "."}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClusterNameRequired)

	_, err = New(testConfig("foo", "10.0.0.1"), nil)
	assert.NoError(t, err)
}

func TestBuildThreeNodeCluster(t *testing.T) {
	engine, err := New(testConfig("foo", "10.0.0.1", "10.0.0.2", "10.0.0.3"), nil)
	require.NoError(t, err)

	inv, err := engine.Build()
	require.NoError(t, err)

	// Every single-node role lands on the head of the input
	for _, group := range []string{
		GroupZookeeper,
		GroupNameNode,
		GroupJournal,
		GroupHistoryServer,
		GroupResourceManager,
		GroupFrontend,
		GroupMonitor,
	} {
		assert.Equal(t, []string{"foo0"}, memberNames(inv.Members(group)), "group %s", group)
	}

	// Workers take everything; the meta-group ends up with all nodes once each
	assert.Equal(t, []string{"foo0", "foo1", "foo2"}, memberNames(inv.Members(GroupDataNode)))
	assert.Equal(t, []string{"foo0", "foo1", "foo2"}, memberNames(inv.Members(GroupHadoop)))

	// The meta-group is created by the first union, right after namenodes
	assert.Equal(t, []string{
		GroupZookeeper,
		GroupNameNode,
		GroupHadoop,
		GroupJournal,
		GroupHistoryServer,
		GroupResourceManager,
		GroupFrontend,
		GroupMonitor,
		GroupDataNode,
	}, inv.GroupNames())

	// Addresses follow input order, names follow the ordinal
	all := inv.AllNodes()
	require.Len(t, all, 3)
	for i, n := range all {
		assert.Equal(t, fmt.Sprintf("foo%d", i), n.Name())
		assert.Equal(t, fmt.Sprintf("10.0.0.%d", i+1), n.Address())
	}

	// The zookeeper node carries its 1-based ensemble index
	zk := inv.Members(GroupZookeeper)[0]
	vars := zk.Vars()
	require.Len(t, vars, 1)
	assert.Equal(t, VarZookeeperID, vars[0].Key)
	assert.Equal(t, "1", vars[0].Value.String())
}

func TestBuildSingleNodeCarriesEveryRole(t *testing.T) {
	engine, err := New(testConfig("c", "10.0.0.1"), nil)
	require.NoError(t, err)

	inv, err := engine.Build()
	require.NoError(t, err)

	require.Len(t, inv.GroupNames(), 9)
	for _, group := range inv.GroupNames() {
		assert.Equal(t, []string{"c0"}, memberNames(inv.Members(group)), "group %s", group)
	}
	assert.Len(t, inv.AllNodes(), 1)
}

func TestBuildNoAddressesFails(t *testing.T) {
	engine, err := New(testConfig("foo"), nil)
	require.NoError(t, err)

	_, err = engine.Build()
	require.Error(t, err)
	assert.True(t, inventory.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "insufficient nodes")
	assert.Contains(t, err.Error(), GroupZookeeper)
}

func TestBuildNodeNaming(t *testing.T) {
	engine, err := New(testConfig("bd", "10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"), nil)
	require.NoError(t, err)

	inv, err := engine.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"bd0", "bd1", "bd2", "bd3"}, memberNames(inv.Members(GroupDataNode)))
}

func TestBuildWarnsOnNonIPAddress(t *testing.T) {
	var warnings []string
	logf := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	engine, err := New(testConfig("foo", "node-a.internal", "10.0.0.2"), logf)
	require.NoError(t, err)

	inv, err := engine.Build()
	require.NoError(t, err)

	// The address is kept verbatim, the anomaly is only reported
	assert.Equal(t, "node-a.internal", inv.AllNodes()[0].Address())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "node-a.internal")
}

func TestRolesCatalogueContract(t *testing.T) {
	roles := Roles()
	require.Len(t, roles, 8)

	// The playbooks select hosts by these exact group names
	groups := make([]string, len(roles))
	for i, role := range roles {
		groups[i] = role.Group
	}
	assert.Equal(t, []string{
		"zookeepernodes",
		"namenodes",
		"journalnodes",
		"historyservernodes",
		"resourcemanagernodes",
		"frontendnodes",
		"monitornodes",
		"datanodes",
	}, groups)

	// Exactly one role takes every node, the rest take the head of the input
	for _, role := range roles {
		if role.All {
			assert.Equal(t, GroupDataNode, role.Group)
			continue
		}
		assert.Equal(t, 1, role.Min, "group %s", role.Group)
	}

	assert.Equal(t, VarZookeeperID, roles[0].IndexVar)
}
