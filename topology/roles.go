package topology

// Group names are the contract with the playbook layer. The playbooks select
// hosts by these exact names; renaming any of them breaks the deployment.
const (
	GroupZookeeper       = "zookeepernodes"
	GroupNameNode        = "namenodes"
	GroupJournal         = "journalnodes"
	GroupHistoryServer   = "historyservernodes"
	GroupResourceManager = "resourcemanagernodes"
	GroupFrontend        = "frontendnodes"
	GroupMonitor         = "monitornodes"
	GroupDataNode        = "datanodes"

	// GroupHadoop is the derived meta-group: the union of every Hadoop
	// service role plus all worker nodes.
	GroupHadoop = "hadoopnodes"
)

// VarZookeeperID is attached to each coordination node: its 1-based position
// within the zookeeper ensemble.
const VarZookeeperID = "zookeeper_id"

// Role is one entry of the assignment catalogue: a primitive group, how many
// nodes it takes from the input, and what happens after placement.
type Role struct {
	// Group is the primitive group this role populates.
	Group string

	// Min is how many nodes the role takes from the head of the node list.
	// Every role slices from the head again, so roles overlap on small
	// clusters and a single machine can carry them all.
	Min int

	// All places every input node instead of a head slice.
	All bool

	// Union names the meta-group this role's group is unioned into
	// immediately after placement, before the next role runs.
	Union string

	// IndexVar, when set, attaches a sequential 1-based index variable to
	// each node the role places.
	IndexVar string
}

// Roles returns the assignment catalogue in processing order.
func Roles() []Role {
	return []Role{
		{Group: GroupZookeeper, Min: 1, IndexVar: VarZookeeperID},
		{Group: GroupNameNode, Min: 1, Union: GroupHadoop},
		{Group: GroupJournal, Min: 1, Union: GroupHadoop},
		{Group: GroupHistoryServer, Min: 1, Union: GroupHadoop},
		{Group: GroupResourceManager, Min: 1, Union: GroupHadoop},
		{Group: GroupFrontend, Min: 1},
		{Group: GroupMonitor, Min: 1},
		{Group: GroupDataNode, All: true, Union: GroupHadoop},
	}
}
