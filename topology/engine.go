// Package topology turns a flat list of machine addresses into the named
// role groups a Hadoop virtual cluster needs. The assignment is a single
// deterministic pass over a fixed role catalogue; it does no network I/O and
// never inspects the machines behind the addresses.
package topology

import (
	"fmt"
	"net"

	"github.com/rohitraj29/big-data-stack/inventory"
)

// Engine assigns input addresses to the fixed role catalogue.
type Engine struct {
	config *Config
	logf   inventory.Logf
}

// New creates an engine for one run. logf receives warning-level anomalies
// and may be nil.
func New(config *Config, logf inventory.Logf) (*Engine, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Engine{config: config, logf: logf}, nil
}

// Build runs the assignment: one node per input address, then the role
// catalogue top to bottom. Prefix roles slice from the head of the node
// list, so on small clusters the same nodes carry several roles; that
// overlap is intended, not an artifact. Returns a ConfigurationError when
// the input has fewer nodes than a role requires.
func (e *Engine) Build() (*inventory.Inventory, error) {
	nodes := make([]*inventory.Node, len(e.config.Addresses))
	for i, addr := range e.config.Addresses {
		if net.ParseIP(addr) == nil {
			e.logf("address %q does not parse as an IP address, using it verbatim", addr)
		}
		nodes[i] = inventory.NewNode(fmt.Sprintf("%s%d", e.config.ClusterName, i), addr, e.logf)
	}

	inv := inventory.New(e.logf)
	for _, role := range Roles() {
		placed := nodes
		if !role.All {
			if len(nodes) < role.Min {
				return nil, inventory.Configf(
					"insufficient nodes: group %s needs %d node(s), only %d address(es) given",
					role.Group, role.Min, len(nodes))
			}
			placed = nodes[:role.Min]
		}
		for i, n := range placed {
			inv.AddNode(role.Group, n)
			if role.IndexVar != "" {
				n.SetVar(role.IndexVar, inventory.Int(i+1))
			}
		}
		if role.Union != "" {
			inv.UnionInto(role.Group, role.Union)
		}
	}
	return inv, nil
}
