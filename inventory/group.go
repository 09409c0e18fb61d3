package inventory

import (
	"fmt"
	"strings"
)

// group is one membership list, keyed by name in the Inventory. members stays
// duplicate-free by node identity; present tracks membership so repeated adds
// are no-ops.
type group struct {
	members []*Node
	present map[*Node]bool
}

// Inventory is the group table for one run: every named group in creation
// order plus the deduplicated set of all nodes ever placed in a group. It is
// built single-threaded by the assignment engine and read-only once
// serialization starts, so it carries no locking.
type Inventory struct {
	order  []string
	groups map[string]*group
	all    []*Node
	seen   map[*Node]bool
	logf   Logf
}

// New creates an empty inventory. logf receives warning-level anomalies.
func New(logf Logf) *Inventory {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Inventory{
		groups: make(map[string]*group),
		seen:   make(map[*Node]bool),
		logf:   logf,
	}
}

// AddNode places n in the named group, creating the group on first use.
// Adding the same node to the same group twice is a no-op; the node is
// registered in the all-nodes set either way.
func (inv *Inventory) AddNode(groupName string, n *Node) {
	g, ok := inv.groups[groupName]
	if !ok {
		g = &group{present: make(map[*Node]bool)}
		inv.groups[groupName] = g
		inv.order = append(inv.order, groupName)
	}
	if !g.present[n] {
		g.present[n] = true
		g.members = append(g.members, n)
	}
	if !inv.seen[n] {
		inv.seen[n] = true
		inv.all = append(inv.all, n)
	}
}

// UnionInto copies every node currently in source into target. The copy is a
// snapshot: nodes added to source afterwards do not appear in target. A
// missing or empty source leaves target untouched.
func (inv *Inventory) UnionInto(source, target string) {
	src, ok := inv.groups[source]
	if !ok || len(src.members) == 0 {
		return
	}
	members := make([]*Node, len(src.members))
	copy(members, src.members)
	for _, n := range members {
		inv.AddNode(target, n)
	}
}

// GroupNames returns every group in first-creation order.
func (inv *Inventory) GroupNames() []string {
	out := make([]string, len(inv.order))
	copy(out, inv.order)
	return out
}

// Members returns the named group's nodes in insertion order, or nil if the
// group was never created.
func (inv *Inventory) Members(groupName string) []*Node {
	g, ok := inv.groups[groupName]
	if !ok {
		return nil
	}
	out := make([]*Node, len(g.members))
	copy(out, g.members)
	return out
}

// AllNodes returns every node placed in any group, deduplicated, in
// first-placement order. File emission iterates this set.
func (inv *Inventory) AllNodes() []*Node {
	out := make([]*Node, len(inv.all))
	copy(out, inv.all)
	return out
}

// Membership renders the grouped membership listing: one block per group in
// first-creation order, one member name per line, a blank line closing each
// block. A group created but left empty still produces its block.
func (inv *Inventory) Membership() string {
	var b strings.Builder
	for _, name := range inv.order {
		fmt.Fprintf(&b, "[%s]\n", name)
		for _, n := range inv.groups[name].members {
			b.WriteString(n.name)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
