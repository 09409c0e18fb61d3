// Package inventory models the cluster topology produced by one generator
// run: nodes with their configuration variables, the named groups they belong
// to, and the two outputs the playbook layer consumes (the grouped membership
// listing and the per-node host vars files).
package inventory

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Logf is the warning sink injected into inventory types. Anomalies reported
// through it are non-fatal; the run continues.
type Logf func(format string, args ...interface{})

// sshHostKey is the mandatory connection field of every host vars document.
const sshHostKey = "ansible_ssh_host"

// Field is one named variable attached to a node or nested document.
type Field struct {
	Key   string
	Value Value
}

// Node is a single addressable cluster member plus its configuration
// variables. Group membership is by node identity: the same *Node can sit in
// many groups, and two nodes with equal names are still distinct members.
type Node struct {
	name    string
	address string
	vars    []Field        // insertion order drives document order
	index   map[string]int // key -> position in vars
	logf    Logf
}

// NewNode creates a node. Name and address are immutable afterwards.
func NewNode(name, address string, logf Logf) *Node {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Node{
		name:    name,
		address: address,
		index:   make(map[string]int),
		logf:    logf,
	}
}

// Name returns the node's unique name.
func (n *Node) Name() string {
	return n.name
}

// Address returns the node's connection endpoint.
func (n *Node) Address() string {
	return n.address
}

// SetVar inserts or overwrites a variable. Overwriting keeps the variable's
// original position in the document and reports the replaced value as a
// warning.
func (n *Node) SetVar(key string, value Value) {
	if i, ok := n.index[key]; ok {
		n.logf("variable %q on node %s already set, replacing value %s", key, n.name, n.vars[i].Value)
		n.vars[i].Value = value
		return
	}
	n.index[key] = len(n.vars)
	n.vars = append(n.vars, Field{Key: key, Value: value})
}

// Vars returns a copy of the node's variables in insertion order.
func (n *Node) Vars() []Field {
	out := make([]Field, len(n.vars))
	copy(out, n.vars)
	return out
}

// VarDocument builds the host vars document: ansible_ssh_host first, then
// every variable in insertion order. A variable keyed ansible_ssh_host
// replaces the address entry in place rather than adding a second one.
func (n *Node) VarDocument() *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	doc.Content = append(doc.Content, scalarString(sshHostKey), scalarString(n.address))
	for _, f := range n.vars {
		if f.Key == sshHostKey {
			doc.Content[1] = f.Value.yamlNode()
			continue
		}
		doc.Content = append(doc.Content, scalarString(f.Key), f.Value.yamlNode())
	}
	return doc
}

// MarshalVars renders the host vars document as YAML.
func (n *Node) MarshalVars() ([]byte, error) {
	data, err := yaml.Marshal(n.VarDocument())
	if err != nil {
		return nil, fmt.Errorf("encoding vars for node %s: %w", n.name, err)
	}
	return data, nil
}
