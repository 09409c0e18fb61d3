package inventory

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindBool
	kindDoc
)

// Value is a typed variable value: string, integer, boolean, or a nested
// document of ordered fields. Carrying the type explicitly keeps the YAML
// output deterministic: a string "1" stays quoted, an integer 1 stays bare.
type Value struct {
	kind valueKind
	str  string
	num  int64
	flag bool
	doc  []Field
}

// String builds a string value.
func String(s string) Value {
	return Value{kind: kindString, str: s}
}

// Int builds an integer value.
func Int(n int) Value {
	return Value{kind: kindInt, num: int64(n)}
}

// Bool builds a boolean value.
func Bool(b bool) Value {
	return Value{kind: kindBool, flag: b}
}

// Document builds a nested document value. Field order is preserved in the
// emitted YAML.
func Document(fields ...Field) Value {
	doc := make([]Field, len(fields))
	copy(doc, fields)
	return Value{kind: kindDoc, doc: doc}
}

// String renders the value for log messages and the interactive preview.
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.num, 10)
	case kindBool:
		return strconv.FormatBool(v.flag)
	case kindDoc:
		parts := make([]string, 0, len(v.doc))
		for _, f := range v.doc {
			parts = append(parts, f.Key+": "+f.Value.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.str
	}
}

// yamlNode converts the value to a yaml.Node with an explicit tag so the
// encoder cannot reinterpret the scalar type.
func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case kindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.num, 10)}
	case kindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.flag)}
	case kindDoc:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range v.doc {
			m.Content = append(m.Content, scalarString(f.Key), f.Value.yamlNode())
		}
		return m
	default:
		return scalarString(v.str)
	}
}

func scalarString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
