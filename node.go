package mathml

import "fmt"

type NodeKind int

const (
	RowKind NodeKind = iota
	OverKind
	OperatorKind
	IdentifierKind
	SpaceKind
	PaddedKind
	NoneKind
)

// String returns the markup tag a serializer maps the kind to
func (k NodeKind) String() string {
	switch k {
	case RowKind:
		return "mrow"
	case OverKind:
		return "mover"
	case OperatorKind:
		return "mo"
	case IdentifierKind:
		return "mi"
	case SpaceKind:
		return "mspace"
	case PaddedKind:
		return "mpadded"
	case NoneKind:
		return "none"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

type Node struct {
	Kind       NodeKind
	Attributes map[string]string
	Text       string // character content for operator and identifier leaves
	Children   []*Node
}

// nodeAttributes fixes the set of attribute keys allowed on each node kind
var nodeAttributes = map[NodeKind]map[string]bool{
	RowKind:        {"texclass": true},
	OverKind:       {},
	OperatorKind:   {"stretchy": true, "texclass": true, "lspace": true, "rspace": true},
	IdentifierKind: {"mathvariant": true},
	SpaceKind:      {"width": true},
	PaddedKind:     {"width": true, "lspace": true, "voffset": true, "height": true, "depth": true},
	NoneKind:       {},
}

// node builds a tree node, panicking if the caller supplied an attribute the
// kind does not define. This is a programming contract, not a user error: no
// input can reach it, only a handler constructing an invalid node can.
func node(kind NodeKind, attributes map[string]string, children ...*Node) *Node {
	for key := range attributes {
		if !nodeAttributes[kind][key] {
			panic(fmt.Sprintf("attribute %q is not defined for %v nodes", key, kind))
		}
	}

	return &Node{Kind: kind, Attributes: attributes, Children: children}
}
