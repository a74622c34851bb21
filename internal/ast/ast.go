// Package ast pairs parsed declarations with the documentation comments preceding them.
package ast

import (
	"fmt"
	"iter"

	"github.com/nieomylnieja/docbuildr/internal/parser"
	"github.com/nieomylnieja/docbuildr/internal/token"
)

// Node is a single documented declaration.
// Its value is always a [parser.Function], [parser.Struct] or [parser.Enum].
type Node struct {
	value parser.Declaration
	doc   *parser.DocComment
}

// Comment returns the body of the documentation comment attached to the node.
func (n Node) Comment() (string, bool) {
	if n.doc == nil {
		return "", false
	}
	return n.doc.Body, true
}

// Doc returns the full documentation comment attached to the node.
func (n Node) Doc() (parser.DocComment, bool) {
	if n.doc == nil {
		return parser.DocComment{}, false
	}
	return parser.CloneDocComment(*n.doc), true
}

// Value returns the declaration, it is nil only for the zero Node.
func (n Node) Value() parser.Declaration {
	if n.value == nil {
		return nil
	}
	return parser.Clone(n.value)
}

// Kind returns the token kind of the declaration.
// It panics for the zero Node, like [Node.Name].
func (n Node) Kind() token.Kind {
	if n.value == nil {
		panic("ast: Kind called on zero Node")
	}
	return n.value.Kind()
}

// Name returns the declared name.
func (n Node) Name() string {
	switch v := n.value.(type) {
	case parser.Function:
		return v.Name
	case parser.Struct:
		return v.Name
	case parser.Enum:
		return v.Name
	default:
		panic(fmt.Sprintf("unexpected node value %T", n.value))
	}
}

// AST is an immutable, ordered sequence of [Node].
// Iteration order equals source order and every iteration starts from the beginning.
type AST struct {
	nodes []Node
}

// Build walks the declarations once and attaches each documentation comment
// to the declaration which immediately follows it.
//
// Consecutive comments collapse to the latest one.
// A comment which is not followed by any declaration is dropped.
func Build(decls []parser.Declaration) *AST {
	nodes := make([]Node, 0, len(decls))
	var pending *parser.DocComment
	for _, decl := range decls {
		switch d := decl.(type) {
		case parser.DocComment:
			doc := parser.CloneDocComment(d)
			pending = &doc
		case parser.Function, parser.Struct, parser.Enum:
			nodes = append(nodes, Node{value: parser.Clone(d), doc: pending})
			pending = nil
		default:
			panic(fmt.Sprintf("unexpected declaration type %T", decl))
		}
	}
	return &AST{nodes: nodes}
}

// Len returns the number of nodes.
func (a *AST) Len() int {
	return len(a.nodes)
}

// At returns the i-th node.
func (a *AST) At(i int) Node {
	return a.nodes[i]
}

// Nodes returns an iterator over all nodes in source order.
func (a *AST) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, node := range a.nodes {
			if !yield(node) {
				return
			}
		}
	}
}

// All returns an iterator over all nodes and their indexes in source order.
func (a *AST) All() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		for i, node := range a.nodes {
			if !yield(i, node) {
				return
			}
		}
	}
}

// Filter returns a new AST containing only the nodes for which keep returns true.
func (a *AST) Filter(keep func(Node) bool) *AST {
	nodes := make([]Node, 0, len(a.nodes))
	for _, node := range a.nodes {
		if keep(node) {
			nodes = append(nodes, node)
		}
	}
	return &AST{nodes: nodes}
}
