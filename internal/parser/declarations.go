package parser

import (
	"fmt"
	"slices"

	"github.com/nieomylnieja/docbuildr/internal/token"
)

// Declaration is a structured record rebuilt from a single token.
// It is implemented by exactly [DocComment], [Function], [Struct] and [Enum].
type Declaration interface {
	Kind() token.Kind
	declaration()
}

// DocComment is a parsed javadoc-style comment.
type DocComment struct {
	// Body is the free-form description, one line per source line.
	Body   string
	Params []ParamDoc
	Return *ReturnDoc
	// Deprecated holds the contents of "@deprecated" tag or "Deprecated:" line.
	Deprecated string
}

// ParamDoc is an "@param name description" tag.
type ParamDoc struct {
	Name        string
	Description string
}

// ReturnDoc is an "@return description" tag.
type ReturnDoc struct {
	Description string
}

// Param returns the documentation of the named parameter.
func (d DocComment) Param(name string) (ParamDoc, bool) {
	idx := slices.IndexFunc(d.Params, func(p ParamDoc) bool { return p.Name == name })
	if idx == -1 {
		return ParamDoc{}, false
	}
	return d.Params[idx], true
}

// Notation is the syntax a [Function] was declared with.
type Notation int

const (
	// NotationC is "int add(int a, int b);".
	NotationC Notation = iota
	// NotationArrow is "add(a, b) -> int".
	NotationArrow
)

// Function is a parsed function declaration.
type Function struct {
	Name   string
	Params []Param
	// Return is nil if the function does not return anything.
	Return   *Return
	Notation Notation
}

// Param is a single function parameter.
// Type is empty for untyped parameters.
type Param struct {
	Name string
	Type string
}

// Return describes the value returned by a [Function].
type Return struct {
	Type string
	// Description is empty if none was provided.
	Description string
}

// Struct is a parsed struct declaration.
type Struct struct {
	Name string
	// Alias is the typedef name, if any.
	Alias   string
	Members []string
}

// Enum is a parsed enum declaration.
type Enum struct {
	Name string
	// Alias is the typedef name, if any.
	Alias    string
	Variants []string
}

func (DocComment) Kind() token.Kind { return token.DocComment }
func (Function) Kind() token.Kind   { return token.Function }
func (Struct) Kind() token.Kind     { return token.Struct }
func (Enum) Kind() token.Kind       { return token.Enum }

func (DocComment) declaration() {}
func (Function) declaration()   {}
func (Struct) declaration()     {}
func (Enum) declaration()       {}

// Clone returns a deep copy of the declaration.
func Clone(decl Declaration) Declaration {
	switch d := decl.(type) {
	case DocComment:
		return d.clone()
	case Function:
		d.Params = slices.Clone(d.Params)
		if d.Return != nil {
			ret := *d.Return
			d.Return = &ret
		}
		return d
	case Struct:
		d.Members = slices.Clone(d.Members)
		return d
	case Enum:
		d.Variants = slices.Clone(d.Variants)
		return d
	default:
		panic(fmt.Sprintf("unexpected declaration type %T", decl))
	}
}

func (d DocComment) clone() DocComment {
	d.Params = slices.Clone(d.Params)
	if d.Return != nil {
		ret := *d.Return
		d.Return = &ret
	}
	return d
}

// CloneDocComment returns a deep copy of the comment.
func CloneDocComment(d DocComment) DocComment {
	return d.clone()
}
