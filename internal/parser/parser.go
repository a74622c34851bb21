// Package parser rebuilds structured declarations from tokens.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/nieomylnieja/docbuildr/internal/declinfo"
	"github.com/nieomylnieja/docbuildr/internal/token"
)

var (
	arrowFunctionRegex = regexp.MustCompile(
		`(?s)^\s*([A-Za-z_]\w*)\s*\(([^()]*)\)\s*(?:->\s*([^\s:;]+)\s*:?\s*([^;]*?))?\s*;?\s*$`)
	cFunctionRegex = regexp.MustCompile(
		`(?s)^\s*([A-Za-z_][\w\s*]*?[\w*])\s*\b([A-Za-z_]\w*)\s*\(([^()]*)\)\s*;?\s*$`)
	storageClassRegex = regexp.MustCompile(`^(?:(?:static|extern|inline)\s+)+`)
	structRegex       = bracedDeclarationRegex("struct")
	enumRegex         = bracedDeclarationRegex("enum")
)

// bracedDeclarationRegex matches "[typedef] keyword [Tag] { body } [Alias][;]".
func bracedDeclarationRegex(keyword string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?s)^\s*(?:typedef\s+)?` + keyword + `\b\s*([A-Za-z_]\w*)?\s*\{([^{}]*)\}\s*([A-Za-z_]\w*)?\s*;?\s*$`)
}

const voidType = "void"

// ParseFunction parses a function declaration in either C or arrow notation.
//
//	int add(int a, int b);
//	add(a, b) -> int The sum of a and b
//
// In C notation a void return type means there is no [Return].
// In arrow notation the return clause is optional, the first word after "->"
// is the type and the rest (optionally separated by ':') is the description.
func ParseFunction(text string) (Function, error) {
	if m := arrowFunctionRegex.FindStringSubmatch(text); m != nil {
		fn := Function{
			Name:     m[1],
			Params:   parseParams(m[2]),
			Notation: NotationArrow,
		}
		if m[3] != "" {
			fn.Return = &Return{Type: m[3], Description: strings.TrimSpace(m[4])}
		}
		return fn, nil
	}
	if m := cFunctionRegex.FindStringSubmatch(text); m != nil {
		fn := Function{
			Name:     m[2],
			Params:   parseParams(m[3]),
			Notation: NotationC,
		}
		returnType := strings.TrimSpace(storageClassRegex.ReplaceAllString(m[1], ""))
		if returnType != voidType && returnType != "" {
			fn.Return = &Return{Type: returnType}
		}
		return fn, nil
	}
	return Function{}, newParseError(token.Function, text, "expected name followed by a parenthesized parameter list")
}

// ParseStruct parses a struct declaration, its members are separated with ';'.
// Anonymous structs must be given a typedef alias, which then becomes their name.
func ParseStruct(text string) (Struct, error) {
	m := structRegex.FindStringSubmatch(text)
	if m == nil {
		return Struct{}, newParseError(token.Struct, text, "expected struct name followed by a brace-delimited member list")
	}
	name, err := declarationName(token.Struct, text, m[1], m[3])
	if err != nil {
		return Struct{}, err
	}
	return Struct{
		Name:    name,
		Alias:   m[3],
		Members: splitList(m[2], ";"),
	}, nil
}

// ParseEnum parses an enum declaration, its variants are separated with ','.
// Anonymous enums must be given a typedef alias, which then becomes their name.
func ParseEnum(text string) (Enum, error) {
	m := enumRegex.FindStringSubmatch(text)
	if m == nil {
		return Enum{}, newParseError(token.Enum, text, "expected enum name followed by a brace-delimited variant list")
	}
	name, err := declarationName(token.Enum, text, m[1], m[3])
	if err != nil {
		return Enum{}, err
	}
	return Enum{
		Name:     name,
		Alias:    m[3],
		Variants: splitList(m[2], ","),
	}, nil
}

// ParseTokens maps every token to its declaration.
// Parsing is fail-fast: the first malformed token aborts the whole run,
// the returned error wraps a [*ParseError].
func ParseTokens(pairs []token.TokenValuePair) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(pairs))
	for i, pair := range pairs {
		decl, err := parseToken(pair)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse token #%d", i)
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

func parseToken(pair token.TokenValuePair) (Declaration, error) {
	switch pair.Kind {
	case token.DocComment:
		return parseAs(pair.Text, ParseDocComment)
	case token.Function:
		return parseAs(pair.Text, ParseFunction)
	case token.Struct:
		return parseAs(pair.Text, ParseStruct)
	case token.Enum:
		return parseAs(pair.Text, ParseEnum)
	default:
		panic(fmt.Sprintf("unhandled token kind %s", pair.Kind))
	}
}

func parseAs[T Declaration](text string, parse func(string) (T, error)) (Declaration, error) {
	decl, err := parse(text)
	if err != nil {
		return nil, err
	}
	return decl, nil
}

func parseParams(list string) []Param {
	items := splitList(list, ",")
	if len(items) == 1 && items[0] == voidType {
		return []Param{}
	}
	params := make([]Param, 0, len(items))
	for _, item := range items {
		info := declinfo.Get(item)
		params = append(params, Param{Name: info.Name, Type: info.Type})
	}
	return params
}

func declarationName(kind token.Kind, text, tag, alias string) (string, error) {
	switch {
	case tag != "":
		return tag, nil
	case alias != "":
		return alias, nil
	default:
		return "", newParseError(kind, text, "anonymous declaration without typedef alias")
	}
}

// splitList splits source by the separator, collapsing whitespace and dropping empty items.
func splitList(source, sep string) []string {
	parts := strings.Split(source, sep)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			continue
		}
		items = append(items, part)
	}
	return items
}
