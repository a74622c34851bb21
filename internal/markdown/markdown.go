// Package markdown renders an [ast.AST] as Markdown.
package markdown

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nieomylnieja/docbuildr/internal/ast"
	"github.com/nieomylnieja/docbuildr/internal/declinfo"
	"github.com/nieomylnieja/docbuildr/internal/parser"
)

const (
	noDocumentation = "No documentation available"
	noDescription   = "No description"
	defaultLanguage = "c"
	nbsp            = "&nbsp;"
)

// Options control the rendering.
type Options struct {
	// Language of the fenced code blocks holding function signatures.
	// Defaults to "c".
	Language string
}

// Document prefixes the rendered body with the module heading.
func Document(title, body string) string {
	header := fmt.Sprintf("# Module %s\n", title)
	if body == "" {
		return header
	}
	return header + "\n" + body + "\n"
}

// Render produces one Markdown section per node, separated by a blank line.
func Render(tree *ast.AST, opts Options) string {
	if opts.Language == "" {
		opts.Language = defaultLanguage
	}
	sections := make([]string, 0, tree.Len())
	for node := range tree.Nodes() {
		sections = append(sections, strings.TrimRight(renderNode(node, opts), "\n"))
	}
	return strings.Join(sections, "\n\n")
}

func renderNode(node ast.Node, opts Options) string {
	var doc *parser.DocComment
	if d, ok := node.Doc(); ok {
		doc = &d
	}
	switch v := node.Value().(type) {
	case parser.Function:
		return renderFunction(v, doc, opts)
	case parser.Struct:
		return renderList("Struct", v.Name, v.Alias, "Members", v.Members, doc)
	case parser.Enum:
		return renderList("Enum", v.Name, v.Alias, "Variants", v.Variants, doc)
	default:
		panic(fmt.Sprintf("unexpected node value %T", v))
	}
}

func renderFunction(fn parser.Function, doc *parser.DocComment, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Function `%s`\n\n", fn.Name)
	fmt.Fprintf(&b, "```%s\n%s\n```\n\n", opts.Language, Signature(fn))
	writeDoc(&b, doc)

	if fn.Return != nil {
		fmt.Fprintf(&b, "**Returns**:\n\n`%s`: %s\n\n", fn.Return.Type, returnDescription(fn.Return, doc))
	}
	if len(fn.Params) == 0 {
		return b.String()
	}
	b.WriteString("**Parameters**:\n")
	for _, param := range fn.Params {
		if doc == nil {
			fmt.Fprintf(&b, "- `%s`\n", param.Name)
			continue
		}
		description := noDescription
		if p, ok := doc.Param(param.Name); ok && p.Description != "" {
			description = p.Description
		}
		fmt.Fprintf(&b, "- `%s`: %s\n", param.Name, description)
	}
	return b.String()
}

func renderList(kind, name, alias, title string, items []string, doc *parser.DocComment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s `%s`\n\n", kind, name)
	writeDoc(&b, doc)
	if alias != "" && alias != name {
		fmt.Fprintf(&b, "**Alias**: `%s`\n\n", alias)
	}
	fmt.Fprintf(&b, "**%s**:\n", title)
	for _, item := range items {
		fmt.Fprintf(&b, "- `%s`\n", item)
	}
	return b.String()
}

func writeDoc(b *strings.Builder, doc *parser.DocComment) {
	body := noDocumentation
	if doc != nil && doc.Body != "" {
		body = Escape(doc.Body)
	}
	fmt.Fprintf(b, "%s\n\n", body)
	if doc != nil && doc.Deprecated != "" {
		fmt.Fprintf(b, "**Deprecated**: %s\n\n", doc.Deprecated)
	}
}

func returnDescription(ret *parser.Return, doc *parser.DocComment) string {
	switch {
	case ret.Description != "":
		return ret.Description
	case doc != nil && doc.Return != nil && doc.Return.Description != "":
		return doc.Return.Description
	default:
		return noDescription
	}
}

// Signature formats the function declaration in the notation it was written in.
func Signature(fn parser.Function) string {
	params := make([]string, 0, len(fn.Params))
	for _, param := range fn.Params {
		params = append(params, declinfo.DeclInfo{Name: param.Name, Type: param.Type}.String())
	}
	paramList := strings.Join(params, ", ")

	switch fn.Notation {
	case parser.NotationArrow:
		if fn.Return == nil {
			return fmt.Sprintf("%s(%s)", fn.Name, paramList)
		}
		return fmt.Sprintf("%s(%s) -> %s", fn.Name, paramList, fn.Return.Type)
	default:
		returnType := "void"
		if fn.Return != nil {
			returnType = fn.Return.Type
		}
		if strings.HasSuffix(returnType, "*") {
			return fmt.Sprintf("%s%s(%s)", returnType, fn.Name, paramList)
		}
		return fmt.Sprintf("%s %s(%s)", returnType, fn.Name, paramList)
	}
}

// Escape replaces the leading whitespace of every line with non-breaking spaces,
// so that indentation survives Markdown rendering.
func Escape(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		rest := strings.TrimLeftFunc(line, unicode.IsSpace)
		indent := len([]rune(line)) - len([]rune(rest))
		lines[i] = strings.Repeat(nbsp, indent) + rest
	}
	return strings.Join(lines, "\n")
}
