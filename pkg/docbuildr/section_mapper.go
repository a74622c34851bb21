package docbuildr

import (
	"fmt"

	"github.com/nieomylnieja/docbuildr/internal/ast"
	"github.com/nieomylnieja/docbuildr/internal/markdown"
	"github.com/nieomylnieja/docbuildr/internal/parser"
)

func newSectionMapper() *sectionMapper {
	return &sectionMapper{}
}

type sectionMapper struct {
	Sections []SectionDoc
}

func (s *sectionMapper) Map(node ast.Node) {
	section := SectionDoc{
		Kind: node.Kind().String(),
		Name: node.Name(),
	}
	doc, documented := node.Doc()
	if documented {
		section.Doc = doc.Body
		section.Deprecated = doc.Deprecated
	}

	switch v := node.Value().(type) {
	case parser.Function:
		section.Signature = markdown.Signature(v)
		section.Params = mapParams(v.Params, doc)
		section.Returns = mapReturn(v.Return, doc)
	case parser.Struct:
		section.Alias = aliasOf(v.Name, v.Alias)
		section.Members = v.Members
	case parser.Enum:
		section.Alias = aliasOf(v.Name, v.Alias)
		section.Variants = v.Variants
	default:
		panic(fmt.Sprintf("unexpected node value %T", v))
	}
	s.Sections = append(s.Sections, section)
}

func mapParams(params []parser.Param, doc parser.DocComment) []ParamDoc {
	if len(params) == 0 {
		return nil
	}
	docs := make([]ParamDoc, 0, len(params))
	for _, param := range params {
		p := ParamDoc{Name: param.Name, Type: param.Type}
		if tag, ok := doc.Param(param.Name); ok {
			p.Description = tag.Description
		}
		docs = append(docs, p)
	}
	return docs
}

// mapReturn prefers the description given in the declaration over the "@return" tag.
func mapReturn(ret *parser.Return, doc parser.DocComment) *ReturnDoc {
	if ret == nil {
		return nil
	}
	r := &ReturnDoc{Type: ret.Type, Description: ret.Description}
	if r.Description == "" && doc.Return != nil {
		r.Description = doc.Return.Description
	}
	return r
}

func aliasOf(name, alias string) string {
	if alias == name {
		return ""
	}
	return alias
}
