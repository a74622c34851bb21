package docbuildr

import (
	"strings"
)

func postProcessSections(doc ModuleDoc, processors ...sectionPostProcessor) ModuleDoc {
	sections := make([]SectionDoc, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		for _, process := range processors {
			section = process(section)
		}
		sections = append(sections, section)
	}
	doc.Sections = sections
	return doc
}

// sectionPostProcessor is a function type that post-processes SectionDoc.
// It can be used to apply additional formatting to the section documentation.
type sectionPostProcessor func(doc SectionDoc) SectionDoc

// removeTrailingWhitespace removes trailing whitespace from the docs.
// Leading whitespace of the body is significant, since it carries the indentation of examples.
func removeTrailingWhitespace(doc SectionDoc) SectionDoc {
	doc.Doc = strings.TrimRightFunc(doc.Doc, isSpace)
	doc.Deprecated = strings.TrimSpace(doc.Deprecated)
	for i := range doc.Params {
		doc.Params[i].Description = strings.TrimSpace(doc.Params[i].Description)
	}
	if doc.Returns != nil {
		doc.Returns.Description = strings.TrimSpace(doc.Returns.Description)
	}
	return doc
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
