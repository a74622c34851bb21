package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/nieomylnieja/docbuildr/internal/token"
)

const (
	docCommentPrefix = "/**"
	docCommentSuffix = "*/"
)

var (
	paramTagRegex      = regexp.MustCompile(`^@param\s+(\w+)(?:\s+(.*))?$`)
	returnTagRegex     = regexp.MustCompile(`^@returns?(?:\s+(.*))?$`)
	deprecatedTagRegex = regexp.MustCompile(`^(?:@deprecated\b|Deprecated:)\s*(.*)$`)
)

// docSection is the part of a doc comment that continuation lines are appended to.
type docSection int

const (
	sectionDescription docSection = iota
	sectionParam
	sectionReturn
	sectionDeprecated
)

// ParseDocComment parses a /** ... */ comment.
//
// Lines are stripped of the leading '*' decoration and of the single space
// or tab following it, any further indentation is kept.
// Blank lines are dropped.
// Lines following a tag which are not tags themselves continue the tag's description.
func ParseDocComment(text string) (DocComment, error) {
	if len(text) < len(docCommentPrefix)+len(docCommentSuffix) ||
		!strings.HasPrefix(text, docCommentPrefix) ||
		!strings.HasSuffix(text, docCommentSuffix) {
		return DocComment{}, newParseError(token.DocComment, text, "expected /** ... */ delimiters")
	}
	inner := text[len(docCommentPrefix) : len(text)-len(docCommentSuffix)]

	var (
		doc         DocComment
		description []string
		section     = sectionDescription
	)
	for _, line := range strings.FieldsFunc(inner, func(r rune) bool { return r == '\n' || r == '\r' }) {
		line = cleanDocLine(line)
		if line == "" {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if m := paramTagRegex.FindStringSubmatch(trimmed); m != nil {
			section = sectionParam
			doc.Params = append(doc.Params, ParamDoc{Name: m[1], Description: m[2]})
			continue
		}
		if m := returnTagRegex.FindStringSubmatch(trimmed); m != nil {
			section = sectionReturn
			doc.Return = &ReturnDoc{Description: m[1]}
			continue
		}
		if m := deprecatedTagRegex.FindStringSubmatch(trimmed); m != nil {
			section = sectionDeprecated
			doc.Deprecated = m[1]
			continue
		}
		switch section {
		case sectionDescription:
			description = append(description, line)
		case sectionParam:
			last := &doc.Params[len(doc.Params)-1]
			last.Description = appendWords(last.Description, trimmed)
		case sectionReturn:
			doc.Return.Description = appendWords(doc.Return.Description, trimmed)
		case sectionDeprecated:
			doc.Deprecated = appendWords(doc.Deprecated, trimmed)
		}
	}
	doc.Body = strings.Join(description, "\n")
	return doc, nil
}

// cleanDocLine removes the comment decoration from a single line.
func cleanDocLine(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "*")
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if line != "" && (line[0] == ' ' || line[0] == '\t') {
		line = line[1:]
	}
	if strings.TrimSpace(line) == "" {
		return ""
	}
	return line
}

func appendWords(s, words string) string {
	if s == "" {
		return words
	}
	return s + " " + words
}
