// Package token implements a sparse scanner which recognizes documentation
// comments and C-like declarations in raw source text.
package token

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Kind is the type of recognized token.
type Kind int

const (
	// DocComment is a javadoc-style comment: /** ... */.
	DocComment Kind = iota
	// Function is a function declaration, either in C notation
	// (int add(int a, int b);) or in arrow notation (add(a, b) -> int).
	Function
	// Struct is a struct declaration with a brace-delimited member list.
	Struct
	// Enum is an enum declaration with a brace-delimited variant list.
	Enum
)

// kinds lists all token kinds in the order in which they are tried
// when several of them match at the same position.
var kinds = []Kind{DocComment, Function, Struct, Enum}

// Kinds returns all token kinds.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case DocComment:
		return "DocComment"
	case Function:
		return "Function"
	case Struct:
		return "Struct"
	case Enum:
		return "Enum"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	// Words of the return type must stay on the same line as the function name.
	cFunctionPattern     = `[A-Za-z_][\w*]*(?:[ \t*]+[A-Za-z_][\w*]*)*[ \t*]+[A-Za-z_]\w*[ \t]*\([^()]*\)[ \t]*;`
	arrowFunctionPattern = `[A-Za-z_]\w*[ \t]*\([^()]*\)(?:[ \t]*->[^\r\n;]*;?|[ \t]*;)`
	// Unbalanced bodies are still tokenized so that the parser can report them:
	// a missing closing brace ends the token at the last semicolon,
	// a missing opening brace extends it up to the closing one.
	bracedBodyPattern = `(?:[^{};()]*\{[^}]*(?:\}` + aliasPattern + `|;)|[^{}()]*?\}` + aliasPattern + `)`
	aliasPattern      = `[ \t\r\n]*(?:[A-Za-z_]\w*[ \t\r\n]*)?;`
)

// Pattern returns the regular expression recognizing the kind.
func (k Kind) Pattern() string {
	switch k {
	case DocComment:
		return `/\*\*.*?\*/`
	case Function:
		return `(?:` + cFunctionPattern + `|` + arrowFunctionPattern + `)`
	case Struct:
		return `(?:\btypedef[ \t\r\n]+)?\bstruct\b` + bracedBodyPattern
	case Enum:
		return `(?:\btypedef[ \t\r\n]+)?\benum\b` + bracedBodyPattern
	default:
		panic(fmt.Sprintf("no pattern defined for %s", k))
	}
}

// TokenValuePair is a matched token along with its raw text.
type TokenValuePair struct {
	Kind Kind
	Text string
}

// InvariantViolationError is raised when the combined pattern reports
// a match which cannot be attributed to any [Kind].
// It always indicates a bug in the token patterns.
type InvariantViolationError struct {
	Match string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("token: match %q has no named capture group", e.Match)
}

var (
	combinedRegex = regexp.MustCompile(combinePatterns(kinds))
	// groupIndexes maps each kind to its capture group index in combinedRegex.
	groupIndexes = func() map[Kind]int {
		m := make(map[Kind]int, len(kinds))
		for _, kind := range kinds {
			m[kind] = combinedRegex.SubexpIndex(kind.String())
		}
		return m
	}()
)

func combinePatterns(kinds []Kind) string {
	alternatives := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		alternatives = append(alternatives, fmt.Sprintf("(?P<%s>%s)", kind, kind.Pattern()))
	}
	return "(?s)" + strings.Join(alternatives, "|")
}

// Tokenize scans code and returns the recognized tokens in source order.
// Text which does not match any token pattern is skipped.
// It panics with [*InvariantViolationError] if a match cannot be
// attributed to any token kind.
func Tokenize(code string) []TokenValuePair {
	matches := combinedRegex.FindAllStringSubmatchIndex(code, -1)
	pairs := make([]TokenValuePair, 0, len(matches))
	for _, loc := range matches {
		pair, err := fromMatch(code, loc)
		if err != nil {
			panic(err)
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// fromMatch creates a [TokenValuePair] from the submatch indexes of combinedRegex.
func fromMatch(code string, loc []int) (TokenValuePair, error) {
	for _, kind := range kinds {
		idx := groupIndexes[kind]
		if 2*idx+1 >= len(loc) {
			continue
		}
		start, end := loc[2*idx], loc[2*idx+1]
		if start < 0 {
			continue
		}
		// Clone so that tokens do not pin the source buffer.
		return TokenValuePair{Kind: kind, Text: strings.Clone(code[start:end])}, nil
	}
	return TokenValuePair{}, &InvariantViolationError{Match: code[loc[0]:loc[1]]}
}
