package parser

import (
	"fmt"

	"github.com/nieomylnieja/docbuildr/internal/token"
)

// ParseError is returned when a token's text does not match
// the structure of its declaration.
type ParseError struct {
	Kind token.Kind
	// Text is the offending raw token text.
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed %s declaration (%s): %q", e.Kind, e.Reason, e.Text)
}

func newParseError(kind token.Kind, text, reason string) *ParseError {
	return &ParseError{Kind: kind, Text: text, Reason: reason}
}
