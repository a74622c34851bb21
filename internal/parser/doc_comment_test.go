package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nieomylnieja/docbuildr/internal/token"
)

func TestParseDocComment(t *testing.T) {
	comment := `/**
         * This is a test function.
         * @param x The first parameter
         * @param y The second parameter
         * @return The sum of x and y
         */`

	doc, err := ParseDocComment(comment)
	require.NoError(t, err)
	assert.Equal(t, "This is a test function.", doc.Body)
	require.Len(t, doc.Params, 2)
	assert.Equal(t, ParamDoc{Name: "x", Description: "The first parameter"}, doc.Params[0])
	assert.Equal(t, ParamDoc{Name: "y", Description: "The second parameter"}, doc.Params[1])
	require.NotNil(t, doc.Return)
	assert.Equal(t, "The sum of x and y", doc.Return.Description)
	assert.Empty(t, doc.Deprecated)
}

func TestParseDocComment_Cases(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected DocComment
	}{
		{
			name:     "single line",
			text:     "/** Adds two numbers. */",
			expected: DocComment{Body: "Adds two numbers."},
		},
		{
			name:     "empty",
			text:     "/***/",
			expected: DocComment{},
		},
		{
			name: "keeps relative indentation",
			text: "/**\n * Example:\n *     run(x);\n */",
			expected: DocComment{
				Body: "Example:\n    run(x);",
			},
		},
		{
			name: "tab after decoration is not indentation",
			text: "/**\n *\tExample:\n *\t\trun(x);\n */",
			expected: DocComment{
				Body: "Example:\n\trun(x);",
			},
		},
		{
			name: "continuation lines",
			text: "/**\n * Body.\n * @param a first\n *   and more\n * @return result\n *   continued\n */",
			expected: DocComment{
				Body:   "Body.",
				Params: []ParamDoc{{Name: "a", Description: "first and more"}},
				Return: &ReturnDoc{Description: "result continued"},
			},
		},
		{
			name: "deprecated line",
			text: "/**\n * Logs.\n * Deprecated: use logf\n *   instead.\n */",
			expected: DocComment{
				Body:       "Logs.",
				Deprecated: "use logf instead.",
			},
		},
		{
			name: "deprecated tag",
			text: "/** @deprecated do not use */",
			expected: DocComment{
				Deprecated: "do not use",
			},
		},
		{
			name: "param without description",
			text: "/** @param a */",
			expected: DocComment{
				Params: []ParamDoc{{Name: "a"}},
			},
		},
		{
			name: "returns alias and windows line endings",
			text: "/**\r\n * Body.\r\n * @returns value\r\n */",
			expected: DocComment{
				Body:   "Body.",
				Return: &ReturnDoc{Description: "value"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := ParseDocComment(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, doc)
		})
	}
}

func TestParseDocComment_Malformed(t *testing.T) {
	for _, text := range []string{
		"/* plain */",
		"/**/",
		"/** unterminated",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseDocComment(text)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, token.DocComment, parseErr.Kind)
		})
	}
}

func TestDocComment_Param(t *testing.T) {
	doc := DocComment{Params: []ParamDoc{{Name: "a", Description: "first"}}}

	param, found := doc.Param("a")
	assert.True(t, found)
	assert.Equal(t, "first", param.Description)

	_, found = doc.Param("b")
	assert.False(t, found)
}
