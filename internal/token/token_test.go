package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	input := `
        /**
         * This is a test function.
         * @param x The first parameter
         * @param y The second parameter
         * @return The sum of x and y
         */
        int add(int x, int y);
        `

	tokens := Tokenize(input)
	require.Len(t, tokens, 2)
	assert.Equal(t, DocComment, tokens[0].Kind)
	assert.Equal(t, Function, tokens[1].Kind)
	assert.Equal(t, "int add(int x, int y);", tokens[1].Text)
}

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenValuePair
	}{
		{
			name:  "inline doc comment",
			input: "/** Adds two numbers. */",
			expected: []TokenValuePair{
				{Kind: DocComment, Text: "/** Adds two numbers. */"},
			},
		},
		{
			name:  "arrow function with return",
			input: "add(a, b) -> int\nnext line",
			expected: []TokenValuePair{
				{Kind: Function, Text: "add(a, b) -> int"},
			},
		},
		{
			name:  "arrow function without return",
			input: "reset();",
			expected: []TokenValuePair{
				{Kind: Function, Text: "reset();"},
			},
		},
		{
			name:  "C function with qualifiers and pointer",
			input: "static const char *name(void);",
			expected: []TokenValuePair{
				{Kind: Function, Text: "static const char *name(void);"},
			},
		},
		{
			name:  "struct",
			input: "struct Point { int x; int y; };",
			expected: []TokenValuePair{
				{Kind: Struct, Text: "struct Point { int x; int y; };"},
			},
		},
		{
			name:  "typedef struct with alias",
			input: "typedef struct {\n  int x;\n} Point;",
			expected: []TokenValuePair{
				{Kind: Struct, Text: "typedef struct {\n  int x;\n} Point;"},
			},
		},
		{
			name:  "enum",
			input: "enum Color { RED, GREEN, BLUE };",
			expected: []TokenValuePair{
				{Kind: Enum, Text: "enum Color { RED, GREEN, BLUE };"},
			},
		},
		{
			name:  "struct with missing closing brace ends at last semicolon",
			input: "struct Broken { int x; int y;\n",
			expected: []TokenValuePair{
				{Kind: Struct, Text: "struct Broken { int x; int y;"},
			},
		},
		{
			name:  "struct with missing opening brace ends at closing brace",
			input: "struct Bad int x; int y; };\n",
			expected: []TokenValuePair{
				{Kind: Struct, Text: "struct Bad int x; int y; };"},
			},
		},
		{
			name:  "enum with missing opening brace ends at closing brace",
			input: "enum Bad A, B } Alias;",
			expected: []TokenValuePair{
				{Kind: Enum, Text: "enum Bad A, B } Alias;"},
			},
		},
		{
			name:  "struct variable declaration is skipped",
			input: "struct Point origin;",
		},
		{
			name:  "plain comment is skipped",
			input: "/* not documentation */",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Tokenize(tc.input)
			if len(tc.expected) == 0 {
				assert.Empty(t, tokens)
				return
			}
			assert.Equal(t, tc.expected, tokens)
		})
	}
}

func TestTokenize_SourceOrder(t *testing.T) {
	input := `
/** Color doc. */
enum Color { RED, GREEN };
/** Point doc. */
struct Point { int x; };
/** Add doc. */
int add(int a, int b);
sub(a, b) -> int
`
	tokens := Tokenize(input)
	kinds := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{DocComment, Enum, DocComment, Struct, DocComment, Function, Function}, kinds)
}

func TestTokenize_LeftmostMatchWins(t *testing.T) {
	// The function declaration inside the comment must not be reported on its own.
	tokens := Tokenize("/** int add(int a, int b); */")
	require.Len(t, tokens, 1)
	assert.Equal(t, DocComment, tokens[0].Kind)
}

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("int x = 1;\nx++;\n"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "DocComment", DocComment.String())
	assert.Equal(t, "Function", Function.String())
	assert.Equal(t, "Struct", Struct.String())
	assert.Equal(t, "Enum", Enum.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestKinds(t *testing.T) {
	all := Kinds()
	assert.Equal(t, []Kind{DocComment, Function, Struct, Enum}, all)
	all[0] = Enum
	assert.Equal(t, DocComment, Kinds()[0], "Kinds must return a copy")
}

func TestFromMatch(t *testing.T) {
	t.Run("attributes match to kind", func(t *testing.T) {
		code := "enum E { A };"
		loc := combinedRegex.FindStringSubmatchIndex(code)
		require.NotNil(t, loc)
		pair, err := fromMatch(code, loc)
		require.NoError(t, err)
		assert.Equal(t, TokenValuePair{Kind: Enum, Text: code}, pair)
	})

	t.Run("reports invariant violation without capture group", func(t *testing.T) {
		code := "oops"
		loc := make([]int, 2*(combinedRegex.NumSubexp()+1))
		for i := range loc {
			loc[i] = -1
		}
		loc[0], loc[1] = 0, len(code)
		_, err := fromMatch(code, loc)
		require.Error(t, err)
		var violation *InvariantViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, "oops", violation.Match)
	})
}
