// Package docbuildr generates Markdown documentation for C-like source code
// annotated with javadoc-style comments.
//
// The source text goes through three stages:
//  1. Tokenization: documentation comments, function, struct and enum
//     declarations are recognized, everything else is skipped.
//  2. Parsing: every token is rebuilt into a structured declaration
//     (function parameters and return type, struct members, enum variants).
//  3. AST building: every declaration is paired with the documentation
//     comment immediately preceding it.
//
// The resulting [Module] can be rendered as Markdown, HTML or JSON.
//
// # Basic Usage
//
// Given a header file:
//
//	/**
//	 * Adds two integers.
//	 * @param a The first operand
//	 * @param b The second operand
//	 * @return The sum of a and b
//	 */
//	int add(int a, int b);
//
// Generate documentation:
//
//	module, err := docbuildr.GenerateFile("math.h")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(module.Markdown())
//
// Functions can also be declared in arrow notation, where the return clause
// is optional and may carry a description:
//
//	/** Adds two numbers. */
//	add(a, b) -> int The sum
//
// # Configuration Options
//
// Use GenerateOption functions to customize behavior:
//
//	modules, err := docbuildr.GenerateFiles(ctx, paths,
//	    docbuildr.WithFilteredNames("internal_helper"),
//	    docbuildr.WithWorkers(4),
//	    docbuildr.WithLogger(logger),
//	)
//
// WithFilteredNames excludes the named declarations from the documentation.
// WithWorkers limits how many files are processed concurrently.
//
// # Error Handling
//
// Generation is fail-fast: the first malformed declaration aborts the whole
// run, since a skipped declaration would break comment-to-declaration pairing.
// The returned error wraps a [*parser.ParseError] holding the offending text.
package docbuildr
