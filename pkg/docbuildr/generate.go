package docbuildr

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nieomylnieja/docbuildr/internal/ast"
	"github.com/nieomylnieja/docbuildr/internal/logging"
	"github.com/nieomylnieja/docbuildr/internal/markdown"
	"github.com/nieomylnieja/docbuildr/internal/parser"
	"github.com/nieomylnieja/docbuildr/internal/token"
)

// Format is the output format of [Render].
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Module is the documentation of a single source unit.
type Module struct {
	Name string
	Tree *ast.AST

	markdownOptions markdown.Options
}

// Markdown renders the module, headed with its name.
func (m Module) Markdown() string {
	return markdown.Document(m.Name, markdown.Render(m.Tree, m.markdownOptions))
}

// generateOptions contains options for configuring the behavior of the [Generate] function.
type generateOptions struct {
	filteredNames []string
	language      string
	workers       int
	logger        zerolog.Logger
}

type GenerateOption func(options generateOptions) generateOptions

// WithFilteredNames specifies declaration names that should be excluded from the generated documentation.
// The documentation comment of an excluded declaration is dropped along with it.
func WithFilteredNames(names ...string) GenerateOption {
	return func(options generateOptions) generateOptions {
		options.filteredNames = append(options.filteredNames, names...)
		return options
	}
}

// WithLanguage sets the language of the fenced code blocks holding function signatures.
func WithLanguage(language string) GenerateOption {
	return func(options generateOptions) generateOptions {
		options.language = language
		return options
	}
}

// WithWorkers limits the number of files [GenerateFiles] processes concurrently.
// Values lower than one are ignored.
func WithWorkers(n int) GenerateOption {
	return func(options generateOptions) generateOptions {
		if n > 0 {
			options.workers = n
		}
		return options
	}
}

// WithLogger sets the logger used to report progress, nothing is logged by default.
func WithLogger(logger zerolog.Logger) GenerateOption {
	return func(options generateOptions) generateOptions {
		options.logger = logger
		return options
	}
}

func newGenerateOptions(opts []GenerateOption) generateOptions {
	options := generateOptions{
		workers: runtime.GOMAXPROCS(0),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		options = opt(options)
	}
	return options
}

// Build runs the front end over the source text: tokens, declarations and finally the AST.
// Source without any recognizable declarations yields an empty AST.
func Build(src string) (*ast.AST, error) {
	tokens := token.Tokenize(src)
	decls, err := parser.ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	return ast.Build(decls), nil
}

// Generate creates the documentation of the named source unit.
func Generate(name, src string, opts ...GenerateOption) (Module, error) {
	return generate(name, src, newGenerateOptions(opts))
}

// GenerateFile reads the file and creates its documentation.
// The module is named after the file, without its extension.
func GenerateFile(path string, opts ...GenerateOption) (Module, error) {
	return generateFile(path, newGenerateOptions(opts))
}

// GenerateFiles creates the documentation of every file concurrently.
// Modules are returned in the order of paths.
// The first failure cancels the remaining work and is returned.
func GenerateFiles(ctx context.Context, paths []string, opts ...GenerateOption) ([]Module, error) {
	options := newGenerateOptions(opts)
	modules := make([]Module, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			module, err := generateFile(path, options)
			if err != nil {
				return err
			}
			modules[i] = module
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return modules, nil
}

func generateFile(path string, options generateOptions) (Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Module{}, errors.Wrapf(err, "failed to read %s", path)
	}
	module, err := generate(moduleName(path), string(data), options)
	if err != nil {
		return Module{}, errors.Wrapf(err, "failed to generate documentation for %s", path)
	}
	return module, nil
}

func generate(name, src string, options generateOptions) (Module, error) {
	start := time.Now()
	tokens := token.Tokenize(src)
	decls, err := parser.ParseTokens(tokens)
	if err != nil {
		return Module{}, errors.Wrapf(err, "module %s", name)
	}
	tree := ast.Build(decls)
	if len(options.filteredNames) > 0 {
		tree = tree.Filter(func(n ast.Node) bool {
			return !slices.Contains(options.filteredNames, n.Name())
		})
	}
	options.logger.Debug().
		Str(logging.KeyModule, name).
		Int(logging.KeyTokens, len(tokens)).
		Int(logging.KeyNodes, tree.Len()).
		Dur(logging.KeyDuration, time.Since(start)).
		Msg("generated module documentation")
	return Module{
		Name:            name,
		Tree:            tree,
		markdownOptions: markdown.Options{Language: options.language},
	}, nil
}

func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Render writes the modules in the requested format.
// Markdown documents are concatenated, HTML is converted from the concatenated Markdown
// and JSON is an array of [ModuleDoc].
func Render(modules []Module, format Format) ([]byte, error) {
	switch format {
	case FormatMarkdown, "":
		return renderMarkdown(modules), nil
	case FormatHTML:
		return markdown.ToHTML(renderMarkdown(modules))
	case FormatJSON:
		docs := make([]ModuleDoc, 0, len(modules))
		for _, module := range modules {
			docs = append(docs, module.Doc())
		}
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode documentation as JSON")
		}
		return append(data, '\n'), nil
	default:
		return nil, errors.Errorf("unsupported output format %q", format)
	}
}

func renderMarkdown(modules []Module) []byte {
	var buf bytes.Buffer
	for i, module := range modules {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(module.Markdown())
	}
	return buf.Bytes()
}
