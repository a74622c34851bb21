// Package config loads the docbuildr configuration file.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nieomylnieja/docbuildr/internal/pathutils"
)

// FileName is the name of the configuration file looked up by [Find].
const FileName = ".docbuildr.yaml"

const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// Config holds the settings of a documentation run.
// Command line flags take precedence over the values read from the file.
type Config struct {
	// Output is the path of the generated document, empty means stdout.
	Output string `yaml:"output"`
	// Format is one of markdown, html or json.
	Format string `yaml:"format"`
	// Workers limits the number of files processed concurrently.
	Workers int `yaml:"workers"`
	// Exclude lists declaration names which are left out of the documentation.
	Exclude  []string `yaml:"exclude"`
	LogLevel string   `yaml:"logLevel"`
	// Language of the fenced code blocks holding function signatures.
	Language string `yaml:"language"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Format:   FormatMarkdown,
		Workers:  4,
		LogLevel: "info",
		Language: "c",
	}
}

var validator = govy.New(
	govy.For(func(c Config) string { return c.Format }).
		WithName("format").
		Rules(rules.OneOf(FormatMarkdown, FormatHTML, FormatJSON)),
	govy.For(func(c Config) int { return c.Workers }).
		WithName("workers").
		Rules(rules.GTE(1)),
	govy.For(func(c Config) string { return c.LogLevel }).
		WithName("logLevel").
		Rules(rules.OneOf("debug", "info", "warn", "error")),
	govy.For(func(c Config) string { return c.Language }).
		WithName("language").
		Rules(rules.StringNotEmpty()),
	govy.ForSlice(func(c Config) []string { return c.Exclude }).
		WithName("exclude").
		RulesForEach(rules.StringNotEmpty()),
).WithName("Config")

// Validate checks the configuration.
func (c Config) Validate() error {
	return validator.Validate(c)
}

// Find looks up [FileName] in dir and its parents.
// If no file is found, it returns an empty path and no error.
func Find(dir string) (string, error) {
	path, err := pathutils.FindUp(dir, FileName)
	if errors.Is(err, pathutils.ErrNotFound) {
		return "", nil
	}
	return path, err
}

// Load reads the configuration file, the values it does not set keep their defaults.
// An empty path yields [Default].
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %s", path)
	}
	return cfg, nil
}

// Decode reads YAML configuration from r on top of [Default] and validates it.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "failed to decode YAML")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
