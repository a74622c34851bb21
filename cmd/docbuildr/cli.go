package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nieomylnieja/docbuildr/internal/config"
	"github.com/nieomylnieja/docbuildr/internal/logging"
	"github.com/nieomylnieja/docbuildr/internal/watch"
	"github.com/nieomylnieja/docbuildr/pkg/docbuildr"
)

// CLI definition & flags, values set here take precedence over the configuration file.
type CLI struct {
	Files   []string         `arg:"" type:"existingfile" help:"Source files to document."`
	Output  string           `short:"o" help:"Output file path, stdout if empty."`
	Format  string           `short:"f" help:"Output format: markdown, html or json."`
	Config  string           `short:"c" type:"existingfile" help:"Configuration file path, .docbuildr.yaml is looked up from the working directory if empty." placeholder:"PATH"`
	Watch   bool             `short:"w" help:"Regenerate the documentation whenever a source file changes."`
	Exclude []string         `help:"Declaration names to leave out of the documentation."`
	Workers int              `short:"j" help:"Number of files processed concurrently."`
	Verbose bool             `short:"v" help:"Enable verbose logging."`
	Version kong.VersionFlag `name:"version" help:"Show version and exit."`
}

// Run generates the documentation once, or keeps regenerating it in watch mode until ctx is done.
func (c *CLI) Run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}
	log, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	gen := generator{cfg: cfg, files: c.Files, stdout: stdout, log: log}

	if !c.Watch {
		return gen.run(ctx)
	}
	if err = gen.run(ctx); err != nil {
		log.Error().Err(err).Msg("failed to generate documentation")
	}
	w, err := watch.New(c.Files, watch.DefaultDebounce, log)
	if err != nil {
		return err
	}
	log.Info().Strs("files", c.Files).Msg("watching for changes")
	return w.Run(ctx, gen.run)
}

func (c *CLI) resolveConfig() (config.Config, error) {
	path := c.Config
	if path == "" {
		found, err := config.Find("")
		if err != nil {
			return config.Config{}, err
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.Workers != 0 {
		cfg.Workers = c.Workers
	}
	if c.Verbose {
		cfg.LogLevel = "debug"
	}
	cfg.Exclude = append(cfg.Exclude, c.Exclude...)
	if err = cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

type generator struct {
	cfg    config.Config
	files  []string
	stdout io.Writer
	log    zerolog.Logger
}

func (g generator) run(ctx context.Context) error {
	start := time.Now()
	modules, err := docbuildr.GenerateFiles(ctx, g.files,
		docbuildr.WithFilteredNames(g.cfg.Exclude...),
		docbuildr.WithLanguage(g.cfg.Language),
		docbuildr.WithWorkers(g.cfg.Workers),
		docbuildr.WithLogger(g.log),
	)
	if err != nil {
		return err
	}
	data, err := docbuildr.Render(modules, docbuildr.Format(g.cfg.Format))
	if err != nil {
		return err
	}
	if err = g.write(data); err != nil {
		return err
	}
	g.log.Info().
		Str(logging.KeyFormat, g.cfg.Format).
		Str(logging.KeyOutput, g.outputName()).
		Int("modules", len(modules)).
		Dur(logging.KeyDuration, time.Since(start)).
		Msg("documentation generated")
	return nil
}

func (g generator) write(data []byte) error {
	if g.cfg.Output == "" {
		_, err := g.stdout.Write(data)
		return errors.Wrap(err, "failed to write documentation")
	}
	if err := os.WriteFile(g.cfg.Output, data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write documentation to %s", g.cfg.Output)
	}
	return nil
}

func (g generator) outputName() string {
	if g.cfg.Output == "" {
		return "stdout"
	}
	return g.cfg.Output
}
