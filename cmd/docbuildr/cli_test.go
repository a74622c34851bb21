package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listHeader = `/**
 * Appends an item.
 * @param item The item to append
 */
void list_append(int item);

/** Internal. */
void list_grow(void);
`

func parseCLI(t *testing.T, args ...string) *CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return &cli
}

func writeSource(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "list.h")
	require.NoError(t, os.WriteFile(path, []byte(listHeader), 0o644))
	return path
}

func TestCLI_Run(t *testing.T) {
	t.Run("markdown to stdout", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		src := writeSource(t, dir)

		var stdout, stderr bytes.Buffer
		err := parseCLI(t, src).Run(context.Background(), &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Module list\n")
		assert.Contains(t, stdout.String(), "## Function `list_append`")
		assert.Contains(t, stdout.String(), "- `item`: The item to append")
		assert.Contains(t, stderr.String(), "documentation generated")
	})

	t.Run("config file with flag overrides", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		src := writeSource(t, dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".docbuildr.yaml"), []byte(`
format: json
exclude:
  - list_grow
logLevel: error
`), 0o644))
		out := filepath.Join(dir, "docs.html")

		var stdout, stderr bytes.Buffer
		err := parseCLI(t, "-f", "html", "-o", out, src).Run(context.Background(), &stdout, &stderr)
		require.NoError(t, err)
		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<h1>Module list</h1>")
		assert.NotContains(t, string(data), "list_grow")
	})

	t.Run("exclude flag extends config", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		src := writeSource(t, dir)

		var stdout, stderr bytes.Buffer
		err := parseCLI(t, "--exclude", "list_append", "-f", "json", src).Run(context.Background(), &stdout, &stderr)
		require.NoError(t, err)
		assert.NotContains(t, stdout.String(), "list_append")
		assert.Contains(t, stdout.String(), `"name": "list_grow"`)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		src := writeSource(t, dir)
		cfg := filepath.Join(dir, "custom.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("workers: 0\n"), 0o644))

		err := parseCLI(t, "-c", cfg, src).Run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "workers")
	})

	t.Run("malformed source", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		src := filepath.Join(dir, "broken.h")
		require.NoError(t, os.WriteFile(src, []byte("struct Broken { int x;\n"), 0o644))

		var stdout bytes.Buffer
		err := parseCLI(t, src).Run(context.Background(), &stdout, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed")
		assert.Empty(t, stdout.String())
	})

	t.Run("watch stops with context", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		src := writeSource(t, dir)
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		var stdout bytes.Buffer
		err := parseCLI(t, "-w", src).Run(ctx, &stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Module list")
	})
}

func TestCLI_Run_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	src := writeSource(t, dir)

	err := parseCLI(t, "-f", "pdf", src).Run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}
